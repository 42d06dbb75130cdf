package curriculum

import "github.com/abhisek/mathmap/internal/topicgraph"

// TopicSpec is one topic as declared in a curriculum layer.
type TopicSpec struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Level         int      `yaml:"level"`
	Prerequisites []string `yaml:"prerequisites"`
	Keywords      []string `yaml:"keywords"`
	ProblemTypes  []string `yaml:"problem_types"`
	CommonErrors  []string `yaml:"common_errors"`
	Formulas      []string `yaml:"formulas"`
	Methods       []string `yaml:"methods"`
}

// DomainSpec groups the topics of one domain, in declaration order.
type DomainSpec struct {
	Domain string      `yaml:"domain"`
	Topics []TopicSpec `yaml:"topics"`
}

// RelationSpec is a hand-authored non-prerequisite link between two topics.
type RelationSpec struct {
	From   string                  `yaml:"from"`
	To     string                  `yaml:"to"`
	Kind   topicgraph.RelationKind `yaml:"kind"`
	Weight float64                 `yaml:"weight"`
}

// Layer is one curriculum layer: an ordered list of domains plus any
// extra relations that are added after all of the layer's topics.
type Layer struct {
	Name      string         `yaml:"name"`
	Domains   []DomainSpec   `yaml:"domains"`
	Relations []RelationSpec `yaml:"relations"`
}

// Definitions is the full static curriculum.
type Definitions struct {
	Foundational Layer
	Review       Layer
}

// PrerequisiteWeight is the weight given to every prerequisite edge.
const PrerequisiteWeight = 1.0

func (s TopicSpec) topic(domain string, review bool) topicgraph.Topic {
	return topicgraph.Topic{
		ID:           s.ID,
		Name:         s.Name,
		Domain:       domain,
		Level:        s.Level,
		IsReview:     review,
		Keywords:     nonNil(s.Keywords),
		ProblemTypes: s.ProblemTypes,
		CommonErrors: s.CommonErrors,
		Formulas:     s.Formulas,
		Methods:      s.Methods,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
