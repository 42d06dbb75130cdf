package review

import (
	"github.com/abhisek/mathmap/internal/topicgraph"
)

// Generator builds review plans from a topic graph. It only reads the
// graph; generating a plan never changes mastery or any other state.
type Generator struct {
	graph *topicgraph.Graph
	cfg   Config
}

// NewGenerator creates a Generator over g.
func NewGenerator(g *topicgraph.Graph, cfg Config) *Generator {
	return &Generator{graph: g, cfg: cfg}
}

// Generate produces the plan for p under strategy s. The same profile,
// strategy and graph always yield the same plan. On error no plan is
// returned.
func (gen *Generator) Generate(p Profile, s Strategy) (*Plan, error) {
	var (
		plan *Plan
		err  error
	)
	switch s {
	case WeaknessFocused:
		plan, err = gen.weaknessFocused(p)
	case ExamPreparation:
		plan, err = gen.examPreparation()
	case ConceptIntegration:
		plan, err = gen.conceptIntegration()
	default:
		return nil, &UnsupportedStrategyError{Name: s.String()}
	}
	if err != nil {
		return nil, err
	}
	plan.Strategy = s
	plan.Title = s.Title()
	plan.Student = p.Name
	return plan, nil
}

// GenerateNamed parses a strategy key and generates the plan.
func (gen *Generator) GenerateNamed(p Profile, strategy string) (*Plan, error) {
	s, err := ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	return gen.Generate(p, s)
}

// topicNames resolves display names, failing on the first unknown ID.
func (gen *Generator) topicNames(ids []string) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		t, err := gen.graph.Topic(id)
		if err != nil {
			return nil, err
		}
		names = append(names, t.Name)
	}
	return names, nil
}

// slots splits topics over days the way every strategy does: each day takes
// max(1, len(topics)/days) topics in order. Topics that do not fit in
// days*perDay are never scheduled. Days beyond the last topic are empty.
func slots(topics []string, days int) [][]string {
	perDay := max(1, len(topics)/days)
	result := make([][]string, 0, days)
	for day := 1; day <= days; day++ {
		start := min((day-1)*perDay, len(topics))
		end := min(start+perDay, len(topics))
		result = append(result, clone(topics[start:end]))
	}
	return result
}

// clone returns a non-nil copy so that empty lists serialize as [].
func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
