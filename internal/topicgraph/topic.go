package topicgraph

import "fmt"

// Topic is a single curriculum concept node.
type Topic struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Domain       string   `json:"domain"`
	Level        int      `json:"level"`
	Mastered     bool     `json:"mastered"`
	IsReview     bool     `json:"is_review"`
	Keywords     []string `json:"keywords"`
	ProblemTypes []string `json:"problem_types,omitempty"`
	CommonErrors []string `json:"common_errors,omitempty"`
	Formulas     []string `json:"formulas,omitempty"`
	Methods      []string `json:"methods,omitempty"`
}

// RelationKind is the type of a directed relation between two topics.
type RelationKind string

const (
	RelationPrerequisite    RelationKind = "prerequisite"
	RelationSupports        RelationKind = "supports"
	RelationAppliesTo       RelationKind = "applies_to"
	RelationConceptTransfer RelationKind = "concept_transfer"
	RelationSolves          RelationKind = "solves"
)

// AllRelationKinds returns every relation kind in display order.
func AllRelationKinds() []RelationKind {
	return []RelationKind{
		RelationPrerequisite,
		RelationSupports,
		RelationAppliesTo,
		RelationConceptTransfer,
		RelationSolves,
	}
}

// Valid reports whether k is a known relation kind.
func (k RelationKind) Valid() bool {
	switch k {
	case RelationPrerequisite, RelationSupports, RelationAppliesTo, RelationConceptTransfer, RelationSolves:
		return true
	default:
		return false
	}
}

// Label returns a short human-readable label for the relation kind.
func (k RelationKind) Label() string {
	switch k {
	case RelationPrerequisite:
		return "先修知识"
	case RelationSupports:
		return "支撑"
	case RelationAppliesTo:
		return "应用于"
	case RelationConceptTransfer:
		return "知识迁移"
	case RelationSolves:
		return "求解"
	default:
		return string(k)
	}
}

// Relation is a directed, weighted edge. Several relations of different
// kinds may connect the same ordered pair.
type Relation struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Kind   RelationKind `json:"kind"`
	Weight float64      `json:"weight"`
}

// Validate checks the endpoints, kind and weight of r.
func (r Relation) Validate() error {
	if r.From == "" || r.To == "" {
		return fmt.Errorf("relation %s -> %s: empty endpoint", r.From, r.To)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("relation %s -> %s: unknown kind %q", r.From, r.To, r.Kind)
	}
	if r.Weight <= 0 || r.Weight > 1.0 {
		return fmt.Errorf("relation %s -> %s: weight must be in (0, 1.0], got %f", r.From, r.To, r.Weight)
	}
	return nil
}
