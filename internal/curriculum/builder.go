package curriculum

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/mathmap/internal/topicgraph"
)

// Build loads the embedded curriculum and returns a graph with the
// foundational and review layers applied.
func Build() (*topicgraph.Graph, error) {
	defs, err := LoadDefinitions()
	if err != nil {
		return nil, fmt.Errorf("loading curriculum: %w", err)
	}
	return BuildFrom(defs)
}

// BuildFrom applies both layers of defs to a fresh graph and validates it.
func BuildFrom(defs Definitions) (*topicgraph.Graph, error) {
	g := topicgraph.New()
	if err := ApplyFoundationalLayer(g, defs.Foundational); err != nil {
		return nil, err
	}
	if err := ApplyReviewLayer(g, defs.Review); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("knowledge graph built",
		"topics", g.Len(),
		"review_topics", len(g.ReviewTopics("")),
		"relations", len(g.Relations()))
	return g, nil
}

// ApplyFoundationalLayer adds the grade 1-6 basics to g.
func ApplyFoundationalLayer(g *topicgraph.Graph, layer Layer) error {
	return applyLayer(g, layer, false)
}

// ApplyReviewLayer adds the review topics, their prerequisite edges and the
// layer's cross-module relations. Its prerequisites may point into the
// foundational layer, which must already be applied.
func ApplyReviewLayer(g *topicgraph.Graph, layer Layer) error {
	return applyLayer(g, layer, true)
}

// applyLayer checks the whole layer against g before touching it, so a
// failing layer leaves g unchanged. Applying the same layer twice fails
// with ErrDuplicateTopic and adds no edges.
func applyLayer(g *topicgraph.Graph, layer Layer, review bool) error {
	name := layer.Name
	if name == "" {
		name = "unnamed"
	}
	if err := checkLayer(g, layer); err != nil {
		return fmt.Errorf("apply %s layer: %w", name, err)
	}

	for _, d := range layer.Domains {
		for _, spec := range d.Topics {
			if err := g.AddTopic(spec.topic(d.Domain, review)); err != nil {
				return fmt.Errorf("apply %s layer: %w", name, err)
			}
			for _, prereq := range spec.Prerequisites {
				err := g.AddRelation(topicgraph.Relation{
					From:   prereq,
					To:     spec.ID,
					Kind:   topicgraph.RelationPrerequisite,
					Weight: PrerequisiteWeight,
				})
				if err != nil {
					return fmt.Errorf("apply %s layer: %w", name, err)
				}
			}
		}
	}

	for _, r := range layer.Relations {
		if err := g.AddRelation(r.relation()); err != nil {
			return fmt.Errorf("apply %s layer: %w", name, err)
		}
	}
	return nil
}

// checkLayer collects every problem in layer: duplicate IDs, references to
// unknown topics, invalid attributes and malformed relations.
func checkLayer(g *topicgraph.Graph, layer Layer) error {
	var errs []error

	declared := make(map[string]bool)
	for _, d := range layer.Domains {
		if d.Domain == "" {
			errs = append(errs, fmt.Errorf("domain with %d topics has no name", len(d.Topics)))
		}
		for _, spec := range d.Topics {
			if spec.ID == "" {
				errs = append(errs, fmt.Errorf("topic %q in domain %q has no ID", spec.Name, d.Domain))
				continue
			}
			if declared[spec.ID] || g.Has(spec.ID) {
				errs = append(errs, fmt.Errorf("topic %q: %w", spec.ID, topicgraph.ErrDuplicateTopic))
			}
			declared[spec.ID] = true
			if spec.Name == "" {
				errs = append(errs, fmt.Errorf("topic %q has no name", spec.ID))
			}
			if spec.Level <= 0 {
				errs = append(errs, fmt.Errorf("topic %q: level must be > 0, got %d", spec.ID, spec.Level))
			}
		}
	}

	known := func(id string) bool { return declared[id] || g.Has(id) }

	for _, d := range layer.Domains {
		for _, spec := range d.Topics {
			for _, prereq := range spec.Prerequisites {
				if !known(prereq) {
					errs = append(errs, &UnknownTopicError{Topic: spec.ID, Ref: prereq})
				}
			}
		}
	}

	for _, r := range layer.Relations {
		rel := r.relation()
		if err := rel.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if rel.Kind == topicgraph.RelationPrerequisite {
			errs = append(errs, fmt.Errorf("relation %s -> %s: prerequisites belong in the topic definition", rel.From, rel.To))
		}
		if !known(rel.From) {
			errs = append(errs, &UnknownTopicError{Topic: rel.To, Ref: rel.From})
		}
		if !known(rel.To) {
			errs = append(errs, &UnknownTopicError{Topic: rel.From, Ref: rel.To})
		}
	}

	return errors.Join(errs...)
}

func (r RelationSpec) relation() topicgraph.Relation {
	return topicgraph.Relation{From: r.From, To: r.To, Kind: r.Kind, Weight: r.Weight}
}
