package review

import (
	"fmt"

	"github.com/abhisek/mathmap/internal/topicgraph"
)

// Stage is one step of the review roadmap with its resolved topics.
type Stage struct {
	Name   string             `json:"name"`
	Topics []topicgraph.Topic `json:"topics"`
}

// Roadmap resolves the configured roadmap stages against the graph.
func (gen *Generator) Roadmap() ([]Stage, error) {
	stages := make([]Stage, 0, len(gen.cfg.Roadmap))
	for _, spec := range gen.cfg.Roadmap {
		topics := make([]topicgraph.Topic, 0, len(spec.Topics))
		for _, id := range spec.Topics {
			t, err := gen.graph.Topic(id)
			if err != nil {
				return nil, fmt.Errorf("roadmap stage %q: %w", spec.Name, err)
			}
			topics = append(topics, t)
		}
		stages = append(stages, Stage{Name: spec.Name, Topics: topics})
	}
	return stages, nil
}
