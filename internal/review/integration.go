package review

import (
	"fmt"
	"sort"

	"github.com/abhisek/mathmap/internal/topicgraph"
)

// conceptIntegration walks each fixed cluster from the topic with the
// fewest prerequisites to the one with the most.
func (gen *Generator) conceptIntegration() (*Plan, error) {
	cfg := gen.cfg.Integration

	clusters := make([]ClusterPath, 0, len(cfg.Clusters))
	for _, spec := range cfg.Clusters {
		path := make([]ClusterTopic, 0, len(spec.Topics))
		for _, id := range spec.Topics {
			t, err := gen.graph.Topic(id)
			if err != nil {
				return nil, fmt.Errorf("cluster %q: %w", spec.Name, err)
			}
			tree, err := gen.graph.PrerequisiteTree(id)
			if err != nil {
				return nil, fmt.Errorf("cluster %q: %w", spec.Name, err)
			}
			path = append(path, ClusterTopic{
				ID:                id,
				Name:              t.Name,
				PrerequisiteCount: len(topicgraph.Flatten(tree)),
			})
		}

		// Ties keep the declared order.
		sort.SliceStable(path, func(i, j int) bool {
			return path[i].PrerequisiteCount < path[j].PrerequisiteCount
		})

		clusters = append(clusters, ClusterPath{
			Cluster:     spec.Name,
			Description: spec.Name + "知识簇",
			Path:        path,
			Activities:  clone(cfg.Activities),
		})
	}

	return &Plan{
		Integration: &IntegrationSchedule{
			Clusters: clusters,
			Projects: clone(cfg.Projects),
		},
	}, nil
}
