package topicgraph

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the graph.
// Returns a combined error describing all problems found, or nil if valid.
func (g *Graph) Validate() error {
	var errs []string

	// Check for references to topics that were never defined
	for _, id := range g.Stubs() {
		errs = append(errs, fmt.Sprintf("relation references undefined topic %q", id))
	}

	// Check topic attributes
	for _, id := range g.order {
		t := g.nodes[id].topic
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("topic %q has no name", id))
		}
		if t.Level <= 0 {
			errs = append(errs, fmt.Sprintf("topic %q: level must be > 0, got %d", id, t.Level))
		}
	}

	// Check for prerequisite cycles
	order := g.TopologicalOrder()
	if len(order) < len(g.order) {
		placed := make(map[string]bool, len(order))
		for _, id := range order {
			placed[id] = true
		}
		var cycleNodes []string
		for _, id := range g.order {
			if !placed[id] {
				cycleNodes = append(cycleNodes, id)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving topics: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("topic graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// TopologicalOrder returns the defined topic IDs ordered so that every
// topic follows its prerequisites (Kahn's algorithm). Ties keep insertion
// order. Topics on a prerequisite cycle are omitted.
func (g *Graph) TopologicalOrder() []string {
	inDegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		for _, e := range g.Incoming(id) {
			if e.Kind == RelationPrerequisite && g.Has(e.From) {
				inDegree[id]++
			}
		}
	}

	var queue []string
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, e := range g.Outgoing(id) {
			if e.Kind != RelationPrerequisite || !g.Has(e.To) {
				continue
			}
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}
	return order
}
