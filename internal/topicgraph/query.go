package topicgraph

import (
	"slices"
	"sort"
)

// PrerequisiteAncestors returns every topic that must be mastered before id,
// following prerequisite edges only.
func (g *Graph) PrerequisiteAncestors(id string) ([]string, error) {
	return g.Ancestors(id, RelationPrerequisite)
}

// Branch is one direct prerequisite together with its own prerequisite tree.
type Branch struct {
	ID            string `json:"id"`
	Prerequisites Tree   `json:"prerequisites"`
}

// Tree is an ordered prerequisite tree. The same ancestor may appear under
// several branches when it is reachable along several paths.
type Tree []Branch

// PrerequisiteTree returns the recursive prerequisite structure of id.
func (g *Graph) PrerequisiteTree(id string) (Tree, error) {
	if !g.Has(id) {
		return nil, notFound(id)
	}
	return g.prereqTree(id, map[string]bool{id: true}), nil
}

// prereqTree walks incoming prerequisite edges. onPath holds the IDs of the
// current descent so an accidental cycle cannot recurse forever.
func (g *Graph) prereqTree(id string, onPath map[string]bool) Tree {
	tree := Tree{}
	for _, i := range g.nodes[id].in {
		e := g.edges[i]
		if e.Kind != RelationPrerequisite || onPath[e.From] {
			continue
		}
		onPath[e.From] = true
		tree = append(tree, Branch{ID: e.From, Prerequisites: g.prereqTree(e.From, onPath)})
		delete(onPath, e.From)
	}
	return tree
}

// Flatten returns the unique IDs of a prerequisite tree, sorted.
func Flatten(t Tree) []string {
	seen := make(map[string]bool)
	var walk func(Tree)
	walk = func(t Tree) {
		for _, b := range t {
			seen[b.ID] = true
			walk(b.Prerequisites)
		}
	}
	walk(t)

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Depth returns the length of the longest prerequisite chain in t.
func (t Tree) Depth() int {
	depth := 0
	for _, b := range t {
		depth = max(depth, 1+b.Prerequisites.Depth())
	}
	return depth
}

// ReviewTopics returns the review-layer topics in insertion order, filtered
// by domain unless domain is empty.
func (g *Graph) ReviewTopics(domain string) []Topic {
	var result []Topic
	for _, id := range g.order {
		t := g.nodes[id].topic
		if !t.IsReview {
			continue
		}
		if domain != "" && t.Domain != domain {
			continue
		}
		result = append(result, t.clone())
	}
	return result
}

// ByDomain returns all topics of a domain in insertion order.
func (g *Graph) ByDomain(domain string) []Topic {
	var result []Topic
	for _, id := range g.order {
		if t := g.nodes[id].topic; t.Domain == domain {
			result = append(result, t.clone())
		}
	}
	return result
}

// Domains returns the distinct domains in first-seen order.
func (g *Graph) Domains() []string {
	var result []string
	for _, id := range g.order {
		if d := g.nodes[id].topic.Domain; !slices.Contains(result, d) {
			result = append(result, d)
		}
	}
	return result
}

// Neighborhood is the local view around one topic: what it builds on, what
// builds on it, where it is applied, and which concepts transfer to or
// from it.
type Neighborhood struct {
	Topic         Topic      `json:"topic"`
	Prerequisites []string   `json:"prerequisites"`
	Dependents    []string   `json:"dependents"`
	Links         []Relation `json:"links"`
	Transfers     []string   `json:"transfers"`
}

// Neighbors returns the neighborhood of id.
func (g *Graph) Neighbors(id string) (Neighborhood, error) {
	t, err := g.Topic(id)
	if err != nil {
		return Neighborhood{}, err
	}
	nb := Neighborhood{Topic: t}
	for _, e := range g.Incoming(id) {
		switch e.Kind {
		case RelationPrerequisite:
			nb.Prerequisites = append(nb.Prerequisites, e.From)
		case RelationConceptTransfer:
			nb.Transfers = appendUnique(nb.Transfers, e.From)
		}
	}
	for _, e := range g.Outgoing(id) {
		switch e.Kind {
		case RelationPrerequisite:
			nb.Dependents = append(nb.Dependents, e.To)
		case RelationConceptTransfer:
			nb.Transfers = appendUnique(nb.Transfers, e.To)
		default:
			nb.Links = append(nb.Links, e)
		}
	}
	return nb, nil
}

func appendUnique(s []string, v string) []string {
	if slices.Contains(s, v) {
		return s
	}
	return append(s, v)
}
