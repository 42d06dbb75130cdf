package topicgraph

import (
	"fmt"
	"slices"
	"sort"
)

// node is a graph vertex. A node that has only been referenced by a
// relation, never added with AddTopic, is a stub.
type node struct {
	topic   Topic
	defined bool
	out     []int // indices into Graph.edges
	in      []int
}

// Graph is a directed multigraph of topics. It exclusively owns its nodes
// and edges; callers only ever receive copies.
//
// Graph is not safe for concurrent use. Hosts that flip mastery flags while
// other goroutines query must synchronise themselves.
type Graph struct {
	nodes map[string]*node
	order []string // defined topic IDs in insertion order
	edges []Relation
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// AddTopic inserts a topic. Adding an ID that is already defined fails with
// ErrDuplicateTopic; a stub left by an earlier relation is filled in.
func (g *Graph) AddTopic(t Topic) error {
	if t.ID == "" {
		return fmt.Errorf("add topic: empty ID")
	}
	n, ok := g.nodes[t.ID]
	if ok && n.defined {
		return fmt.Errorf("add topic %q: %w", t.ID, ErrDuplicateTopic)
	}
	if !ok {
		n = &node{}
		g.nodes[t.ID] = n
	}
	n.topic = t.clone()
	n.defined = true
	g.order = append(g.order, t.ID)
	return nil
}

// AddRelation inserts a directed edge. Endpoints that do not exist yet are
// recorded as stubs so that edges can be declared before their topics.
func (g *Graph) AddRelation(r Relation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	idx := len(g.edges)
	g.edges = append(g.edges, r)
	from, to := g.ensure(r.From), g.ensure(r.To)
	from.out = append(from.out, idx)
	to.in = append(to.in, idx)
	return nil
}

func (g *Graph) ensure(id string) *node {
	n, ok := g.nodes[id]
	if !ok {
		n = &node{topic: Topic{ID: id}}
		g.nodes[id] = n
	}
	return n
}

// Has reports whether id is a defined topic.
func (g *Graph) Has(id string) bool {
	n, ok := g.nodes[id]
	return ok && n.defined
}

// Topic returns the attributes of a topic, or an error matching ErrNotFound.
func (g *Graph) Topic(id string) (Topic, error) {
	n, ok := g.nodes[id]
	if !ok || !n.defined {
		return Topic{}, notFound(id)
	}
	return n.topic.clone(), nil
}

// Topics returns all defined topics in insertion order.
func (g *Graph) Topics() []Topic {
	result := make([]Topic, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.nodes[id].topic.clone())
	}
	return result
}

// IDs returns all defined topic IDs in insertion order.
func (g *Graph) IDs() []string {
	return slices.Clone(g.order)
}

// Len returns the number of defined topics.
func (g *Graph) Len() int {
	return len(g.order)
}

// Relations returns every edge in insertion order.
func (g *Graph) Relations() []Relation {
	return slices.Clone(g.edges)
}

// Outgoing returns the edges leaving id, in insertion order.
func (g *Graph) Outgoing(id string) []Relation {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return g.collect(n.out)
}

// Incoming returns the edges entering id, in insertion order.
func (g *Graph) Incoming(id string) []Relation {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return g.collect(n.in)
}

func (g *Graph) collect(idx []int) []Relation {
	result := make([]Relation, 0, len(idx))
	for _, i := range idx {
		result = append(result, g.edges[i])
	}
	return result
}

// Stubs returns IDs referenced by relations but never defined, sorted.
func (g *Graph) Stubs() []string {
	var ids []string
	for id, n := range g.nodes {
		if !n.defined {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// SetMastered flips the mastery flag of a topic.
func (g *Graph) SetMastered(id string, mastered bool) error {
	n, ok := g.nodes[id]
	if !ok || !n.defined {
		return notFound(id)
	}
	n.topic.Mastered = mastered
	return nil
}

// ApplyMastery sets the mastery flag of every topic in m. Either all IDs
// are applied or none are.
func (g *Graph) ApplyMastery(m map[string]bool) error {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !g.Has(id) {
			return notFound(id)
		}
	}
	for _, id := range ids {
		g.nodes[id].topic.Mastered = m[id]
	}
	return nil
}

// Ancestors returns every node with a directed path to id over edges of the
// given kinds (all kinds when none are given), excluding id itself. The
// result is sorted.
func (g *Graph) Ancestors(id string, kinds ...RelationKind) ([]string, error) {
	if !g.Has(id) {
		return nil, notFound(id)
	}

	visited := map[string]bool{id: true}
	queue := []string{id}
	var result []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, i := range g.nodes[cur].in {
			e := g.edges[i]
			if !matchKind(e.Kind, kinds) || visited[e.From] {
				continue
			}
			visited[e.From] = true
			result = append(result, e.From)
			queue = append(queue, e.From)
		}
	}
	sort.Strings(result)
	return result, nil
}

func matchKind(k RelationKind, kinds []RelationKind) bool {
	return len(kinds) == 0 || slices.Contains(kinds, k)
}

func (t Topic) clone() Topic {
	t.Keywords = slices.Clone(t.Keywords)
	t.ProblemTypes = slices.Clone(t.ProblemTypes)
	t.CommonErrors = slices.Clone(t.CommonErrors)
	t.Formulas = slices.Clone(t.Formulas)
	t.Methods = slices.Clone(t.Methods)
	return t
}
