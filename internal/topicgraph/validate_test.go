package topicgraph

import (
	"strings"
	"testing"
)

func TestValidate_FixturePasses(t *testing.T) {
	if err := fixture(t).Validate(); err != nil {
		t.Fatalf("fixture validation failed: %v", err)
	}
}

func TestValidate_DetectsCycle(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddTopic(Topic{ID: id, Name: id, Level: 1}); err != nil {
			t.Fatal(err)
		}
	}
	mustRelate(t, g, Relation{From: "a", To: "b", Kind: RelationPrerequisite, Weight: 1})
	mustRelate(t, g, Relation{From: "b", To: "a", Kind: RelationPrerequisite, Weight: 1})

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidate_TransferCycleIsAllowed(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b"} {
		if err := g.AddTopic(Topic{ID: id, Name: id, Level: 1}); err != nil {
			t.Fatal(err)
		}
	}
	mustRelate(t, g, Relation{From: "a", To: "b", Kind: RelationPrerequisite, Weight: 1})
	mustRelate(t, g, Relation{From: "b", To: "a", Kind: RelationConceptTransfer, Weight: 0.5})

	if err := g.Validate(); err != nil {
		t.Errorf("only prerequisite edges must be acyclic, got: %v", err)
	}
}

func TestValidate_DetectsDanglingReference(t *testing.T) {
	g := New()
	if err := g.AddTopic(Topic{ID: "a", Name: "a", Level: 1}); err != nil {
		t.Fatal(err)
	}
	mustRelate(t, g, Relation{From: "nonexistent", To: "a", Kind: RelationPrerequisite, Weight: 1})

	err := g.Validate()
	if err == nil {
		t.Fatal("expected error for dangling reference, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidate_DetectsBadAttributes(t *testing.T) {
	g := New()
	if err := g.AddTopic(Topic{ID: "a", Level: 0}); err != nil {
		t.Fatal(err)
	}
	err := g.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"no name", "level must be > 0"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestTopologicalOrder_PrerequisitesFirst(t *testing.T) {
	g := fixture(t)
	order := g.TopologicalOrder()
	if len(order) != g.Len() {
		t.Fatalf("got %d topics, want %d", len(order), g.Len())
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Relations() {
		if e.Kind != RelationPrerequisite {
			continue
		}
		if pos[e.From] >= pos[e.To] {
			t.Errorf("%s appears after dependent %s", e.From, e.To)
		}
	}
}
