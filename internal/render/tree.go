package render

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/tree"

	"github.com/abhisek/mathmap/internal/topicgraph"
	"github.com/abhisek/mathmap/internal/ui/theme"
)

// PrerequisiteTree renders the prerequisite tree of root. Shared
// prerequisites are repeated under every branch that needs them.
func PrerequisiteTree(g *topicgraph.Graph, root string, prereqs topicgraph.Tree) string {
	t := tree.Root(theme.Title.Render(label(g, root))).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(theme.Border).PaddingRight(1))
	addBranches(g, t, prereqs)
	return t.String()
}

func addBranches(g *topicgraph.Graph, parent *tree.Tree, branches topicgraph.Tree) {
	for _, br := range branches {
		text := topicLine(g, br.ID)
		if len(br.Prerequisites) == 0 {
			parent.Child(text)
			continue
		}
		child := tree.Root(text)
		addBranches(g, child, br.Prerequisites)
		parent.Child(child)
	}
}

func topicLine(g *topicgraph.Graph, id string) string {
	t, err := g.Topic(id)
	if err != nil {
		return id
	}
	style := theme.Domain(t.Domain)
	if t.Mastered {
		return theme.Mastered.Render(markMastered) + " " + style.Render(label(g, id))
	}
	return theme.Pending.Render(markPending) + " " + style.Render(label(g, id))
}
