// Package render turns graph queries and review plans into terminal text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/mathmap/internal/topicgraph"
	"github.com/abhisek/mathmap/internal/ui/theme"
)

const (
	markMastered = "✓"
	markPending  = "○"
)

// TopicTable renders topics as a table in the given order.
func TopicTable(topics []topicgraph.Topic) string {
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		review := ""
		if t.IsReview {
			review = "复习"
		}
		rows = append(rows, []string{
			masteryMark(t.Mastered),
			t.ID,
			t.Name,
			t.Domain,
			strconv.Itoa(t.Level),
			review,
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("", "编号", "知识点", "领域", "难度", "类型").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Inherit(theme.Title)
			case col == 3:
				return s.Foreground(theme.DomainColor(topics[row].Domain))
			case col == 0 && topics[row].Mastered:
				return s.Inherit(theme.Mastered)
			}
			return s
		})
	return tbl.String()
}

// TopicCard renders the detail view of one topic: its attributes and the
// local neighborhood.
func TopicCard(g *topicgraph.Graph, nb topicgraph.Neighborhood) string {
	t := nb.Topic

	var b strings.Builder
	b.WriteString(theme.Title.Render(t.ID+" "+t.Name) + "\n")
	field(&b, "领域", theme.Domain(t.Domain).Render(t.Domain))
	field(&b, "难度", fmt.Sprintf("%d", t.Level))
	state := theme.Pending.Render(markPending + " 未掌握")
	if t.Mastered {
		state = theme.Mastered.Render(markMastered + " 已掌握")
	}
	field(&b, "状态", state)

	list(&b, "关键词", t.Keywords)
	list(&b, "题型", t.ProblemTypes)
	if len(t.CommonErrors) > 0 {
		field(&b, "易错点", theme.Warning.Render(strings.Join(t.CommonErrors, "、")))
	}
	list(&b, "公式", t.Formulas)
	list(&b, "方法", t.Methods)

	list(&b, "先修", labels(g, nb.Prerequisites))
	list(&b, "后续", labels(g, nb.Dependents))
	list(&b, "迁移", labels(g, nb.Transfers))
	for _, r := range nb.Links {
		field(&b, r.Kind.Label(), label(g, r.To))
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

func field(b *strings.Builder, name, value string) {
	b.WriteString(theme.Label.Render(name+"：") + value + "\n")
}

func list(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	field(b, name, theme.Body.Render(strings.Join(values, "、")))
}

func masteryMark(mastered bool) string {
	if mastered {
		return markMastered
	}
	return markPending
}

// label returns "ID 名称", or the bare ID when the topic is unknown.
func label(g *topicgraph.Graph, id string) string {
	t, err := g.Topic(id)
	if err != nil || t.Name == "" {
		return id
	}
	return id + " " + t.Name
}

func labels(g *topicgraph.Graph, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, label(g, id))
	}
	return out
}
