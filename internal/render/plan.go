package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathmap/internal/review"
	"github.com/abhisek/mathmap/internal/topicgraph"
	"github.com/abhisek/mathmap/internal/ui/theme"
)

// Plan renders a generated review plan. Topic IDs are resolved against g
// for display names.
func Plan(g *topicgraph.Graph, p *review.Plan) string {
	var b strings.Builder

	header := p.Title
	if p.Student != "" {
		header += " · " + p.Student
	}
	b.WriteString(theme.Title.Render(header) + "\n")
	if p.TotalDays > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("共%d天", p.TotalDays)) + "\n")
	}
	b.WriteString("\n")

	switch {
	case p.Weakness != nil:
		weaknessPlan(&b, g, p.Weakness)
	case p.Exam != nil:
		examPlan(&b, p.Exam)
	case p.Integration != nil:
		integrationPlan(&b, p.Integration)
	}
	return strings.TrimRight(b.String(), "\n")
}

func weaknessPlan(b *strings.Builder, g *topicgraph.Graph, s *review.WeaknessSchedule) {
	field(b, "弱项", strings.Join(labels(g, s.Weaknesses), "、"))
	field(b, "基础", strings.Join(labels(g, s.Foundation), "、"))
	b.WriteString("\n")

	for _, w := range s.Weeks {
		b.WriteString(theme.Subtitle.Render(w.Label) + "\n")
		if len(w.Topics) == 0 {
			b.WriteString(theme.Hint.Render("  自由复习") + "\n\n")
			continue
		}
		if w.Goal != "" {
			field(b, "  目标", w.Goal)
		}
		for _, d := range w.Days {
			fmt.Fprintf(b, "  第%d天  %s\n", d.Day, strings.Join(labels(g, d.Topics), "、"))
		}
		if w.Practice != "" {
			field(b, "  练习", w.Practice)
		}
		b.WriteString("\n")
	}

	field(b, "测评日", theme.Highlight.Render(joinDays(s.AssessmentDays)))
}

func examPlan(b *strings.Builder, s *review.ExamSchedule) {
	for _, ph := range s.Phases {
		b.WriteString(theme.Subtitle.Render(ph.Name) + "\n")
		field(b, "  重点", strings.Join(ph.Focus, "、"))
		for _, d := range ph.Days {
			if len(d.Topics) == 0 {
				fmt.Fprintf(b, "  第%d天  %s\n", d.Day, theme.Hint.Render("查漏补缺"))
				continue
			}
			fmt.Fprintf(b, "  第%d天  %s  %s  %s\n", d.Day,
				strings.Join(d.TopicNames, "、"),
				theme.Label.Render(d.Duration),
				theme.Label.Render(d.Practice.Basic+" "+d.Practice.Advanced))
		}
		field(b, "  题型", ph.PracticeType)
		b.WriteString("\n")
	}
	field(b, "模拟考试", theme.Highlight.Render(joinDays(s.MockExamDays)))
}

func integrationPlan(b *strings.Builder, s *review.IntegrationSchedule) {
	for _, c := range s.Clusters {
		b.WriteString(theme.Subtitle.Render(c.Description) + "\n")
		steps := make([]string, 0, len(c.Path))
		for _, t := range c.Path {
			steps = append(steps, fmt.Sprintf("%s(%d)", t.Name, t.PrerequisiteCount))
		}
		b.WriteString("  " + strings.Join(steps, " → ") + "\n")
		field(b, "  活动", strings.Join(c.Activities, "、"))
		b.WriteString("\n")
	}
	field(b, "项目", strings.Join(s.Projects, "、"))
}

func joinDays(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, "第"+strconv.Itoa(d)+"天")
	}
	return strings.Join(parts, " ")
}
