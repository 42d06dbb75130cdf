package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathmap/internal/review"
	"github.com/abhisek/mathmap/internal/ui/theme"
)

// Roadmap renders the review stages with a mastery bar per stage.
func Roadmap(stages []review.Stage, width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("六年级数学总复习路线图") + "\n\n")

	for _, s := range stages {
		mastered := 0
		for _, t := range s.Topics {
			if t.Mastered {
				mastered++
			}
		}
		var pct float64
		if len(s.Topics) > 0 {
			pct = float64(mastered) / float64(len(s.Topics))
		}

		b.WriteString(theme.Subtitle.Render(s.Name) + "\n")
		b.WriteString(progressBar(fmt.Sprintf("%d/%d", mastered, len(s.Topics)), pct, width) + "\n")
		for _, t := range s.Topics {
			mark := theme.Pending.Render(markPending)
			if t.Mastered {
				mark = theme.Mastered.Render(markMastered)
			}
			fmt.Fprintf(&b, "  %s %s %s\n", mark, t.ID, theme.Domain(t.Domain).Render(t.Name))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// progressBar renders a horizontal bar of the given total width.
func progressBar(label string, percent float64, width int) string {
	var result string
	if label != "" {
		result += theme.Body.Render(label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	const percentWidth = 6 // "  100%"

	barWidth := max(width-labelWidth-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*percent), 0), barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += theme.Label.Render(fmt.Sprintf("  %d%%", int(percent*100)))
	return result
}
