package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Domain colours follow the printed roadmap: one hue per review module.
var (
	domainColors = map[string]color.Color{
		"数与代数进阶":  lipgloss.Color("#E74C3C"),
		"图形与几何深化": lipgloss.Color("#3498DB"),
		"统计与概率基础": lipgloss.Color("#9B59B6"),
		"综合应用":    lipgloss.Color("#2ECC71"),
	}
	defaultDomainColor = lipgloss.Color("#95A5A6")
)

// DomainColor returns the colour for a domain; foundational and unknown
// domains share a neutral grey.
func DomainColor(domain string) color.Color {
	if c, ok := domainColors[domain]; ok {
		return c
	}
	return defaultDomainColor
}

// Domain returns a bold style in the domain's colour.
func Domain(domain string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(DomainColor(domain))
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Mastered = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Pending = lipgloss.NewStyle().
		Foreground(TextDim)

	Warning = lipgloss.NewStyle().
		Foreground(Error)

	Highlight = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
