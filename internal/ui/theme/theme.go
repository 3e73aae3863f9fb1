package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Bright enough for a classroom projector, calm on paper.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Sheet is the set of styles a worksheet is drawn with.
type Sheet struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Card     lipgloss.Style
	Number   lipgloss.Style // "Q12" label above a card
	Row      lipgloss.Style
	Negative lipgloss.Style // subtracted rows
	Rule     lipgloss.Style // line between rows and answer
	Answer   lipgloss.Style
	Blank    lipgloss.Style // answer line when answers are hidden

	Header lipgloss.Style // summary table header
	Cell   lipgloss.Style
	Total  lipgloss.Style
}

// Colored returns the terminal worksheet styles.
func Colored() Sheet {
	return Sheet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(TextDim),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			MarginRight(1),

		Number: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),

		Row: lipgloss.NewStyle(),

		Negative: lipgloss.NewStyle().
			Foreground(Error),

		Rule: lipgloss.NewStyle().
			Foreground(Border),

		Answer: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Blank: lipgloss.NewStyle().
			Foreground(TextDim),

		Header: lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		Total: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Padding(0, 1),
	}
}

// Plain returns the same layout without colors or emphasis, for
// printing and for piping into files.
func Plain() Sheet {
	return Sheet{
		Title:    lipgloss.NewStyle(),
		Subtitle: lipgloss.NewStyle(),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			MarginRight(1),
		Number:   lipgloss.NewStyle(),
		Row:      lipgloss.NewStyle(),
		Negative: lipgloss.NewStyle(),
		Rule:     lipgloss.NewStyle(),
		Answer:   lipgloss.NewStyle(),
		Blank:    lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle().Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Total:    lipgloss.NewStyle().Padding(0, 1),
	}
}
