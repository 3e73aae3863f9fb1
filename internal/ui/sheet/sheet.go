// Package sheet renders generated questions as a printable worksheet of
// abacus cards.
package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/pms-safya/abacus/internal/competition"
	"github.com/pms-safya/abacus/internal/narration"
	"github.com/pms-safya/abacus/internal/problemgen"
	"github.com/pms-safya/abacus/internal/ui/theme"
)

// DefaultColumns is the number of cards per line when Options.Columns is
// not set.
const DefaultColumns = 5

// Options controls worksheet layout.
type Options struct {
	Title    string
	Subtitle string

	// Answers prints each answer under the rule line instead of a blank.
	Answers bool

	Columns int

	// Styles defaults to theme.Plain().
	Styles *theme.Sheet
}

// Render lays qs out as numbered cards, Columns per line. Rows are right
// aligned so the ones digits line up the way they do on the abacus.
func Render(qs []problemgen.Question, opts Options) string {
	st := theme.Plain()
	if opts.Styles != nil {
		st = *opts.Styles
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}

	var blocks []string
	if opts.Title != "" {
		blocks = append(blocks, st.Title.Render(opts.Title))
	}
	if opts.Subtitle != "" {
		blocks = append(blocks, st.Subtitle.Render(opts.Subtitle))
	}
	if len(blocks) > 0 {
		blocks = append(blocks, "")
	}

	width := cardWidth(qs)
	cards := make([]string, len(qs))
	for i, q := range qs {
		cards[i] = renderCard(i+1, q, width, opts.Answers, st)
	}
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// cardLines returns the text of every row of q as printed on a card.
func cardLines(q problemgen.Question) []string {
	if q.Category == problemgen.CategoryMultiplication && len(q.Rows) == 2 {
		return []string{strconv.Itoa(q.Rows[0]), "x " + strconv.Itoa(q.Rows[1])}
	}
	lines := make([]string, len(q.Rows))
	for i, r := range q.Rows {
		if i == 0 {
			lines[i] = strconv.Itoa(r)
			continue
		}
		lines[i] = narration.DisplayRow(r)
	}
	return lines
}

// cardWidth is the widest row or answer over every question, so all
// cards in a sheet share one width.
func cardWidth(qs []problemgen.Question) int {
	w := 4
	for _, q := range qs {
		for _, line := range cardLines(q) {
			w = max(w, len(line))
		}
		w = max(w, len(strconv.Itoa(q.Answer)))
	}
	return w
}

func renderCard(n int, q problemgen.Question, width int, answers bool, st theme.Sheet) string {
	right := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)

	lines := []string{st.Number.Render(right.Render(fmt.Sprintf("Q%d", n)))}
	for i, line := range cardLines(q) {
		style := st.Row
		if q.Category != problemgen.CategoryMultiplication && q.Rows[i] < 0 {
			style = st.Negative
		}
		lines = append(lines, style.Render(right.Render(line)))
	}
	lines = append(lines, st.Rule.Render(strings.Repeat("-", width)))
	if answers {
		lines = append(lines, st.Answer.Render(right.Render(strconv.Itoa(q.Answer))))
	} else {
		lines = append(lines, st.Blank.Render(strings.Repeat(" ", width)))
	}

	return st.Card.Render(strings.Join(lines, "\n"))
}

// RenderSummary tabulates a paper's rounds with their timed lengths.
func RenderSummary(paper competition.Paper, styles *theme.Sheet) string {
	st := theme.Plain()
	if styles != nil {
		st = *styles
	}
	sum := paper.Summary()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Round", "Drill", "Questions", "Per question", "Time")
	for i, r := range paper.Rounds {
		t.Row(
			r.Name,
			drillLabel(r.Settings),
			strconv.Itoa(len(r.Questions)),
			fmt.Sprintf("%gs", r.Settings.TimePerQuestion),
			sum.Rounds[i].Duration.String(),
		)
	}
	t.Row("Total", "", strconv.Itoa(sum.Questions), "", sum.Duration.String())

	last := len(paper.Rounds)
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch row {
		case table.HeaderRow:
			return st.Header
		case last:
			return st.Total
		default:
			return st.Cell
		}
	})

	var b strings.Builder
	b.WriteString(st.Title.Render(paper.Title))
	if paper.Branch != "" {
		b.WriteString("\n")
		b.WriteString(st.Subtitle.Render(paper.Branch))
	}
	b.WriteString("\n\n")
	b.WriteString(t.String())
	return b.String()
}

// drillLabel names what a round practises, e.g. "addition, big-friends,
// double, 7 rows" or "multiplication 2x1".
func drillLabel(s competition.Settings) string {
	if s.Category == problemgen.CategoryMultiplication {
		return fmt.Sprintf("multiplication %s", s.MultLevel)
	}
	return fmt.Sprintf("addition, %s, %s, %d rows", s.Rule, s.DigitType, s.RowCount)
}
