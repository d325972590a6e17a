// Package report renders round results and tallies for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/internal/tally"
	"github.com/lox/pokerhands/poker"
)

// Plain writes the tally in the classic "Player 1: N" format. Draws are only
// listed when there were any.
func Plain(w io.Writer, rep tally.Report) error {
	if _, err := fmt.Fprintf(w, "Player 1: %d\nPlayer 2: %d\n", rep.Score.Player1, rep.Score.Player2); err != nil {
		return err
	}
	if rep.Score.Draws > 0 {
		if _, err := fmt.Fprintf(w, "Draws: %d\n", rep.Score.Draws); err != nil {
			return err
		}
	}
	return nil
}

// ColorMode controls whether styled output uses colour.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Printer renders styled output to a writer.
type Printer struct {
	w io.Writer

	title  lipgloss.Style
	label  lipgloss.Style
	win    lipgloss.Style
	lose   lipgloss.Style
	draw   lipgloss.Style
	muted  lipgloss.Style
	border lipgloss.Style
}

// NewPrinter creates a printer. In auto mode the colour profile is detected from w.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		label: r.NewStyle().Width(10),
		win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
	}
}

// Tally renders the score, a per-category breakdown and timing.
func (p *Printer) Tally(rep tally.Report) error {
	total := rep.Rounds()
	s1, s2 := p.lose, p.lose
	switch {
	case rep.Score.Player1 > rep.Score.Player2:
		s1 = p.win
	case rep.Score.Player2 > rep.Score.Player1:
		s2 = p.win
	}

	lines := []string{
		p.title.Render(fmt.Sprintf("Results (%s rules)", rep.Rules)),
		"",
		p.label.Render("Player 1") + s1.Render(countLine(rep.Score.Player1, total)),
		p.label.Render("Player 2") + s2.Render(countLine(rep.Score.Player2, total)),
		p.label.Render("Draws") + p.draw.Render(countLine(rep.Score.Draws, total)),
		p.label.Render("Rounds") + fmt.Sprint(total),
	}

	if total > 0 {
		lines = append(lines, "", p.muted.Render(fmt.Sprintf("%-16s %8s %8s", "Category", "P1", "P2")))
		for i := len(poker.Categories) - 1; i >= 0; i-- {
			c := poker.Categories[i]
			if rep.Player1[c] == 0 && rep.Player2[c] == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("%-16s %8d %8d", c, rep.Player1[c], rep.Player2[c]))
		}
	}

	lines = append(lines, "", p.muted.Render(fmt.Sprintf("scored in %s", rep.Elapsed())))

	_, err := fmt.Fprintln(p.w, p.border.Render(strings.Join(lines, "\n")))
	return err
}

// Round renders one evaluated round with its explanation.
func (p *Printer) Round(res poker.Result) error {
	s1, s2 := p.lose, p.lose
	switch res.Outcome {
	case poker.Player1Wins:
		s1 = p.win
	case poker.Player2Wins:
		s2 = p.win
	default:
		s1, s2 = p.draw, p.draw
	}

	lines := []string{
		p.label.Render("Player 1") + s1.Render(fmt.Sprintf("%s  %s", res.Round.Player1, res.Category1)),
		p.label.Render("Player 2") + s2.Render(fmt.Sprintf("%s  %s", res.Round.Player2, res.Category2)),
		p.label.Render("Result") + res.Outcome.String(),
		p.muted.Render(res.Explain()),
	}
	_, err := fmt.Fprintln(p.w, strings.Join(lines, "\n"))
	return err
}

func countLine(n, total int) string {
	if total == 0 {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))
}
