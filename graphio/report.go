package graphio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleStatLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleStatValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
)

// Report is the outcome of one enumeration run, formatted for the CLI.
// The two required lines (Clique count / Elapsed Time) are fixed output
// and are never styled; the optional statistics block is a supplemental,
// lipgloss-styled addition only emitted when Recorded is true.
type Report struct {
	Count   int
	Elapsed time.Duration

	Recorded     bool
	TotalNodes   int
	Explored     int
	Pruned       int
	Leaves       int
	MaxDepth     int
	PruningRatio float64
}

// WriteTo renders the report to w: first the two fixed lines verbatim,
// then (when Recorded) the statistics block.
func (r Report) WriteTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Clique count: %d\n", r.Count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Elapsed Time: %d ms\n", r.Elapsed.Milliseconds()); err != nil {
		return err
	}

	if !r.Recorded {
		return nil
	}

	stat := func(label string, value interface{}) error {
		_, err := fmt.Fprintf(w, "%s: %s\n", styleStatLabel.Render(label), styleStatValue.Render(fmt.Sprint(value)))

		return err
	}

	if err := stat("Total nodes", r.TotalNodes); err != nil {
		return err
	}
	if err := stat("Explored", r.Explored); err != nil {
		return err
	}
	if err := stat("Pruned", r.Pruned); err != nil {
		return err
	}
	if err := stat("Pruning ratio", fmt.Sprintf("%.2f%%", r.PruningRatio*100)); err != nil {
		return err
	}
	if err := stat("Leaves", r.Leaves); err != nil {
		return err
	}

	return stat("Max depth", r.MaxDepth)
}
