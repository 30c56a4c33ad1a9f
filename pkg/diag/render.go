package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Render writes the diagnostic to w: kind, location and message, followed by
// the attached source line with a caret underline when source context was
// recorded. Rendering is idempotent; the same diagnostic renders the same
// output every time until the owning slot is cleared.
func (d *Diagnostic) Render(w io.Writer) {
	style := errorStyle(w)

	fmt.Fprintln(w, style.Render(fmt.Sprintf("%s Error at line %d, column %d: %s",
		d.Kind, d.Line, d.Column, d.Message)))

	if !d.HasSource {
		return
	}

	fmt.Fprintln(w, d.SourceLine)
	fmt.Fprintf(w, "%s%s\n",
		strings.Repeat(" ", d.Pos),
		style.Render(strings.Repeat("^", d.Len)))
}

// Render writes the pending diagnostic to w, if any.
func (s *Slot) Render(w io.Writer) {
	if s.d == nil {
		return
	}
	s.d.Render(w)
}

// errorStyle builds the red error style against the writer's own color
// profile, so output degrades to plain text when w is not a terminal or
// NO_COLOR is set.
func errorStyle(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w, termenv.WithColorCache(true))
	return r.NewStyle().Foreground(lipgloss.Color("9"))
}
