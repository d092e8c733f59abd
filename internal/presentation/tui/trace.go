package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/densca/pkg/domain"
	"github.com/muesli/termenv"
)

// TraceRenderer draws configurations as three lines of one character per cell:
// the values (X for a captured symbol), the signal color (R or B) and the memory set
// (_ empty, . holds 0, , holds 1, ; holds both). Boolean cells are blank on the last
// two lines.
type TraceRenderer struct {
	profile termenv.Profile
}

// NewTraceRenderer returns a renderer that colors glyphs for the given profile.
// termenv.Ascii produces plain text.
func NewTraceRenderer(p termenv.Profile) *TraceRenderer {
	return &TraceRenderer{profile: p}
}

// Render returns the three lines for c, newline-terminated.
func (r *TraceRenderer) Render(c *domain.Configuration) string {
	var values, colors, memory strings.Builder
	for i := 0; i < c.Size(); i++ {
		cell := c.Cell(i)
		values.WriteString(r.style(valueGlyph(cell), valueColor(cell)))
		colors.WriteString(r.style(colorGlyph(cell), colorColor(cell)))
		memory.WriteString(r.style(memoryGlyph(cell), ""))
	}
	return values.String() + "\n" + colors.String() + "\n" + memory.String() + "\n"
}

// Print writes every snapshot to w.
func (r *TraceRenderer) Print(w io.Writer, snapshots []*domain.Configuration) error {
	for _, c := range snapshots {
		if _, err := io.WriteString(w, r.Render(c)); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}
	return nil
}

func (r *TraceRenderer) style(glyph, hex string) string {
	if hex == "" || r.profile == termenv.Ascii {
		return glyph
	}
	return termenv.String(glyph).Foreground(r.profile.Color(hex)).String()
}

func valueGlyph(c domain.Cell) string {
	switch {
	case c.Intermediate && c.Captured:
		return "X"
	case c.Value:
		return "1"
	}
	return "0"
}

func valueColor(c domain.Cell) string {
	if c.Intermediate && c.Captured {
		return "#facc15"
	}
	return ""
}

func colorGlyph(c domain.Cell) string {
	switch {
	case !c.Intermediate:
		return " "
	case c.Color:
		return "R"
	}
	return "B"
}

func colorColor(c domain.Cell) string {
	switch {
	case !c.Intermediate:
		return ""
	case c.Color:
		return "#f87171"
	}
	return "#60a5fa"
}

func memoryGlyph(c domain.Cell) string {
	if !c.Intermediate {
		return " "
	}
	switch {
	case c.Mem0 && c.Mem1:
		return ";"
	case c.Mem0:
		return "."
	case c.Mem1:
		return ","
	}
	return "_"
}
