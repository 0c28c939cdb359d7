package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roadcross/internal/core"
)

// Painter converts Screen buffers to styled strings for one output.
// Styles are created lazily per color through the output's renderer, so an
// SSH session gets the color profile of its own terminal.
type Painter struct {
	renderer   *lipgloss.Renderer
	background core.Color
	styles     map[core.Color]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses the default one for
// stdout.
func NewPainter(r *lipgloss.Renderer, background core.Color) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer:   r,
		background: background,
		styles:     make(map[core.Color]lipgloss.Style),
	}
}

// style returns the cached style for a foreground color.
func (p *Painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c))
	}
	if p.background != core.ColorDefault {
		st = st.Background(lipgloss.Color(p.background))
	}
	p.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
