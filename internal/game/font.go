package game

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// Glyph is rendered text ready to be placed on screen. W and H are its
// extent in logical pixels.
type Glyph struct {
	Text  string
	Color core.Color
	W, H  int
}

// Font rasterizes text onto the cell grid: one terminal cell per column of
// text, one row tall.
type Font struct {
	CellW int
	CellH int
}

// NewFont returns the font matching the display cell size.
func NewFont(d config.DisplayConfig) Font {
	return Font{CellW: d.CellWidth, CellH: d.CellHeight}
}

// Render measures text and returns its glyph.
func (f Font) Render(text string, c core.Color) Glyph {
	return Glyph{
		Text:  text,
		Color: c,
		W:     runewidth.StringWidth(text) * f.CellW,
		H:     f.CellH,
	}
}
