package game

import (
	"math"
	"strconv"

	"github.com/vovakirdan/roadcross/internal/assets"
	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// HighscoreX and HighscoreY place the highscore label, in pixels.
const (
	HighscoreX = 20
	HighscoreY = 20
)

// Renderer draws a State onto a cell screen. Positions are computed in
// pixels and mapped to the cell containing their top-left corner.
type Renderer struct {
	cfg    config.Settings
	assets *assets.Assets
	font   Font
}

// NewRenderer creates a renderer for the given settings and sprites.
func NewRenderer(s config.Settings, a *assets.Assets, font Font) *Renderer {
	return &Renderer{cfg: s, assets: a, font: font}
}

// Draw renders the full frame. The player is skipped when drawPlayer is
// false, which is how the death blink hides it. The state is not modified.
func (r *Renderer) Draw(dst *core.Screen, st *State, drawPlayer bool) {
	s := r.cfg
	c := s.Colors
	dst.Clear()

	// Road tiles, one above the screen so the scroll never shows a gap
	for i := 0; i < s.ScreenH/s.Road.Height+2; i++ {
		y := (i-1)*s.Road.Height + st.RoadYOffset
		r.blit(dst, s.RoadXOffset, float64(y), r.assets.Road, c.Road)
	}

	for _, car := range st.Cars {
		r.blit(dst, s.RoadXOffset+car.X, car.Y, r.assets.Car, c.Car)
	}

	if drawPlayer {
		r.blit(dst, s.RoadXOffset+st.PlayerX, float64(s.PlayerY), r.assets.Player, c.Player)
	}

	for _, t := range st.ScoreTexts {
		r.text(dst, s.RoadXOffset+t.X, t.Y, t.Glyph)
	}

	score := r.font.Render(strconv.Itoa(st.Score), c.ScoreText)
	r.text(dst,
		s.RoadXOffset+st.PlayerX+s.Player.Width/2-score.W/2,
		float64(s.PlayerY+s.Player.Height/2-score.H/2),
		score)

	high := r.font.Render(s.HighscorePrefix+strconv.Itoa(st.Highscore), c.HighscoreText)
	r.text(dst, HighscoreX, HighscoreY, high)
}

// blit draws a sprite whose top-left corner is at pixel (x, y).
func (r *Renderer) blit(dst *core.Screen, x int, y float64, sp assets.Sprite, col core.Color) {
	cx, cy := r.cell(x, y)
	dst.Blit(cx, cy, sp.Rows, col)
}

// text draws a glyph whose top-left corner is at pixel (x, y).
func (r *Renderer) text(dst *core.Screen, x int, y float64, g Glyph) {
	cx, cy := r.cell(x, y)
	dst.DrawTextColor(cx, cy, g.Text, g.Color)
}

// cell maps a pixel position to the cell that contains it.
func (r *Renderer) cell(x int, y float64) (int, int) {
	d := r.cfg.Display
	return core.FloorDiv(x, d.CellWidth), int(math.Floor(y / float64(d.CellHeight)))
}
