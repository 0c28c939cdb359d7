package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/roadcross/internal/assets"
	"github.com/vovakirdan/roadcross/internal/core"
)

func solid(r rune, w, h int) assets.Sprite {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(string(r), w)
	}
	return assets.Sprite{Rows: rows, W: w, H: h}
}

// newTestRenderer uses solid sprites sized like the built-in ones:
// player 6x5, car 7x5 and road 49x21 cells.
func newTestRenderer(t *testing.T) (*Renderer, *State) {
	t.Helper()
	s := testSettings(t)
	a := &assets.Assets{
		Player: solid('P', 6, 5),
		Car:    solid('C', 7, 5),
		Road:   solid('.', 49, 21),
	}
	return NewRenderer(s, a, NewFont(s.Display)), NewState(s, 42)
}

func TestDrawPlayerAndScore(t *testing.T) {
	r, st := newTestRenderer(t)
	dst := core.NewScreen(80, 45)

	// Road starts at 124px (col 15); player at 124+174 = 298px (col 37),
	// 561px (row 35)
	r.Draw(dst, st, true)
	if got := dst.GetCell(37, 35); got.Rune != 'P' || got.Color != r.cfg.Colors.Player {
		t.Errorf("player cell = %+v, expected P", got)
	}

	// Score "0" centered on the player: 298+22-4 = 316px, 561+42-8 = 595px
	if got := dst.GetCell(39, 37); got.Rune != '0' || got.Color != r.cfg.Colors.ScoreText {
		t.Errorf("score cell = %+v, expected 0", got)
	}

	r.Draw(dst, st, false)
	if got := dst.Get(37, 35); got != '.' {
		t.Errorf("hidden player cell = %q, expected road", got)
	}
	if got := dst.Get(39, 37); got != '0' {
		t.Errorf("score is drawn without the player: got %q", got)
	}
}

func TestDrawHighscore(t *testing.T) {
	r, st := newTestRenderer(t)
	dst := core.NewScreen(80, 45)
	r.Draw(dst, st, true)

	// 20px maps to col 2, row 1
	row := []rune(dst.Row(1))
	if got := string(row[2:15]); got != "Highscore: 42" {
		t.Errorf("highscore text = %q, expected %q", got, "Highscore: 42")
	}
	if got := dst.GetCell(2, 1).Color; got != r.cfg.Colors.HighscoreText {
		t.Errorf("highscore color = %q, expected %q", got, r.cfg.Colors.HighscoreText)
	}
}

func TestDrawRoadCoversScreen(t *testing.T) {
	for _, offset := range []int{0, 8, 100, 335} {
		r, st := newTestRenderer(t)
		st.RoadYOffset = offset
		dst := core.NewScreen(80, 45)
		r.Draw(dst, st, false)

		for y := 0; y < dst.Height(); y++ {
			if got := dst.Get(15, y); got != '.' {
				t.Errorf("offset %d: row %d left road cell = %q, expected road", offset, y, got)
			}
			if got := dst.Get(63, y); got != '.' {
				t.Errorf("offset %d: row %d right road cell = %q, expected road", offset, y, got)
			}
		}
		if got := dst.Get(14, 10); got != ' ' {
			t.Errorf("offset %d: cell left of the road = %q, expected blank", offset, got)
		}
	}
}

func TestDrawCarAboveScreen(t *testing.T) {
	r, st := newTestRenderer(t)
	// -40px is row -3; a 5-row car shows its last two rows
	st.Cars = []Car{{X: 22, Y: -40, Speed: 1.2}}
	dst := core.NewScreen(80, 45)
	r.Draw(dst, st, true)

	// 124+22 = 146px is col 18
	for _, y := range []int{0, 1} {
		if got := dst.Get(18, y); got != 'C' {
			t.Errorf("row %d car cell = %q, expected C", y, got)
		}
	}
	if got := dst.Get(18, 2); got != '.' {
		t.Errorf("row 2 cell = %q, expected road", got)
	}
}

func TestDrawScoreTexts(t *testing.T) {
	r, st := newTestRenderer(t)
	font := NewFont(r.cfg.Display)
	st.ScoreTexts = []ScoreText{{Glyph: font.Render("+5", "#00FF00"), X: 40, Y: 684}}
	dst := core.NewScreen(80, 45)
	r.Draw(dst, st, true)

	// 124+40 = 164px is col 20; 684px is row 42
	if got := dst.GetCell(20, 42); got.Rune != '+' || got.Color != "#00FF00" {
		t.Errorf("text cell = %+v, expected green +", got)
	}
	if got := dst.Get(21, 42); got != '5' {
		t.Errorf("text cell = %q, expected 5", got)
	}
}

func TestDrawDoesNotModifyState(t *testing.T) {
	r, st := newTestRenderer(t)
	st.Cars = []Car{{X: 120, Y: 10, Speed: 1.3}}
	st.Score = 17
	before := *st
	before.Cars = append([]Car(nil), st.Cars...)

	r.Draw(core.NewScreen(80, 45), st, true)

	if st.Score != before.Score || st.PlayerX != before.PlayerX || st.Cars[0] != before.Cars[0] {
		t.Error("Draw changed the state")
	}
}
