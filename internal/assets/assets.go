// Package assets loads the game sprites and scales them to the terminal grid.
//
// Sprites are plain text files, one row of runes per line. Spaces are
// transparent when drawn. The built-in set is embedded; a directory with
// player.txt, car.txt and road.txt can replace it.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/vovakirdan/roadcross/internal/config"
)

//go:embed sprites/*.txt
var builtin embed.FS

// Sprite file names.
const (
	PlayerFile = "player.txt"
	CarFile    = "car.txt"
	RoadFile   = "road.txt"
)

// ErrEmptySprite is returned for a sprite file without any visible rows.
var ErrEmptySprite = errors.New("assets: empty sprite")

// Sprite is a pre-scaled block of runes W cells wide and H cells tall.
type Sprite struct {
	Rows []string
	W, H int
}

// Assets holds the three sprites the game draws.
type Assets struct {
	Player Sprite
	Car    Sprite
	Road   Sprite
}

// Load reads the sprites from dir, or the embedded set when dir is empty,
// and scales each to its configured pixel size on the cell grid.
func Load(dir string, cfg config.Config) (*Assets, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(builtin, "sprites")
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	cw, ch := cfg.Display.CellWidth, cfg.Display.CellHeight

	player, err := loadSprite(fsys, PlayerFile, cells(cfg.Player.Width, cw), cells(cfg.Player.Height, ch))
	if err != nil {
		return nil, err
	}
	car, err := loadSprite(fsys, CarFile, cells(cfg.Car.Width, cw), cells(cfg.Car.Height, ch))
	if err != nil {
		return nil, err
	}
	road, err := loadSprite(fsys, RoadFile, cells(cfg.Road.Width, cw), cells(cfg.Road.Height, ch))
	if err != nil {
		return nil, err
	}

	return &Assets{Player: player, Car: car, Road: road}, nil
}

// loadSprite reads and scales a single sprite file.
func loadSprite(fsys fs.FS, name string, w, h int) (Sprite, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Sprite{}, fmt.Errorf("assets: cannot load %s: %w", name, err)
	}
	src := Parse(string(data))
	if len(src) == 0 {
		return Sprite{}, fmt.Errorf("%w: %s", ErrEmptySprite, name)
	}
	return Scale(src, w, h), nil
}

// Parse splits sprite text into rows of runes, dropping trailing blank lines.
func Parse(text string) [][]rune {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return rows
}

// Scale resizes rows of runes to w x h with nearest-neighbor sampling.
// Short rows are padded with transparent spaces.
func Scale(src [][]rune, w, h int) Sprite {
	srcH := len(src)
	srcW := 0
	for _, row := range src {
		if len(row) > srcW {
			srcW = len(row)
		}
	}

	rows := make([]string, h)
	line := make([]rune, w)
	for ty := 0; ty < h; ty++ {
		row := src[ty*srcH/h]
		for tx := 0; tx < w; tx++ {
			sx := tx * srcW / w
			if sx < len(row) {
				line[tx] = row[sx]
			} else {
				line[tx] = ' '
			}
		}
		rows[ty] = string(line)
	}

	return Sprite{Rows: rows, W: w, H: h}
}

// cells converts a pixel length to a whole number of cells, at least one.
func cells(px, cellSize int) int {
	n := int(math.Round(float64(px) / float64(cellSize)))
	if n < 1 {
		n = 1
	}
	return n
}
