// Package config provides YAML-based game configuration loading and the
// settings derived from it for a given screen size.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/roadcross/internal/core"
)

// Config contains all tunable constants of the game.
// Distances are logical pixels, speeds are pixels per tick multiplied by the
// current game speed unless noted otherwise.
type Config struct {
	Title           string          `yaml:"title"`
	HighscorePrefix string          `yaml:"highscore_prefix"`
	Display         DisplayConfig   `yaml:"display"`
	Road            RoadConfig      `yaml:"road"`
	Player          PlayerConfig    `yaml:"player"`
	Car             CarConfig       `yaml:"car"`
	Spawn           SpawnConfig     `yaml:"spawn"`
	Speed           SpeedConfig     `yaml:"speed"`
	ScoreText       ScoreTextConfig `yaml:"score_text"`
	Death           DeathConfig     `yaml:"death"`
	Input           InputConfig     `yaml:"input"`
	Colors          ColorConfig     `yaml:"colors"`
}

// DisplayConfig maps logical pixels onto terminal cells.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Pixels covered by one terminal column
	CellHeight int `yaml:"cell_height"` // Pixels covered by one terminal row
	FPS        int `yaml:"fps"`
}

// RoadConfig defines the road tile and its lanes.
type RoadConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Rows   int `yaml:"rows"` // Number of lanes cars spawn in
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomMargin int `yaml:"bottom_margin"` // Gap between player and screen bottom
	Speed        int `yaml:"speed"`
}

// CarConfig defines traffic cars.
type CarConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	SpeedRandomAdd float64 `yaml:"speed_random_add"` // Upper bound of the random bonus, in 0.1 steps
}

// SpawnConfig defines how often and how many cars appear.
type SpawnConfig struct {
	Delay     int `yaml:"delay"`       // Ticks between spawn events at speed 1
	Chance    int `yaml:"chance"`      // Percent chance per lane
	MaxAtOnce int `yaml:"max_at_once"` // Cap per spawn event
}

// SpeedConfig defines the linear speed-up.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Step    float64 `yaml:"step"` // Added for every car that passes
}

// ScoreTextConfig defines the floating "+N" texts.
type ScoreTextConfig struct {
	BottomDist    int     `yaml:"bottom_dist"`
	BottomDistMax int     `yaml:"bottom_dist_max"`
	Speed         float64 `yaml:"speed"`
}

// DeathConfig defines the blink played after a collision.
type DeathConfig struct {
	BlinkCycles  int `yaml:"blink_cycles"`
	BlinkDelayMS int `yaml:"blink_delay_ms"`
}

// BlinkDelay returns the pause after each blink frame.
func (d DeathConfig) BlinkDelay() time.Duration {
	return time.Duration(d.BlinkDelayMS) * time.Millisecond
}

// InputConfig tunes key handling. Terminals only report key presses, so a
// key counts as held for HoldMS after its last press or autorepeat. Values
// below the terminal's autorepeat delay make held keys stutter.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// HoldWindow returns how long a key press stays held.
func (i InputConfig) HoldWindow() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// ColorConfig holds foreground colors for every drawn element.
type ColorConfig struct {
	Background    core.Color `yaml:"background"`
	Road          core.Color `yaml:"road"`
	Player        core.Color `yaml:"player"`
	Car           core.Color `yaml:"car"`
	ScoreAddText  core.Color `yaml:"score_add_text"`
	ScoreText     core.Color `yaml:"score_text"`
	HighscoreText core.Color `yaml:"highscore_text"`
}

// ErrScreenTooSmall is returned when the road does not fit on the screen.
var ErrScreenTooSmall = errors.New("config: screen too small")

// Validate checks that all sizes are positive and percentages in range.
func (c Config) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
		{"display.fps", c.Display.FPS},
		{"road.width", c.Road.Width},
		{"road.height", c.Road.Height},
		{"road.rows", c.Road.Rows},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"car.width", c.Car.Width},
		{"car.height", c.Car.Height},
		{"spawn.delay", c.Spawn.Delay},
		{"spawn.max_at_once", c.Spawn.MaxAtOnce},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", p.name, p.val)
		}
	}

	if c.Spawn.Chance < 0 || c.Spawn.Chance > 100 {
		return fmt.Errorf("config: spawn.chance must be within [0, 100], got %d", c.Spawn.Chance)
	}
	if c.Speed.Initial < 1 {
		return fmt.Errorf("config: speed.initial must be at least 1, got %v", c.Speed.Initial)
	}
	if c.Speed.Step < 0 || c.Car.Speed <= 0 || c.Car.SpeedRandomAdd < 0 || c.ScoreText.Speed < 0 {
		return errors.New("config: speeds must not be negative")
	}
	if c.Player.Width > c.Road.Width || c.Car.Width > c.Road.Width/c.Road.Rows {
		return errors.New("config: player and lanes must fit on the road")
	}
	if c.Death.BlinkCycles < 0 || c.Death.BlinkDelayMS < 0 || c.Input.HoldMS < 0 {
		return errors.New("config: death and input timings must not be negative")
	}
	return nil
}

// Settings is a Config resolved against a concrete screen size.
// All values are logical pixels.
type Settings struct {
	Config

	ScreenW     int
	ScreenH     int
	RoadXOffset int   // Left edge of the road on screen
	PlayerY     int   // Fixed top edge of the player
	Lanes       []int // Car x positions relative to the road, in lane order
}

// Resolve derives the screen-dependent settings.
func (c Config) Resolve(screenW, screenH int) (Settings, error) {
	if err := c.Validate(); err != nil {
		return Settings{}, err
	}

	s := Settings{
		Config:      c,
		ScreenW:     screenW,
		ScreenH:     screenH,
		RoadXOffset: (screenW - c.Road.Width) / 2,
		PlayerY:     screenH - c.Player.Height - c.Player.BottomMargin,
	}
	if screenW < c.Road.Width || s.PlayerY < 0 {
		return Settings{}, fmt.Errorf("%w: %dx%d pixels, need at least %dx%d",
			ErrScreenTooSmall, screenW, screenH,
			c.Road.Width, c.Player.Height+c.Player.BottomMargin)
	}

	laneW := c.Road.Width / c.Road.Rows
	s.Lanes = make([]int, c.Road.Rows)
	for i := range s.Lanes {
		s.Lanes[i] = laneW*(2*i+1)/2 - c.Car.Width/2
	}
	return s, nil
}

// ResolveCells derives settings for a terminal of the given size in cells.
func (c Config) ResolveCells(cols, rows int) (Settings, error) {
	return c.Resolve(cols*c.Display.CellWidth, rows*c.Display.CellHeight)
}
