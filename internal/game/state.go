// Package game implements the road-crossing simulation and its renderer.
//
// The simulation runs in logical pixels. State holds everything that changes
// during a run, Simulator advances it one fixed tick at a time and Renderer
// draws it onto a core.Screen. Nothing here knows about Bubble Tea.
package game

import (
	"math"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// Car is a traffic car. X is relative to the road's left edge; Y is the top
// edge on screen and is negative while the car is still above the screen.
type Car struct {
	X     int
	Y     float64
	Speed float64 // Multiplier applied to the tick speed
}

// Rect returns the collision rectangle of the car.
func (c Car) Rect(w, h int) core.Rect {
	return core.NewRect(float64(c.X), c.Y, float64(w), float64(h))
}

// ScoreText is a floating "+N" label that drifts up after a car is passed.
// X is relative to the road's left edge.
type ScoreText struct {
	Glyph Glyph
	X     int
	Y     float64
}

// State is the mutable data of one run.
type State struct {
	Score          int
	RoadYOffset    int // Vertical scroll of the road tiles, in [0, road height)
	PlayerX        int // Relative to the road's left edge
	CarSpawnWaited int // Tick speed accumulated since the last spawn event
	Cars           []Car
	ScoreTexts     []ScoreText
	Highscore      int   // Loaded once when the run starts
	Lanes          []int // Lane x positions, reshuffled on every spawn event

	CarsPassed int
	Ticks      int
	Crashed    bool

	speed int // Game speed in hundredths, so +0.05 steps stay exact
}

// NewState returns the state at the start of a run.
func NewState(s config.Settings, highscore int) *State {
	lanes := make([]int, len(s.Lanes))
	copy(lanes, s.Lanes)

	return &State{
		PlayerX:   s.Road.Width/2 - s.Player.Width/2,
		Highscore: highscore,
		Lanes:     lanes,
		speed:     hundredths(s.Speed.Initial),
	}
}

// GameSpeed returns the current speed multiplier. It is 0 after a crash.
func (st *State) GameSpeed() float64 {
	return float64(st.speed) / 100
}

// TickSpeed returns the integer part of the game speed, the number of pixels
// the world moves per tick.
func (st *State) TickSpeed() int {
	return st.speed / 100
}

// hundredths converts a speed value to fixed point.
func hundredths(v float64) int {
	return int(math.Round(v * 100))
}
