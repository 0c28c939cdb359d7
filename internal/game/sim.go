package game

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Collided bool // The player hit a car; the run is over
	Passed   int  // Cars that left the screen and were scored
	Spawned  int  // Cars created by a spawn event
}

// Simulator advances a State by fixed ticks.
type Simulator struct {
	cfg          config.Settings
	font         Font
	rng          *rand.Rand
	speedStep    int // Hundredths added per passed car
	randomTenths int // Upper bound of the random car speed bonus in tenths
}

// NewSimulator creates a simulator with its own RNG seeded by seed.
func NewSimulator(s config.Settings, font Font, seed int64) *Simulator {
	return &Simulator{
		cfg:          s,
		font:         font,
		rng:          rand.New(rand.NewSource(seed)),
		speedStep:    hundredths(s.Speed.Step),
		randomTenths: int(math.Round(s.Car.SpeedRandomAdd * 10)),
	}
}

// Tick advances the state by one tick. The per-tick displacement is the
// integer part of the game speed, fixed for the whole tick. Nothing happens
// once the state has crashed.
func (sim *Simulator) Tick(st *State, in core.InputFrame) TickResult {
	var res TickResult
	if st.Crashed {
		return res
	}

	ts := st.TickSpeed()
	st.Ticks++

	sim.movePlayer(st, in, ts)
	sim.scrollRoad(st, ts)
	sim.ageScoreTexts(st, ts)
	res.Spawned = sim.updateSpawner(st, ts)
	res.Passed, res.Collided = sim.advanceCars(st, ts)

	return res
}

// movePlayer applies right and then left independently. Holding both keys
// runs both steps; each is clamped to the road edge on its own.
func (sim *Simulator) movePlayer(st *State, in core.InputFrame, ts int) {
	step := sim.cfg.Player.Speed * ts
	maxX := sim.cfg.Road.Width - sim.cfg.Player.Width

	if in.Has(core.ActionRight) {
		st.PlayerX += core.Min(step, maxX-st.PlayerX)
	}
	if in.Has(core.ActionLeft) {
		st.PlayerX -= core.Min(step, st.PlayerX)
	}
}

// scrollRoad moves the road tiles. Reaching the tile height snaps the offset
// back to 0 rather than keeping the remainder.
func (sim *Simulator) scrollRoad(st *State, ts int) {
	st.RoadYOffset += ts
	if st.RoadYOffset >= sim.cfg.Road.Height {
		st.RoadYOffset = 0
	}
}

// ageScoreTexts moves floating texts up and drops those that travelled far
// enough.
func (sim *Simulator) ageScoreTexts(st *State, ts int) {
	kept := st.ScoreTexts[:0]
	for _, t := range st.ScoreTexts {
		limit := float64(sim.cfg.ScreenH - t.Glyph.H - sim.cfg.ScoreText.BottomDistMax)
		if t.Y > limit {
			t.Y -= float64(ts) * sim.cfg.ScoreText.Speed
			kept = append(kept, t)
		}
	}
	clearTail(st.ScoreTexts, len(kept))
	st.ScoreTexts = kept
}

// updateSpawner accumulates the spawn timer and runs a spawn event when due.
func (sim *Simulator) updateSpawner(st *State, ts int) int {
	st.CarSpawnWaited += ts
	if st.CarSpawnWaited < sim.cfg.Spawn.Delay {
		return 0
	}
	st.CarSpawnWaited = 0
	return sim.spawnCars(st)
}

// spawnCars visits the lanes in a fresh random order and gives each one a
// CAR_SPAWN_CHANCE percent chance of a new car, up to MaxAtOnce cars.
func (sim *Simulator) spawnCars(st *State) int {
	sim.rng.Shuffle(len(st.Lanes), func(i, j int) {
		st.Lanes[i], st.Lanes[j] = st.Lanes[j], st.Lanes[i]
	})

	spawned := 0
	for _, x := range st.Lanes {
		if spawned >= sim.cfg.Spawn.MaxAtOnce {
			break
		}
		if sim.rng.Intn(100) >= sim.cfg.Spawn.Chance {
			continue
		}

		bonus := float64(sim.rng.Intn(sim.randomTenths+1)) / 10
		st.Cars = append(st.Cars, Car{
			X:     x,
			Y:     -float64(sim.cfg.Road.Height),
			Speed: sim.cfg.Car.Speed + bonus,
		})
		spawned++
	}
	return spawned
}

// advanceCars moves every car on screen, scores cars that left it and stops
// at the first collision with the player.
func (sim *Simulator) advanceCars(st *State, ts int) (passed int, collided bool) {
	s := sim.cfg
	player := core.NewRect(float64(st.PlayerX), float64(s.PlayerY), float64(s.Player.Width), float64(s.Player.Height))
	screenH := float64(s.ScreenH)

	kept := st.Cars[:0]
	for i, car := range st.Cars {
		if car.Y < screenH {
			if car.Rect(s.Car.Width, s.Car.Height).Intersects(player) {
				st.speed = 0
				st.Crashed = true
				// Cars not yet visited stay as they are
				st.Cars = append(kept, st.Cars[i:]...)
				return passed, true
			}
			car.Y += float64(ts) * car.Speed
			kept = append(kept, car)
			continue
		}

		st.Score += ts
		st.speed += sim.speedStep
		st.CarsPassed++
		passed++

		glyph := sim.font.Render("+"+strconv.Itoa(st.TickSpeed()), s.Colors.ScoreAddText)
		st.ScoreTexts = append(st.ScoreTexts, ScoreText{
			Glyph: glyph,
			X:     car.X + s.Car.Width/2 - glyph.W/2,
			Y:     float64(s.ScreenH - glyph.H - s.ScoreText.BottomDist),
		})
	}
	st.Cars = kept
	return passed, false
}

// clearTail zeroes the elements past n so dropped glyphs can be collected.
func clearTail[T any](s []T, n int) {
	var zero T
	for i := n; i < len(s); i++ {
		s[i] = zero
	}
}
