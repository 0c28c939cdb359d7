// Package session runs one life of the game: the player drives until a
// collision, the player sprite blinks, and the result is persisted.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/game"
	"github.com/vovakirdan/roadcross/internal/storage"
)

// Phase is the stage a session is in.
type Phase int

const (
	PhaseAlive Phase = iota // Simulation is running
	PhaseDying              // Collision happened, the player is blinking
	PhaseEnded              // Blink finished, ready to persist
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAlive:
		return "Alive"
	case PhaseDying:
		return "Dying"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// ErrSessionActive is returned by Finish before the death sequence is over.
var ErrSessionActive = errors.New("session: still running")

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a new session.
type Options struct {
	Settings   config.Settings
	Font       game.Font
	Highscores storage.HighscoreStore
	History    RunRecorder // Optional
	Player     string      // Name recorded in the run history
	Seed       int64
	Logger     *log.Logger // Optional, nil discards
}

// Result is the outcome of a finished session.
type Result struct {
	Score        int
	Highscore    int  // Highscore loaded when the session started
	NewHighscore bool // Score beat Highscore and was saved
}

// Session owns the state of one run.
type Session struct {
	opts     Options
	logger   *log.Logger
	sim      *game.Simulator
	state    *game.State
	phase    Phase
	frame    int // Blink frames shown so far
	topSpeed float64

	finished bool
	result   Result
}

// New starts a session. The highscore is read once here; a missing or
// unreadable file counts as 0.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	highscore := 0
	if opts.Highscores != nil {
		highscore = opts.Highscores.LoadHighscore()
	}

	st := game.NewState(opts.Settings, highscore)
	logger.Debug("session started", "player", opts.Player, "seed", opts.Seed, "highscore", highscore)

	return &Session{
		opts:     opts,
		logger:   logger,
		sim:      game.NewSimulator(opts.Settings, opts.Font, opts.Seed),
		state:    st,
		topSpeed: st.GameSpeed(),
	}
}

// State returns the simulation state for rendering.
func (s *Session) State() *game.State {
	return s.state
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Step advances the simulation by one tick while alive. A collision moves
// the session to Dying, or straight to Ended when blinking is disabled.
func (s *Session) Step(in core.InputFrame) game.TickResult {
	if s.phase != PhaseAlive {
		return game.TickResult{}
	}

	res := s.sim.Tick(s.state, in)
	if speed := s.state.GameSpeed(); speed > s.topSpeed {
		s.topSpeed = speed
	}

	if res.Collided {
		s.logger.Info("collision", "player", s.opts.Player, "score", s.state.Score, "ticks", s.state.Ticks)
		s.phase = PhaseDying
		if s.BlinkFrames() == 0 {
			s.phase = PhaseEnded
		}
	}
	return res
}

// BlinkFrames returns the number of frames in the death sequence. Every
// cycle shows the road without the player and then with it.
func (s *Session) BlinkFrames() int {
	return 2 * s.opts.Settings.Death.BlinkCycles
}

// PlayerVisible reports whether the player sprite is drawn in the current
// frame. It is hidden on the first frame of every blink cycle.
func (s *Session) PlayerVisible() bool {
	if s.phase != PhaseDying {
		return true
	}
	return s.frame%2 == 1
}

// AdvanceBlink moves to the next blink frame after its delay has passed.
// It reports whether the death sequence is complete.
func (s *Session) AdvanceBlink() bool {
	if s.phase != PhaseDying {
		return s.phase == PhaseEnded
	}

	s.frame++
	if s.frame >= s.BlinkFrames() {
		s.phase = PhaseEnded
		return true
	}
	return false
}

// Finish persists the outcome of an ended session. The highscore is written
// only when it beats both the value loaded at start and the stored one; the run goes to the history when a recorder is set and
// the score is positive. Calling it again returns the first result.
func (s *Session) Finish() (Result, error) {
	if s.phase != PhaseEnded {
		return Result{}, ErrSessionActive
	}
	if s.finished {
		return s.result, nil
	}
	s.finished = true

	st := s.state
	s.result = Result{Score: st.Score, Highscore: st.Highscore}

	var errs []error
	if st.Score > st.Highscore && s.opts.Highscores != nil {
		// The store compares against its current value as well
		written, err := s.opts.Highscores.SaveHighscore(st.Score)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("session: cannot save highscore: %w", err))
		case written:
			s.result.NewHighscore = true
			s.logger.Info("new highscore", "player", s.opts.Player, "score", st.Score, "previous", st.Highscore)
		default:
			s.logger.Debug("highscore raised elsewhere", "player", s.opts.Player, "score", st.Score)
		}
	}

	if s.opts.History != nil && st.Score > 0 {
		_, err := s.opts.History.SaveRun(storage.Run{
			Player:       s.opts.Player,
			Score:        st.Score,
			TopSpeed:     s.topSpeed,
			CarsPassed:   st.CarsPassed,
			Ticks:        st.Ticks,
			NewHighscore: s.result.NewHighscore,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("session: cannot record run: %w", err))
		}
	}

	return s.result, errors.Join(errs...)
}
