package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/assets"
	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/game"
	"github.com/vovakirdan/roadcross/internal/session"
	"github.com/vovakirdan/roadcross/internal/storage"
)

// Deps are the collaborators shared by every session of a program.
type Deps struct {
	Config     config.Config
	Assets     *assets.Assets
	Highscores storage.HighscoreStore
	History    session.RunRecorder // Optional
	Logger     *log.Logger         // Optional, nil discards
}

// Model is the Bubble Tea model for playing the game. It runs sessions back
// to back: after a crash and the death blink the result is saved and a new
// run starts right away.
type Model struct {
	deps     Deps
	logger   *log.Logger
	settings config.Settings
	font     game.Font
	renderer *game.Renderer
	painter  *Painter
	screen   *core.Screen
	config   core.RuntimeConfig
	player   string
	keys     KeyMap
	held     *HeldKeys
	session  *session.Session
	runs     int // Number of the current session, carried by its messages
	last     session.Result
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for a terminal of cfg.ScreenW x cfg.ScreenH
// cells. The world size is fixed here; later resizes only change the
// visible area. A zero TickRate uses the configured FPS and a zero Seed is
// replaced with the current time.
func NewModel(deps Deps, cfg core.RuntimeConfig, player string, r *lipgloss.Renderer) (Model, error) {
	settings, err := deps.Config.ResolveCells(cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return Model{}, err
	}
	if deps.Assets == nil {
		return Model{}, errors.New("tui: no assets loaded")
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = deps.Config.Display.FPS
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	font := game.NewFont(settings.Display)
	m := Model{
		deps:     deps,
		logger:   logger,
		settings: settings,
		font:     font,
		renderer: game.NewRenderer(settings, deps.Assets, font),
		painter:  NewPainter(r, settings.Colors.Background),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		player:   player,
		keys:     DefaultKeyMap(),
		held:     NewHeldKeys(settings.Input.HoldWindow()),
		now:      time.Now,
	}
	m.startSession(cfg.Seed)
	return m, nil
}

// startSession begins a fresh run. The highscore is reloaded every time.
func (m *Model) startSession(seed int64) {
	m.runs++
	m.held.Reset()
	m.session = session.New(session.Options{
		Settings:   m.settings,
		Font:       m.font,
		Highscores: m.deps.Highscores,
		History:    m.deps.History,
		Player:     m.player,
		Seed:       seed,
		Logger:     m.logger,
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runs, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Session != m.runs {
			return m, nil
		}
		return m.handleTick()

	case BlinkMsg:
		if msg.Session != m.runs {
			return m, nil
		}
		return m.handleBlink()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Steering only counts while the player is alive
	if m.session.Phase() == session.PhaseAlive {
		m.held.Press(action, m.now())
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Phase() != session.PhaseAlive {
		return m, nil
	}

	m.session.Step(m.held.Frame(m.now()))

	switch m.session.Phase() {
	case session.PhaseDying:
		m.held.Reset()
		return m, blinkCmd(m.runs, m.settings.Death.BlinkDelay())
	case session.PhaseEnded:
		return m.endSession()
	}
	return m, tickCmd(m.runs, m.config.TickRate)
}

// handleBlink shows the next death blink frame or ends the session.
func (m Model) handleBlink() (tea.Model, tea.Cmd) {
	if m.session.AdvanceBlink() {
		return m.endSession()
	}
	return m, blinkCmd(m.runs, m.settings.Death.BlinkDelay())
}

// endSession saves the result and starts the next run.
func (m Model) endSession() (tea.Model, tea.Cmd) {
	res, err := m.session.Finish()
	if err != nil {
		m.logger.Warn("could not persist run", "player", m.player, "error", err)
	}
	m.last = res

	m.startSession(m.now().UnixNano())
	return m, tickCmd(m.runs, m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.session.State(), m.session.PlayerVisible())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".roadcross", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("roadcross_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.session.State(), m.session.PlayerVisible())
	return m.painter.Render(m.screen)
}

// Session returns the running session.
func (m Model) Session() *session.Session {
	return m.session
}

// LastResult returns the result of the previous session, if any.
func (m Model) LastResult() session.Result {
	return m.last
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays the game in the current terminal until the user quits.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	model, err := NewModel(deps, cfg, "local", nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
