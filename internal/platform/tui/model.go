package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Options configures a Model.
type Options struct {
	Store      *storage.Store // nil disables persistence
	Logger     *log.Logger    // nil discards output
	HoldWindow time.Duration  // see HoldTracker
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	lastRun    string // ID of the last saved run
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		log:        logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
	}
	m.loadHighScore()
	return m
}

// loadHighScore hands the stored best score to games that display it.
func (m *Model) loadHighScore() {
	hk, ok := m.game.(registry.HighScoreKeeper)
	if !ok || m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Warn("could not load high score", "game", m.game.ID(), "err", err)
		return
	}
	hk.SetHighScore(high)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.MouseMsg:
		return m.handleMouse(msg, time.Now())
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	switch {
	case quit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionJump:
		m.press(now)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse treats a left click like the jump key. Mouse releases are
// reported, so a click ends its hold exactly.
func (m Model) handleMouse(msg tea.MouseMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.press(now)
	case tea.MouseActionRelease:
		m.holds.Release(core.ActionJump)
	}
	return m, nil
}

// press registers a jump event; only a fresh press counts as a new jump.
func (m *Model) press(now time.Time) {
	if m.holds.Press(core.ActionJump, now) {
		m.inputFrame.Set(core.ActionJump)
		return
	}
	m.inputFrame.SetHeld(core.ActionJump)
}

// handleResize follows the terminal size. Games implementing
// registry.Resizable keep their session; others restart unless the run is
// over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.holds.Reset()
		m.inputFrame.Clear()
		m.log.Debug("restart", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	if m.holds.Held(core.ActionJump, now) {
		m.inputFrame.SetHeld(core.ActionJump)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and the game goes
// on.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	id := m.game.ID()
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(id, m.gameState.Score); err != nil {
			m.log.Warn("could not save score", "game", id, "err", err)
		}
	}
	rr, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	runID, err := m.store.SaveRun(id, rr.RunStats())
	if err != nil {
		m.log.Warn("could not save run", "game", id, "err", err)
		return
	}
	m.lastRun = runID
	m.log.Info("run saved", "game", id, "run", runID, "score", m.gameState.Score)
}

// LastRun returns the ID of the last saved run, if any.
func (m Model) LastRun() string {
	return m.lastRun
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, config.DataDir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
