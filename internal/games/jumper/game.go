// Package jumper implements an endless side-scrolling jump game. The actor
// stays in place while platforms scroll in from the right; the player jumps
// across the gaps. Jump height grows with how long the input is held.
//
// The simulation works in logical pixels of a fixed-height viewport and is
// fully deterministic for a given seed and input sequence.
package jumper

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a World to the game registry.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.JumperConfig
	env     *SeededEnv
	world   *World
	log     *log.Logger

	phase         core.Phase
	paused        bool
	best          int
	maxDifficulty float64
	frame         int // animation counter, advances while playing
}

// New creates a new jumper game instance.
func New() *Game {
	return &Game{log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Jumper"
}

// LoadConfig loads the game configuration the same way Reset does.
func LoadConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		return config.DefaultJumperConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Reset starts a new session on the menu screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		g.log.Warn("using default config", "err", err)
	}
	g.cfg = cfg

	vw, vh := g.viewportFor(runtime.ScreenW)
	g.env = NewSeededEnv(runtime.Seed, vw, vh)
	g.world = NewWorld(&g.cfg, g.env, g.log)

	g.phase = core.PhaseMenu
	g.paused = false
	g.maxDifficulty = g.world.Difficulty()
	g.frame = 0
}

// viewportFor maps a terminal width onto the logical viewport. The height is
// fixed; the width follows the terminal.
func (g *Game) viewportFor(cols int) (float64, float64) {
	v := g.cfg.Viewport
	if cols <= 0 {
		return v.Width, v.Height
	}
	return float64(cols) * v.CellWidth, v.Height
}

// Resize adapts the viewport to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.env == nil {
		return
	}
	vw, vh := g.viewportFor(w)
	g.env.SetViewport(vw, vh)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseMenu:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.phase = core.PhasePlaying
			g.log.Debug("run started", "seed", g.env.Seed())
		}
		return core.StepResult{State: g.State()}
	case core.PhaseGameOver:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	if in.Has(core.ActionJump) {
		if err := g.world.RequestJump(); err != nil && !errors.Is(err, ErrNotGrounded) {
			g.log.Warn("jump failed", "err", err)
		}
	}
	g.world.Tick(in.IsHeld(core.ActionJump))
	g.maxDifficulty = max(g.maxDifficulty, g.world.Difficulty())

	if !g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}
	g.phase = core.PhaseGameOver
	g.best = max(g.best, g.world.Metres())
	return core.StepResult{State: g.State(), Ended: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{Phase: g.phase, Paused: g.paused}
	if g.world != nil {
		s.Score = g.world.Metres()
		s.Ticks = g.world.Ticks()
		s.GameOver = g.world.GameOver()
	}
	return s
}

// RunStats summarizes the current run.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Seed:          g.runtime.Seed,
		Score:         g.world.Metres(),
		Ticks:         g.world.Ticks(),
		MaxDifficulty: g.maxDifficulty,
		Platforms:     g.world.Stage().Spawned(),
	}
}

// SetHighScore raises the best score shown in the HUD to a stored value.
func (g *Game) SetHighScore(score int) {
	g.best = max(g.best, score)
}

// World exposes the simulation for read access.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration in use.
func (g *Game) Config() config.JumperConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
