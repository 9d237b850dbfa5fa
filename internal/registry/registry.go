// Package registry keeps the factories of the games the host can run.
// Games register themselves in init(), so the host discovers them through a
// blank import instead of a hardcoded list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Game is the contract between a simulation and its host. Implementations
// hold pure game logic; timing, key mapping and drawing to the terminal
// belong to the host.
type Game interface {
	// ID returns a stable identifier used on the command line and as the
	// score key.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new session. It is called once before the first Step
	// and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the externally visible status.
	State() core.GameState
}

// Resizable is implemented by games that follow terminal resizes without
// restarting the session.
type Resizable interface {
	Resize(w, h int)
}

// RunReporter is implemented by games that can describe a finished run in
// more detail than its score.
type RunReporter interface {
	RunStats() core.RunStats
}

// HighScoreKeeper is implemented by games that show the all-time best
// score. The host passes the stored value in before the first Step.
type HighScoreKeeper interface {
	SetHighScore(score int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. It panics when the ID is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
