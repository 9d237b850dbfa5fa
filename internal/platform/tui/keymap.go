package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// DefaultHoldWindow is used when no hold window is configured.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "space", "up", "w", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// HoldTracker emulates key releases, which terminals do not report. An
// action counts as held while its events keep arriving within the window;
// key auto-repeat keeps a held key alive.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window selects
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window, last: make(map[core.Action]time.Time)}
}

// Press records an event for a and reports whether it starts a new press
// rather than continuing a held one.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	prev, ok := h.last[a]
	h.last[a] = now
	return !ok || now.Sub(prev) > h.window
}

// Held reports whether a is still down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Release ends a hold immediately, e.g. on a mouse button release.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.last, a)
}

// Reset forgets every hold.
func (h *HoldTracker) Reset() {
	clear(h.last)
}
