package jumper

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// World ties the actor, the resolver and the stage together and runs them
// once per tick in that order.
type World struct {
	cfg      *config.JumperConfig
	env      Env
	log      *log.Logger
	actor    *Actor
	resolver *Resolver
	stage    *Stage

	ticks       int
	score       float64
	gameOver    bool
	lastContact Contact
}

// NewWorld creates a world ready to tick. A nil logger discards output.
func NewWorld(cfg *config.JumperConfig, env Env, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		cfg:         cfg,
		env:         env,
		log:         logger,
		actor:       NewActor(cfg, logger),
		resolver:    NewResolver(cfg),
		stage:       NewStage(cfg, env, logger),
		lastContact: Contact{Kind: ContactStayed},
	}
}

// Reset starts a fresh session. Environments implementing Rewinder are
// rewound, so the session replays exactly like a newly created world.
func (w *World) Reset() {
	if r, ok := w.env.(Rewinder); ok {
		r.Rewind()
	}
	w.actor.Reset(w.cfg.Player)
	w.stage.Reset()
	w.ticks = 0
	w.score = 0
	w.gameOver = false
	w.lastContact = Contact{Kind: ContactStayed}
}

// RequestJump launches the actor if it stands on a platform.
func (w *World) RequestJump() error {
	if w.gameOver {
		return ErrNotGrounded
	}
	return w.actor.RequestJump()
}

// Tick advances the world by one tick. held reports whether the jump input
// is down during this tick.
func (w *World) Tick(held bool) {
	if w.gameOver {
		return
	}
	w.ticks++

	j := w.cfg.Jump
	if held && j.ChargeLaunchFrames > 0 && w.actor.Grounded() && w.actor.m.HoldFrames >= j.ChargeLaunchFrames {
		_ = w.actor.RequestJump()
	}

	vw, vh := w.env.Viewport()
	w.actor.Tick(held)
	w.lastContact = w.resolver.Resolve(w.actor, w.stage.Platforms(), vw)
	w.stage.Tick()

	w.score += w.cfg.Score.PerTick

	if w.actor.m.Y > vh+w.cfg.Physics.GameOverMargin {
		w.gameOver = true
		w.log.Info("game over", "metres", w.Metres(), "ticks", w.ticks, "difficulty", w.stage.Difficulty())
	}
}

// Actor returns a copy of the actor's state.
func (w *World) Actor() Motion {
	return w.actor.Motion()
}

// Platforms returns the live platforms ordered by x. The slice must not be
// modified.
func (w *World) Platforms() []Platform {
	return w.stage.Platforms()
}

// Stage returns the stage for read access.
func (w *World) Stage() *Stage {
	return w.stage
}

// Contact returns the resolver's decision of the last tick.
func (w *World) Contact() Contact {
	return w.lastContact
}

// Difficulty returns the current difficulty factor.
func (w *World) Difficulty() float64 {
	return w.stage.Difficulty()
}

// GameTime returns the stage's tick counter.
func (w *World) GameTime() int {
	return w.stage.GameTime()
}

// Ticks returns the ticks played since the last reset.
func (w *World) Ticks() int {
	return w.ticks
}

// Metres returns the distance score in whole metres.
func (w *World) Metres() int {
	return int(math.Floor(w.score))
}

// GameOver reports whether the actor fell out of the viewport.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Viewport returns the environment's viewport.
func (w *World) Viewport() (float64, float64) {
	return w.env.Viewport()
}

// Footing returns the index of the platform the actor stands on.
func (w *World) Footing() (int, bool) {
	m := w.actor.m
	if m.State != Grounded {
		return -1, false
	}
	box := m.Rect()
	for i, p := range w.stage.Platforms() {
		if box.OverlapsX(p.Rect) && math.Abs(p.Rect.Top()-m.Bottom()) < 0.5 {
			return i, true
		}
	}
	return -1, false
}
