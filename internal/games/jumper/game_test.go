package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	g.Reset(cfg)
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("jumper") {
		t.Fatal("jumper is not registered")
	}
	g, err := registry.Create("jumper")
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if g.Title() != "Sky Jumper" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Sky Jumper")
	}
}

func TestGameStartsOnMenu(t *testing.T) {
	g := newTestGame(t)

	if got := g.State().Phase; got != core.PhaseMenu {
		t.Fatalf("Phase = %v, expected menu", got)
	}
	g.Step(core.NewInputFrame())
	if got := g.State().Ticks; got != 0 {
		t.Errorf("Ticks on menu = %d, expected 0", got)
	}

	g.Step(press(core.ActionJump))
	if got := g.State().Phase; got != core.PhasePlaying {
		t.Fatalf("Phase after jump = %v, expected playing", got)
	}
	if m := g.World().Actor(); m.State != Grounded {
		t.Errorf("starting press launched the actor, expected it to stay grounded")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))
	g.Step(core.NewInputFrame())

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Paused = false, expected true")
	}
	ticks := g.State().Ticks
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.State().Ticks; got != ticks {
		t.Errorf("Ticks while paused = %d, expected %d", got, ticks)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("Paused = true after second toggle, expected false")
	}
}

func TestGameJumpPress(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionJump))

	g.Step(press(core.ActionJump))
	if m := g.World().Actor(); m.State != Airborne {
		t.Fatalf("State after press = %v, expected airborne", m.State)
	}
	// a second press mid-air is ignored
	res := g.Step(press(core.ActionJump))
	if res.Ended {
		t.Error("Ended = true after a mid-air press")
	}
}

func TestGameOverReportsRun(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionJump))

	ended := 0
	for i := 0; i < 20000 && g.State().Phase == core.PhasePlaying; i++ {
		if g.Step(core.NewInputFrame()).Ended {
			ended++
		}
	}
	if ended != 1 {
		t.Fatalf("Ended reported %d times, expected once", ended)
	}
	st := g.State()
	if st.Phase != core.PhaseGameOver || !st.GameOver {
		t.Fatalf("state = %+v, expected game over", st)
	}

	if res := g.Step(press(core.ActionJump)); res.Ended {
		t.Error("Ended = true after the run was over")
	}

	run := g.RunStats()
	if run.Seed != 12345 || run.Score != st.Score || run.Ticks != st.Ticks {
		t.Errorf("RunStats() = %+v, expected seed 12345 score %d ticks %d", run, st.Score, st.Ticks)
	}
	if run.MaxDifficulty < g.cfg.Difficulty.Initial {
		t.Errorf("MaxDifficulty = %v, expected at least %v", run.MaxDifficulty, g.cfg.Difficulty.Initial)
	}
	if g.best != st.Score {
		t.Errorf("best = %d, expected %d", g.best, st.Score)
	}
}

func TestGameHighScore(t *testing.T) {
	g := newTestGame(t)
	g.SetHighScore(250)
	g.SetHighScore(90)
	if g.best != 250 {
		t.Fatalf("best = %d, expected 250", g.best)
	}

	// a new session keeps the stored best
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(press(core.ActionJump))
	g.Step(core.NewInputFrame())
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "best 250 m") {
		t.Errorf("HUD missing stored best:\n%s", out)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if out := scr.String(); !strings.Contains(out, "SKY JUMPER") {
		t.Errorf("menu render missing title:\n%s", out)
	}

	g.Step(press(core.ActionJump))
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, " 1 m ") {
		t.Errorf("HUD missing distance:\n%s", out)
	}
	if !strings.Contains(out, "Lv 1.00") {
		t.Errorf("HUD missing difficulty:\n%s", out)
	}
	if !strings.ContainsRune(out, ActorFace) {
		t.Errorf("actor not drawn:\n%s", out)
	}
	if !strings.ContainsRune(out, '▀') && !strings.ContainsRune(out, '▄') {
		t.Errorf("no platform drawn:\n%s", out)
	}
}

func TestGameResize(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionJump))
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	ticks := g.State().Ticks

	g.Resize(120, 30)

	vw, vh := g.World().Viewport()
	if vw != 1200 || vh != g.cfg.Viewport.Height {
		t.Errorf("Viewport() = (%v, %v), expected (1200, %v)", vw, vh, g.cfg.Viewport.Height)
	}
	if got := g.State().Ticks; got != ticks {
		t.Errorf("Resize restarted the run: ticks = %d, expected %d", got, ticks)
	}
}
