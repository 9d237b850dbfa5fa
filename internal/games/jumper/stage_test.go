package jumper

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

func newTestStage(t *testing.T, seed int64, mutate func(*config.JumperConfig)) (*Stage, *SeededEnv, *config.JumperConfig) {
	t.Helper()
	cfg := config.DefaultJumperConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	env := NewSeededEnv(seed, cfg.Viewport.Width, cfg.Viewport.Height)
	return NewStage(&cfg, env, nil), env, &cfg
}

func fixedDifficulty(d float64) func(*config.JumperConfig) {
	return func(cfg *config.JumperConfig) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.Initial = d
	}
}

func TestSeedInitialStage(t *testing.T) {
	s, _, cfg := newTestStage(t, 1, nil)
	ps := s.Platforms()

	if len(ps) < 3 {
		t.Fatalf("initial platforms = %d, expected at least 3", len(ps))
	}

	first := ps[0]
	if first.Rect.X != 140 || first.Rect.Y != 315 || first.Rect.W != cfg.Platforms.FirstWidth {
		t.Errorf("first platform = %+v, expected x=140 y=315 w=%v", first.Rect, cfg.Platforms.FirstWidth)
	}
	if got := ps[1].Rect.X; got != first.Rect.Right()+cfg.Gaps.InitialLeadGap {
		t.Errorf("second platform x = %v, expected %v", got, first.Rect.Right()+cfg.Gaps.InitialLeadGap)
	}
	if ps[1].Rect.Y != first.Rect.Y {
		t.Errorf("second platform y = %v, expected flat %v", ps[1].Rect.Y, first.Rect.Y)
	}

	limit := cfg.Viewport.Width + cfg.Platforms.Lookahead
	for i := 1; i < len(ps); i++ {
		if ps[i].Rect.X >= limit {
			t.Errorf("platform %d at x=%v, expected left of %v", i, ps[i].Rect.X, limit)
		}
		if dy := math.Abs(ps[i].Rect.Y - ps[i-1].Rect.Y); dy > 3 {
			t.Errorf("platform %d height change = %v, expected at most 3", i, dy)
		}
	}
	if s.Spawned() != 0 {
		t.Errorf("Spawned() = %d, expected 0 for the initial layout", s.Spawned())
	}
}

func TestStageLifecycle(t *testing.T) {
	s, _, _ := newTestStage(t, 7, nil)

	for tick := 0; tick < 5000; tick++ {
		prev := append([]Platform(nil), s.Platforms()...)
		spawned := s.Spawned()

		s.Tick()

		cur := s.Platforms()
		speed := s.Speed()
		fresh := s.Spawned() - spawned
		removed := len(prev) + fresh - len(cur)
		if removed < 0 || removed > len(prev) {
			t.Fatalf("tick %d: removed = %d of %d", tick, removed, len(prev))
		}

		for i := 0; i < removed; i++ {
			p := prev[i]
			p.Speed = speed
			p.Advance()
			if !p.OffScreen() {
				t.Fatalf("tick %d: platform removed with right edge %v", tick, p.Rect.Right())
			}
		}
		for j := removed; j < len(prev); j++ {
			if got, expected := cur[j-removed].Rect.X, prev[j].Rect.X-speed; got != expected {
				t.Fatalf("tick %d: platform %d x = %v, expected %v", tick, j, got, expected)
			}
		}
		for i, p := range cur {
			if p.OffScreen() {
				t.Fatalf("tick %d: off-screen platform %d kept", tick, i)
			}
			if p.Speed <= 0 {
				t.Fatalf("tick %d: platform %d speed = %v, expected positive", tick, i, p.Speed)
			}
			if i > 0 && p.Rect.X < cur[i-1].Rect.Right() {
				t.Fatalf("tick %d: platform %d at x=%v overlaps previous ending at %v", tick, i, p.Rect.X, cur[i-1].Rect.Right())
			}
		}
	}
	if s.GameTime() != 5000 {
		t.Errorf("GameTime() = %d, expected 5000", s.GameTime())
	}
}

func TestPlatformHeightsStayInBounds(t *testing.T) {
	for _, d := range []float64{0.8, 1.2, 1.6} {
		s, _, cfg := newTestStage(t, 3, fixedDifficulty(d))
		for tick := 0; tick < 8000; tick++ {
			s.Tick()
		}
		for _, p := range s.Platforms() {
			if p.Rect.Y < cfg.Platforms.MinY || p.Rect.Y > cfg.Platforms.MaxY {
				t.Errorf("difficulty %v: platform top %v outside [%v, %v]", d, p.Rect.Y, cfg.Platforms.MinY, cfg.Platforms.MaxY)
			}
		}
	}
}

func TestGracePeriodJitter(t *testing.T) {
	s, _, cfg := newTestStage(t, 11, nil)

	for s.GameTime() < cfg.Placement.GraceTicks-100 {
		n := len(s.Platforms())
		before := s.Spawned()
		var lastY float64
		if n > 0 {
			lastY = s.Platforms()[n-1].Rect.Y
		}
		s.Tick()
		if s.Spawned() != before+1 {
			continue
		}
		ps := s.Platforms()
		if dy := math.Abs(ps[len(ps)-1].Rect.Y - lastY); dy > cfg.Placement.GraceJitter {
			t.Fatalf("tick %d: height change %v during grace, expected at most %v", s.GameTime(), dy, cfg.Placement.GraceJitter)
		}
	}
}

func TestWidthRange(t *testing.T) {
	s, _, cfg := newTestStage(t, 5, fixedDifficulty(1.6))
	s.gameTime = 10000

	lo := cfg.Platforms.MinWidth - 0.6*cfg.Platforms.WidthShrink
	for i := 0; i < 1000; i++ {
		w := s.width()
		if w < lo-1e-9 || w > cfg.Platforms.MaxWidth {
			t.Fatalf("width() = %v, expected within [%v, %v]", w, lo, cfg.Platforms.MaxWidth)
		}
	}
}

func TestGapCappedByCeiling(t *testing.T) {
	s, _, cfg := newTestStage(t, 5, func(cfg *config.JumperConfig) {
		cfg.Gaps.Headroom = 500
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.Initial = 1.6
	})
	s.gameTime = 10000

	for i := 0; i < 1000; i++ {
		if g := s.gap(s.Speed()); g > cfg.Gaps.Ceiling || g < 0 {
			t.Fatalf("gap() = %v, expected within [0, %v]", g, cfg.Gaps.Ceiling)
		}
	}
}

func TestWindowNarrowsWithDifficulty(t *testing.T) {
	easy, _, _ := newTestStage(t, 1, fixedDifficulty(0.8))
	hard, _, _ := newTestStage(t, 1, fixedDifficulty(1.6))
	for _, s := range []*Stage{easy, hard} {
		s.lastY, s.lastWidth = 250, 120
	}

	we := easy.Window(60, 5)
	wh := hard.Window(60, 5)

	if wh.Narrowing >= we.Narrowing {
		t.Errorf("Narrowing hard = %v, easy = %v, expected hard to be narrower", wh.Narrowing, we.Narrowing)
	}
	if wh.Lo < we.Lo || wh.Hi > we.Hi {
		t.Errorf("hard window [%v, %v] not inside easy window [%v, %v]", wh.Lo, wh.Hi, we.Lo, we.Hi)
	}
	if we.TicksToReach != 24 {
		t.Errorf("TicksToReach = %d, expected ceil((60+60)/5) = 24", we.TicksToReach)
	}
	if we.Optimal != 280 {
		t.Errorf("Optimal = %v, expected 280", we.Optimal)
	}
}

func TestPlaceYDegenerateWindow(t *testing.T) {
	s, _, cfg := newTestStage(t, 9, nil)
	s.gameTime = cfg.Placement.GraceTicks
	s.lastY = 200

	win := ReachWindow{Lo: 250, Hi: 240}
	for i := 0; i < 200; i++ {
		y := s.PlaceY(win)
		if y < 200+cfg.Placement.FallbackDY[0] || y > 200+cfg.Placement.FallbackDY[1] {
			t.Fatalf("PlaceY(degenerate) = %v, expected lastY + [%v, %v]", y, cfg.Placement.FallbackDY[0], cfg.Placement.FallbackDY[1])
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	s, _, _ := newTestStage(t, 1, nil)

	tests := []struct {
		difficulty float64
		expected   int
	}{
		{0.8, 40},
		{1.0, 40},
		{1.25, 34},
		{1.5, 28},
		{1.6, 28},
	}

	for _, tc := range tests {
		if got := s.interval(tc.difficulty); got != tc.expected {
			t.Errorf("interval(%v) = %d, expected %d", tc.difficulty, got, tc.expected)
		}
	}

	s.cfg.Spawn.IntervalCut = 0.9
	if got := s.interval(1.6); got != s.cfg.Spawn.MinInterval {
		t.Errorf("interval(1.6) with a deep cut = %d, expected floor %d", got, s.cfg.Spawn.MinInterval)
	}
}

func TestStageFollowsViewportResize(t *testing.T) {
	s, env, _ := newTestStage(t, 2, nil)

	env.SetViewport(2400, 400)
	s.Tick()

	ps := s.Platforms()
	if right := ps[len(ps)-1].Rect.Right(); right < 2400-s.Speed() {
		t.Errorf("last platform ends at %v after resize, expected the viewport to be filled", right)
	}
}

func TestEmptyStageRecovers(t *testing.T) {
	s, _, _ := newTestStage(t, 2, nil)
	s.platforms = nil

	s.Tick()

	if len(s.Platforms()) == 0 {
		t.Fatal("stage stayed empty after a tick")
	}
}

func TestStageReset(t *testing.T) {
	s, env, _ := newTestStage(t, 4, nil)
	for i := 0; i < 700; i++ {
		s.Tick()
	}

	env.Rewind()
	s.Reset()

	fresh, _, _ := newTestStage(t, 4, nil)
	if s.GameTime() != 0 || s.Spawned() != 0 || s.Difficulty() != fresh.Difficulty() {
		t.Errorf("after Reset: time=%d spawned=%d difficulty=%v, expected 0, 0, %v",
			s.GameTime(), s.Spawned(), s.Difficulty(), fresh.Difficulty())
	}
	if len(s.Platforms()) != len(fresh.Platforms()) {
		t.Fatalf("after Reset: %d platforms, expected %d", len(s.Platforms()), len(fresh.Platforms()))
	}
	for i := range fresh.Platforms() {
		if s.Platforms()[i] != fresh.Platforms()[i] {
			t.Errorf("platform %d = %+v, expected %+v", i, s.Platforms()[i], fresh.Platforms()[i])
		}
	}
}

func TestStageResetLeavesOldSliceAlone(t *testing.T) {
	s, env, _ := newTestStage(t, 6, nil)
	for i := 0; i < 300; i++ {
		s.Tick()
	}
	old := s.Platforms()
	snapshot := slices.Clone(old)

	env.Rewind()
	s.Reset()

	for i := range snapshot {
		if old[i] != snapshot[i] {
			t.Fatalf("platform %d changed by Reset: %+v, expected %+v", i, old[i], snapshot[i])
		}
	}
}
