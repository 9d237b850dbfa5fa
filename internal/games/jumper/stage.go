package jumper

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// ReachWindow is the vertical band a new platform may be placed in, along
// with the inputs it was derived from. Lo is the highest allowed top (the
// smaller y), Hi the lowest.
type ReachWindow struct {
	Gap               float64
	EffectiveDistance float64
	TicksToReach      int
	MaxHeight         float64
	TicksToApex       int
	Reach             float64 // height the strongest jump attains within TicksToReach
	Narrowing         float64
	Optimal           float64
	Lo, Hi            float64
}

// Span returns Hi-Lo.
func (w ReachWindow) Span() float64 {
	return w.Hi - w.Lo
}

// Stage owns the live platforms. It seeds the opening layout, keeps the
// stream of platforms ahead of the viewport filled, places every new one
// inside its reach window and drops platforms that scrolled away.
type Stage struct {
	cfg        *config.JumperConfig
	env        Env
	difficulty *config.DifficultyManager
	envelope   Envelope
	log        *log.Logger

	platforms  []Platform // ordered left to right
	gameTime   int
	countdown  int
	lastY      float64
	lastWidth  float64
	spawned    int
	lastWindow ReachWindow
}

// NewStage creates a stage and seeds its initial layout.
func NewStage(cfg *config.JumperConfig, env Env, logger *log.Logger) *Stage {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Stage{
		cfg:        cfg,
		env:        env,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		envelope:   ComputeEnvelope(cfg),
		log:        logger,
	}
	s.Reset()
	return s
}

// Reset clears the stage and seeds a fresh initial layout.
func (s *Stage) Reset() {
	s.platforms = nil
	s.gameTime = 0
	s.countdown = s.cfg.Spawn.BaseInterval
	s.spawned = 0
	s.lastWindow = ReachWindow{}
	s.difficulty.Reset()
	s.SeedInitialStage()
}

// Platforms returns the live platforms ordered by x. The slice is owned by
// the stage and must not be modified.
func (s *Stage) Platforms() []Platform {
	return s.platforms
}

// Difficulty returns the current difficulty factor.
func (s *Stage) Difficulty() float64 {
	return s.difficulty.Factor()
}

// DifficultyLevel returns the difficulty mapped onto [0, 1].
func (s *Stage) DifficultyLevel() float64 {
	return s.difficulty.Level()
}

// GameTime returns the ticks elapsed since the last reset.
func (s *Stage) GameTime() int {
	return s.gameTime
}

// Spawned returns how many platforms were spawned since the last reset,
// the initial layout excluded.
func (s *Stage) Spawned() int {
	return s.spawned
}

// Envelope returns the strongest jump's envelope.
func (s *Stage) Envelope() Envelope {
	return s.envelope
}

// LastWindow returns the reach window of the most recent spawn.
func (s *Stage) LastWindow() ReachWindow {
	return s.lastWindow
}

// Speed returns the platform speed for the current difficulty.
func (s *Stage) Speed() float64 {
	return s.cfg.Platforms.BaseSpeed * s.difficulty.Factor()
}

// SeedInitialStage places a wide platform under the spawn point and walks
// right with nearly flat platforms until the lookahead is filled.
func (s *Stage) SeedInitialStage() {
	pl, pc, g := s.cfg.Player, s.cfg.Platforms, s.cfg.Gaps
	vw, _ := s.env.Viewport()
	speed := s.Speed()

	first := Platform{
		Rect:  core.RectF{X: pl.X - 2*pl.Width, Y: pl.Y + pl.Height/2, W: pc.FirstWidth, H: pc.Height},
		Speed: speed,
	}
	s.platforms = append(s.platforms, first)
	s.lastY, s.lastWidth = first.Rect.Y, first.Rect.W

	x := first.Rect.Right() + g.InitialLeadGap
	for n := 1; x < vw+pc.Lookahead; n++ {
		y := s.lastY
		if n > 1 {
			y = core.ClampF(s.lastY+s.initialDrift(n), pc.MinY, pc.MaxY)
		}
		p := Platform{
			Rect:  core.RectF{X: x, Y: y, W: s.width(), H: pc.Height},
			Speed: speed,
			Type:  s.typeTag(),
		}
		s.platforms = append(s.platforms, p)
		s.lastY, s.lastWidth = p.Rect.Y, p.Rect.W

		r := g.InitialFar
		if n <= g.InitialCount {
			r = g.InitialNear
		}
		x = p.Rect.Right() + s.env.Random(r[0], r[1])
	}
}

// initialDrift returns the height change of the n-th opening platform.
// Variance widens gradually and then cycles through a gentle pattern.
func (s *Stage) initialDrift(n int) float64 {
	flat := s.cfg.Placement.InitialFlat
	switch {
	case n <= flat:
		return s.env.Random(-3, 3)
	case n <= 2*flat:
		return s.env.Random(-5, 5)
	}
	switch n % 3 {
	case 0:
		return s.env.Random(-10, -2)
	case 1:
		return s.env.Random(-6, 6)
	default:
		return s.env.Random(2, 10)
	}
}

// Tick advances the stage by one tick.
func (s *Stage) Tick() {
	s.gameTime++
	d := s.difficulty.Update(s.gameTime)
	vw, _ := s.env.Viewport()
	lookahead := vw + s.cfg.Platforms.Lookahead

	s.countdown--
	switch {
	case s.lastRight() < vw:
		// The chain end is about to become visible; fill it up regardless
		// of the cadence.
		for s.lastRight() < vw {
			s.SpawnPlatform()
		}
		s.countdown = s.interval(d)
	case s.countdown <= 0:
		if s.lastRight() <= lookahead {
			s.SpawnPlatform()
			s.countdown = s.interval(d)
		} else {
			s.countdown = 0
		}
	}

	speed := s.cfg.Platforms.BaseSpeed * d
	for i := range s.platforms {
		s.platforms[i].Speed = speed
		s.platforms[i].Advance()
	}

	n := 0
	for n < len(s.platforms) && s.platforms[n].OffScreen() {
		n++
	}
	s.platforms = s.platforms[n:]
}

// lastRight returns the right edge of the newest platform. An empty stage
// reports negative infinity so the next tick refills it.
func (s *Stage) lastRight() float64 {
	if len(s.platforms) == 0 {
		return math.Inf(-1)
	}
	return s.platforms[len(s.platforms)-1].Rect.Right()
}

// interval returns the spawn countdown for difficulty d. The cut reaches
// its full share at difficulty 1.5.
func (s *Stage) interval(d float64) int {
	sp := s.cfg.Spawn
	contrib := core.ClampF((d-1)*2, 0, 1)
	return max(sp.MinInterval, int(math.Floor(float64(sp.BaseInterval)*(1-contrib*sp.IntervalCut))))
}

// SpawnPlatform appends a platform right of all existing ones, placed
// inside the reach window of the previous one.
func (s *Stage) SpawnPlatform() Platform {
	vw, _ := s.env.Viewport()
	speed := s.Speed()

	prevRight := vw
	if n := len(s.platforms); n > 0 {
		prevRight = s.platforms[n-1].Rect.Right()
	}

	w := s.width()
	gap := s.gap(speed)
	win := s.Window(gap, speed)
	y := s.PlaceY(win)

	p := Platform{
		Rect:  core.RectF{X: prevRight + gap, Y: y, W: w, H: s.cfg.Platforms.Height},
		Speed: speed,
		Type:  s.typeTag(),
	}
	s.platforms = append(s.platforms, p)
	s.lastY, s.lastWidth = y, w
	s.lastWindow = win
	s.spawned++

	s.log.Debug("spawn",
		"x", p.Rect.X, "y", y, "w", w, "gap", gap,
		"lo", win.Lo, "hi", win.Hi, "difficulty", s.difficulty.Factor())
	return p
}

// width draws a platform width. The range narrows as difficulty rises and
// is wider during the opening ticks.
func (s *Stage) width() float64 {
	pc := s.cfg.Platforms
	d := s.difficulty.Factor()
	lo := math.Max(pc.MinWidth-(d-1)*pc.WidthShrink, pc.LandableWidth)
	bonus := math.Max(0, float64(pc.EarlyBonusTicks-s.gameTime)) / pc.EarlyBonusDivisor
	hi := math.Min(pc.MaxWidth+bonus, pc.WidthCeiling)
	return s.env.Random(lo, math.Max(lo, hi))
}

// gap draws the horizontal distance to the next platform. It never exceeds
// the configured ceiling nor what the strongest jump covers at speed.
func (s *Stage) gap(speed float64) float64 {
	g := s.cfg.Gaps
	d := s.difficulty.Factor()
	base := g.Base + math.Min(1, float64(s.gameTime)/float64(g.GrowthTicks))*g.Growth
	hi := min(base+(d-1)*g.PerLevel+g.Headroom, g.Ceiling, speed*float64(s.envelope.Airtime))
	lo := math.Min(base-g.Spread, hi)
	return s.env.Random(lo, hi)
}

func (s *Stage) typeTag() int {
	n := s.cfg.Platforms.Types
	return min(int(s.env.Random(0, float64(n))), n-1)
}

// Window computes the reach window for a platform that follows the last
// spawned one after gap pixels, at the given platform speed.
func (s *Stage) Window(gap, speed float64) ReachWindow {
	pc, pl := s.cfg.Placement, s.cfg.Platforms
	d := s.difficulty.Factor()

	eff := gap + s.lastWidth/2
	ticks := int(math.Ceil(eff / math.Max(speed, 1e-3)))
	reach := s.envelope.HeightWithin(ticks)
	n := math.Max(pc.NarrowFloor, pc.NarrowBase-pc.NarrowSlope*d)
	opt := s.lastY + pc.OptimalDrop

	return ReachWindow{
		Gap:               gap,
		EffectiveDistance: eff,
		TicksToReach:      ticks,
		MaxHeight:         s.envelope.MaxHeight,
		TicksToApex:       s.envelope.TicksToApex,
		Reach:             reach,
		Narrowing:         n,
		Optimal:           opt,
		Lo:                math.Max(opt-reach*pc.UpwardShare*n, pl.MinY),
		Hi:                math.Min(opt+s.envelope.MaxHeight*pc.DownwardShare*n, pl.MaxY-pc.LowerMargin),
	}
}

// PlaceY picks the top of the next platform. The result always lies within
// the absolute platform height bounds.
func (s *Stage) PlaceY(win ReachWindow) float64 {
	pc, pl := s.cfg.Placement, s.cfg.Platforms
	d := s.difficulty.Factor()

	var y float64
	switch {
	case s.gameTime < pc.GraceTicks:
		y = s.lastY + s.env.Random(-pc.GraceJitter, pc.GraceJitter)
	case win.Span() < pc.MinWindow:
		y = s.lastY + s.env.Random(pc.FallbackDY[0], pc.FallbackDY[1])
		s.log.Debug("degenerate reach window", "lo", win.Lo, "hi", win.Hi, "last_y", s.lastY)
	case s.env.Random(0, 1) < math.Max(pc.EasyFloor, pc.EasyChance-(d-1)*pc.EasySlope):
		y = s.lastY + s.env.Random(pc.EasyDY[0], pc.EasyDY[1])
	default:
		y = s.env.Random(win.Lo, win.Hi)
	}
	return core.ClampF(y, pl.MinY, pl.MaxY)
}
