package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
)

// Envelope describes the strongest jump, held for its full duration, as
// produced by the fixed-point integrator.
type Envelope struct {
	MaxHeight   float64 // px above the take-off point at the apex
	TicksToApex int     // ticks until the speed stops being upward
	Airtime     int     // ticks until the actor is back at take-off height
	reach       []float64
}

// HeightWithin returns the highest point the jump attains within the given
// number of ticks.
func (e Envelope) HeightWithin(ticks int) float64 {
	if len(e.reach) == 0 || ticks <= 0 {
		return 0
	}
	return e.reach[min(ticks, len(e.reach)-1)]
}

// ComputeEnvelope measures the strongest jump by running the integrator.
func ComputeEnvelope(cfg *config.JumperConfig) Envelope {
	a := NewActor(cfg, nil)
	a.launch(cfg.Jump.Buckets() - 1)
	origin := a.m.Y

	e := Envelope{reach: []float64{0}}
	limit := cfg.Physics.AirtimeCap * 4
	for t := 1; t <= limit; t++ {
		a.Tick(true)
		h := origin - a.m.Y
		e.MaxHeight = max(e.MaxHeight, h)
		e.reach = append(e.reach, e.MaxHeight)
		if e.TicksToApex == 0 && a.m.Speed >= 0 {
			e.TicksToApex = t
		}
		if a.m.Y >= origin {
			e.Airtime = t
			break
		}
	}
	if e.Airtime == 0 {
		e.Airtime = limit
	}
	return e
}

// JumpPlan is one way of leaving a platform: launch with Bucket (or walk
// off the edge when Bucket is negative) and keep the input held for Hold
// ticks after the launch. A negative Hold keeps it held throughout.
type JumpPlan struct {
	Bucket int
	Hold   int
}

// Walks reports whether the plan leaves the platform without jumping.
func (p JumpPlan) Walks() bool {
	return p.Bucket < 0
}

// JumpPlans returns the plans the forward simulator tries, from the
// cheapest to the strongest. A press is always held on its own tick, so
// every jump holds for at least one tick.
func JumpPlans(cfg *config.JumperConfig) []JumpPlan {
	strongest := cfg.Jump.Buckets() - 1
	plans := []JumpPlan{{Bucket: -1}}
	for _, b := range []int{0, strongest} {
		for _, h := range []int{1, 3, 6, 10, -1} {
			plans = append(plans, JumpPlan{Bucket: b, Hold: h})
		}
	}
	return plans
}

// Simulator runs the actor and resolver forward against a private copy of
// a few platforms. It is used to verify and to plan jumps.
type Simulator struct {
	cfg       *config.JumperConfig
	actor     *Actor
	resolver  *Resolver
	platforms []Platform
}

// NewSimulator creates a simulator for the configuration.
func NewSimulator(cfg *config.JumperConfig) *Simulator {
	return &Simulator{
		cfg:      cfg,
		actor:    NewActor(cfg, nil),
		resolver: NewResolver(cfg),
	}
}

// Run starts from m, applies plan and advances the copies of platforms at
// speed until the actor lands. It returns the index of the platform landed
// on, or false if the actor fell out of the viewport or never came down.
func (s *Simulator) Run(m Motion, platforms []Platform, speed, viewportW, viewportH float64, plan JumpPlan) (int, bool) {
	s.actor.m = m
	s.platforms = append(s.platforms[:0], platforms...)
	if !plan.Walks() {
		if m.State != Grounded {
			return -1, false
		}
		s.actor.launch(plan.Bucket)
	}

	limit := s.cfg.Physics.AirtimeCap * 2
	floor := viewportH + s.cfg.Physics.GameOverMargin
	for t := 0; t < limit; t++ {
		held := !plan.Walks() && (plan.Hold < 0 || t < plan.Hold)
		s.actor.Tick(held)
		c := s.resolver.Resolve(s.actor, s.platforms, viewportW)
		if c.Kind == ContactLanded {
			return c.Index, true
		}
		for i := range s.platforms {
			s.platforms[i].Speed = speed
			s.platforms[i].Advance()
		}
		if s.actor.m.Y > floor {
			return -1, false
		}
	}
	return -1, false
}

// CanReach reports whether some legal jump lands on b when taking off from
// a, both moving at speed. Take-off points are tried from a's trailing edge
// backwards; the actor's x stays at the configured player x.
func (s *Simulator) CanReach(a, b Platform, speed, viewportW, viewportH float64) bool {
	pl := s.cfg.Player
	plans := JumpPlans(s.cfg)

	// Centers at which the actor still overlaps a.
	first := a.Rect.Right() + pl.Width/2 - 1
	last := a.Rect.Left() - pl.Width/2 + 1
	for cx := first; cx >= last; cx -= 10 {
		dx := pl.X - cx
		pair := []Platform{a, b}
		for i := range pair {
			pair[i].Rect.X += dx
		}
		m := Motion{
			X: pl.X, Y: pair[0].Rect.Top() - pl.Height/2,
			W: pl.Width, H: pl.Height,
		}
		m.PrevY, m.OriginY = m.Y, m.Y

		for _, plan := range plans {
			if i, ok := s.Run(m, pair, speed, viewportW, viewportH, plan); ok && i == 1 {
				return true
			}
		}
	}
	return false
}

// Auditor re-checks every newly spawned platform against its predecessor
// with the forward simulator.
type Auditor struct {
	sim         *Simulator
	seen        int
	Checked     int
	Unreachable int
}

// NewAuditor creates an auditor for the configuration.
func NewAuditor(cfg *config.JumperConfig) *Auditor {
	return &Auditor{sim: NewSimulator(cfg)}
}

// Observe checks the platforms spawned since the previous call. Call it
// after every Stage.Tick.
func (a *Auditor) Observe(s *Stage) {
	n := s.Spawned()
	if n < a.seen {
		a.seen = 0
	}
	fresh := n - a.seen
	a.seen = n
	if fresh == 0 {
		return
	}

	ps := s.Platforms()
	vw, vh := s.env.Viewport()
	for i := max(1, len(ps)-fresh); i < len(ps); i++ {
		a.Checked++
		if !a.sim.CanReach(ps[i-1], ps[i], s.Speed(), vw, vh) {
			a.Unreachable++
		}
	}
}
