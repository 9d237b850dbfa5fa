package jumper

import "github.com/vovakirdan/tui-jumper/internal/config"

// Autopilot plays without a human. When the actor is about to run off its
// platform it takes the cheapest plan the forward simulator shows landing
// further ahead. A fresh press always launches with the weakest bucket, so
// only walk-offs and tap jumps are considered.
type Autopilot struct {
	sim     *Simulator
	plans   []JumpPlan
	lead    float64 // ticks before the edge at which a decision is made
	active  bool
	forever bool
	hold    int // held ticks left after the launch tick
}

// NewAutopilot creates an autopilot for the configuration.
func NewAutopilot(cfg *config.JumperConfig) *Autopilot {
	var plans []JumpPlan
	for _, p := range JumpPlans(cfg) {
		if p.Bucket <= 0 {
			plans = append(plans, p)
		}
	}
	return &Autopilot{sim: NewSimulator(cfg), plans: plans, lead: 2}
}

// Decide returns whether to press jump this tick and whether it is held.
func (ap *Autopilot) Decide(w *World) (press, held bool) {
	m := w.Actor()
	if m.State == Airborne {
		if !ap.active {
			return false, false
		}
		if ap.forever {
			return false, true
		}
		held = ap.hold > 0
		ap.hold--
		return false, held
	}
	ap.active = false

	cur, ok := w.Footing()
	if !ok {
		return false, false
	}
	plats := w.Platforms()
	speed := w.Stage().Speed()
	if left := plats[cur].Rect.Right() - m.Rect().Left(); left > ap.lead*speed {
		return false, false
	}

	vw, vh := w.Viewport()
	for _, plan := range ap.plans {
		i, ok := ap.sim.Run(m, plats, speed, vw, vh, plan)
		if !ok || i <= cur {
			continue
		}
		if plan.Walks() {
			return false, false
		}
		ap.active = true
		ap.forever = plan.Hold < 0
		ap.hold = plan.Hold - 1
		return true, plan.Hold != 0
	}
	return false, false
}
