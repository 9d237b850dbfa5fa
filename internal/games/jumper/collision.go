package jumper

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// ContactKind describes what the resolver decided for a tick.
type ContactKind int

const (
	ContactNone   ContactKind = iota // airborne, no footing
	ContactLanded                    // airborne -> grounded
	ContactStayed                    // still grounded
	ContactLeft                      // grounded -> airborne
)

// String returns the lowercase kind name.
func (k ContactKind) String() string {
	switch k {
	case ContactNone:
		return "none"
	case ContactLanded:
		return "landed"
	case ContactStayed:
		return "stayed"
	case ContactLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Contact is the outcome of one Resolve call. Index refers to the platform
// slice passed to Resolve and is -1 without footing.
type Contact struct {
	Kind  ContactKind
	Index int
}

// Resolver matches the actor against platforms and decides grounded and
// airborne transitions.
type Resolver struct {
	phys       config.PhysicsConfig
	candidates []int
}

// NewResolver creates a resolver.
func NewResolver(cfg *config.JumperConfig) *Resolver {
	return &Resolver{phys: cfg.Physics}
}

// Resolve runs after the actor has integrated for the tick. It snaps the
// actor onto the first matching platform, or makes it fall.
func (r *Resolver) Resolve(a *Actor, platforms []Platform, viewportW float64) Contact {
	m := &a.m
	wasGrounded := m.State == Grounded

	if i := r.match(m, platforms, viewportW); i >= 0 {
		a.land(platforms[i].Rect.Top())
		if wasGrounded {
			return Contact{Kind: ContactStayed, Index: i}
		}
		a.log.Debug("landed", "y", m.Y, "airtime", m.Ticks-m.JumpStart, "bucket", m.Bucket)
		return Contact{Kind: ContactLanded, Index: i}
	}

	if wasGrounded {
		a.leaveGround()
		return Contact{Kind: ContactLeft, Index: -1}
	}

	// The actor's own stall nudge takes precedence; only one safeguard
	// may move the actor per tick.
	if m.Speed == 0 && !m.Guarded {
		m.Speed = r.phys.StuckSpeed
		m.Guarded = true
	}
	return Contact{Kind: ContactNone, Index: -1}
}

// match returns the index of the platform the actor lands on, or -1.
func (r *Resolver) match(m *Motion, platforms []Platform, viewportW float64) int {
	box := m.Rect()
	r.candidates = r.candidates[:0]
	for i := range platforms {
		p := platforms[i].Rect
		if p.Right() < box.Left()-r.phys.NearbyMargin || p.Left() > viewportW+r.phys.NearbyMargin {
			continue
		}
		if math.Abs(p.Top()-m.Y) >= m.H*r.phys.NearbyHeights {
			continue
		}
		r.candidates = append(r.candidates, i)
	}
	if len(r.candidates) == 0 {
		return -1
	}

	// Descending actors prefer the uppermost surface.
	if m.Speed >= 0 {
		slices.SortStableFunc(r.candidates, func(i, j int) int {
			ti, tj := platforms[i].Rect.Top(), platforms[j].Rect.Top()
			switch {
			case ti < tj:
				return -1
			case ti > tj:
				return 1
			default:
				return 0
			}
		})
	}

	bottom := m.Bottom()
	prevBottom := m.PrevY + m.H/2
	for _, i := range r.candidates {
		p := platforms[i].Rect
		if !box.OverlapsX(p) {
			continue
		}
		top := p.Top()
		if prevBottom <= top && bottom >= top && m.Speed >= 0 {
			return i
		}
		if m.stationary() && math.Abs(bottom-top) < r.phys.StationaryTolerance {
			return i
		}
		// The tolerance band only pulls the actor up onto a surface it
		// already sinks into, never down from above.
		if !box.OverlapsY(p) && !m.stationary() {
			continue
		}
		tol := r.phys.LandingTolerance + float64(m.Speed)
		if m.Speed >= 0 && math.Abs(bottom-top) <= tol && prevBottom <= top+r.phys.LandingTolerance {
			return i
		}
	}
	return -1
}
