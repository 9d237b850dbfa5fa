package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

func TestEnvelope(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	e := ComputeEnvelope(&cfg)

	if e.MaxHeight < cfg.Physics.AscentCap {
		t.Errorf("MaxHeight = %v, expected at least the ascent cap %v", e.MaxHeight, cfg.Physics.AscentCap)
	}
	if e.TicksToApex <= 0 || e.Airtime <= e.TicksToApex {
		t.Errorf("TicksToApex = %d, Airtime = %d, expected 0 < apex < airtime", e.TicksToApex, e.Airtime)
	}
	if e.Airtime >= cfg.Physics.AirtimeCap {
		t.Errorf("Airtime = %d, expected a regular jump to land before the airtime cap", e.Airtime)
	}

	prev := 0.0
	for ticks := 0; ticks <= e.Airtime+10; ticks++ {
		h := e.HeightWithin(ticks)
		if h < prev {
			t.Fatalf("HeightWithin(%d) = %v, decreased from %v", ticks, h, prev)
		}
		prev = h
	}
	if got := e.HeightWithin(1 << 20); got != e.MaxHeight {
		t.Errorf("HeightWithin(large) = %v, expected MaxHeight %v", got, e.MaxHeight)
	}
}

func TestCanReach(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	sim := NewSimulator(&cfg)
	vw, vh := cfg.Viewport.Width, cfg.Viewport.Height

	tests := []struct {
		name     string
		b        Platform
		speed    float64
		expected bool
	}{
		{"level short gap", platformAt(1100+50, 300, 120), 5, true},
		{"level ceiling gap at top speed", platformAt(1100+90, 300, 90), 8, true},
		{"slightly higher", platformAt(1100+60, 280, 120), 5, true},
		{"lower", platformAt(1100+70, 345, 120), 6, true},
		{"far above the apex", platformAt(1100+60, 300-200, 120), 5, false},
		{"beyond any jump", platformAt(1100+2000, 300, 120), 5, false},
	}

	a := platformAt(1000, 300, 100)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sim.CanReach(a, tc.b, tc.speed, vw, vh); got != tc.expected {
				t.Errorf("CanReach() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// TestReachabilityInvariant checks every consecutively spawned pair across
// seeds and the whole difficulty range.
func TestReachabilityInvariant(t *testing.T) {
	difficulties := []float64{0.8, 1.0, 1.2, 1.4, 1.6}
	for _, d := range difficulties {
		for seed := int64(1); seed <= 12; seed++ {
			s, _, cfg := newTestStage(t, seed, fixedDifficulty(d))
			s.gameTime = cfg.Placement.GraceTicks
			audit := NewAuditor(cfg)

			for tick := 0; tick < 1500; tick++ {
				s.Tick()
				audit.Observe(s)
			}

			if audit.Checked == 0 {
				t.Fatalf("difficulty %v seed %d: no platforms checked", d, seed)
			}
			if audit.Unreachable != 0 {
				t.Errorf("difficulty %v seed %d: %d of %d platforms unreachable", d, seed, audit.Unreachable, audit.Checked)
			}
		}
	}
}

func TestReachabilityDuringRamp(t *testing.T) {
	if testing.Short() {
		t.Skip("long run")
	}
	s, _, cfg := newTestStage(t, 42, nil)
	audit := NewAuditor(cfg)

	for tick := 0; tick < 20000; tick++ {
		s.Tick()
		audit.Observe(s)
	}
	if audit.Unreachable != 0 {
		t.Errorf("%d of %d platforms unreachable over a full ramp", audit.Unreachable, audit.Checked)
	}
}
