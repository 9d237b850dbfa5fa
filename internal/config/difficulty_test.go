package config

import (
	"math"
	"testing"
)

func TestDifficultyTarget(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.Smoothing = 1
	d := NewDifficultyManager(cfg)

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 1.0},
		{3600, 1.15},
		{7200, 1.30},
		{36000, 1.6}, // ceiling
	}

	for _, tc := range tests {
		if got := d.Target(tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Target(%d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyOpeningFloor(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.Initial = 0.5
	cfg.Floor = 0.8
	d := NewDifficultyManager(cfg)

	if got := d.Factor(); got != 0.8 {
		t.Errorf("Factor() after reset = %v, expected floor 0.8", got)
	}
	if got := d.Target(100); got != 0.8 {
		t.Errorf("Target(100) = %v, expected floor 0.8", got)
	}
}

func TestDifficultyStaysInBounds(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultJumperConfig()
		ApplyPreset(&cfg, preset)
		d := NewDifficultyManager(cfg.Difficulty)

		prev := d.Factor()
		for tick := 1; tick <= 100000; tick++ {
			f := d.Update(tick)
			if f < cfg.Difficulty.Floor || f > cfg.Difficulty.Ceiling {
				t.Fatalf("%s: Update(%d) = %v, outside [%v, %v]", preset, tick, f, cfg.Difficulty.Floor, cfg.Difficulty.Ceiling)
			}
			if f < prev-1e-12 {
				t.Fatalf("%s: factor decreased at tick %d: %v -> %v", preset, tick, prev, f)
			}
			prev = f
		}
		if preset != DifficultyFixed && math.Abs(prev-cfg.Difficulty.Ceiling) > 1e-6 {
			t.Errorf("%s: factor after a long run = %v, expected ceiling", preset, prev)
		}
	}
}

func TestDifficultyFixedPreset(t *testing.T) {
	cfg := DefaultJumperConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	for tick := 0; tick < 10000; tick += 100 {
		if got := d.Update(tick); got != 1.0 {
			t.Fatalf("Update(%d) = %v, expected fixed 1.0", tick, got)
		}
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() = true for fixed preset")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.Initial = 1.2
	d := NewDifficultyManager(cfg)

	if got := d.Level(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level() = %v, expected 0.5", got)
	}
}

func TestDifficultyOpeningCeiling(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	d := NewDifficultyManager(cfg)

	// Unclamped target at tick 1700 would be 1 + 0.6*1700/14400 = 1.0708.
	if got := d.Target(1700); got != cfg.OpeningCeiling {
		t.Errorf("Target(1700) = %v, expected opening ceiling %v", got, cfg.OpeningCeiling)
	}
	if got := d.Target(cfg.OpeningTicks); got <= cfg.OpeningCeiling {
		t.Errorf("Target(%d) = %v, expected the ramp to resume above %v", cfg.OpeningTicks, got, cfg.OpeningCeiling)
	}
}
