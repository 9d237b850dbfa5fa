package config

import "math"

// DifficultyManager tracks the difficulty factor over a run. The factor
// scales platform speed, gap widths and spawn cadence.
type DifficultyManager struct {
	cfg    DifficultyConfig
	factor float64
}

// NewDifficultyManager creates a manager positioned at the start of a run.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns the factor to its starting value.
func (d *DifficultyManager) Reset() {
	d.factor = d.clamp(d.cfg.Initial)
}

// IsEnabled reports whether the factor ramps over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Target returns the unsmoothed factor for a run that is gameTime ticks old.
func (d *DifficultyManager) Target(gameTime int) float64 {
	if !d.cfg.Enabled {
		return d.clamp(d.cfg.Initial)
	}
	progress := math.Min(1, float64(gameTime)/float64(max(1, d.cfg.RampTicks)))
	t := d.cfg.Initial + (d.cfg.Ceiling-d.cfg.Initial)*progress
	if gameTime < d.cfg.OpeningTicks {
		t = math.Min(t, math.Max(d.cfg.OpeningCeiling, d.cfg.Initial))
	}
	return d.clamp(t)
}

// Update moves the factor toward Target(gameTime) and returns it.
func (d *DifficultyManager) Update(gameTime int) float64 {
	s := d.cfg.Smoothing
	if s <= 0 || s > 1 {
		s = 1
	}
	d.factor = d.clamp(d.factor + (d.Target(gameTime)-d.factor)*s)
	return d.factor
}

// Factor returns the current factor.
func (d *DifficultyManager) Factor() float64 {
	return d.factor
}

// Level maps the factor onto [0, 1] between floor and ceiling.
func (d *DifficultyManager) Level() float64 {
	span := d.cfg.Ceiling - d.cfg.Floor
	if span <= 0 {
		return 0
	}
	return clampF((d.factor-d.cfg.Floor)/span, 0, 1)
}

func (d *DifficultyManager) clamp(v float64) float64 {
	lo, hi := d.cfg.Floor, d.cfg.Ceiling
	if lo > hi {
		lo, hi = hi, lo
	}
	return clampF(v, lo, hi)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
