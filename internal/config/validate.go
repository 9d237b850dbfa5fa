package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the simulation cannot run
// with. All violations are reported together.
func (c JumperConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	p := c.Physics
	if p.MaxFallSpeed <= 0 {
		bad("physics.max_fall_speed must be positive, got %d", p.MaxFallSpeed)
	}
	if p.MinDescentSpeed <= 0 || p.MinDescentSpeed > p.MaxFallSpeed {
		bad("physics.min_descent_speed must be in (0, max_fall_speed], got %d", p.MinDescentSpeed)
	}
	if p.LeaveSpeed <= 0 || p.StuckSpeed <= 0 {
		bad("physics.leave_speed and physics.stuck_speed must be positive")
	}
	if p.AscentCap <= 0 {
		bad("physics.ascent_cap must be positive, got %v", p.AscentCap)
	}
	if p.AirtimeCap <= 0 {
		bad("physics.airtime_cap must be positive, got %d", p.AirtimeCap)
	}
	if p.NearbyHeights <= 0 {
		bad("physics.nearby_heights must be positive, got %v", p.NearbyHeights)
	}

	errs = append(errs, c.Jump.validate()...)

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		bad("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}

	pl := c.Platforms
	if pl.Height <= 0 {
		bad("platforms.height must be positive, got %v", pl.Height)
	}
	if pl.MinWidth <= 0 || pl.MinWidth > pl.MaxWidth {
		bad("platforms.min_width must be in (0, max_width], got %v > %v", pl.MinWidth, pl.MaxWidth)
	}
	if pl.LandableWidth <= 0 || pl.LandableWidth > pl.WidthCeiling {
		bad("platforms.landable_width must be in (0, width_ceiling], got %v", pl.LandableWidth)
	}
	if pl.MinY > pl.MaxY {
		bad("platforms.min_y %v is below max_y %v", pl.MinY, pl.MaxY)
	}
	if pl.BaseSpeed <= 0 {
		bad("platforms.base_speed must be positive, got %v", pl.BaseSpeed)
	}
	if pl.Types <= 0 {
		bad("platforms.types must be positive, got %d", pl.Types)
	}
	if pl.EarlyBonusDivisor <= 0 {
		bad("platforms.early_bonus_divisor must be positive, got %v", pl.EarlyBonusDivisor)
	}

	g := c.Gaps
	if g.Ceiling <= 0 || g.Base-g.Spread < 0 {
		bad("gaps: ceiling must be positive and base-spread non-negative")
	}
	if g.GrowthTicks <= 0 {
		bad("gaps.growth_ticks must be positive, got %d", g.GrowthTicks)
	}
	if g.InitialNear[0] > g.InitialNear[1] || g.InitialFar[0] > g.InitialFar[1] {
		bad("gaps: initial ranges must be ordered")
	}

	pc := c.Placement
	if pc.FallbackDY[0] > pc.FallbackDY[1] || pc.EasyDY[0] > pc.EasyDY[1] {
		bad("placement: dy ranges must be ordered")
	}
	if pc.NarrowFloor <= 0 {
		bad("placement.narrow_floor must be positive, got %v", pc.NarrowFloor)
	}

	s := c.Spawn
	if s.BaseInterval <= 0 || s.MinInterval <= 0 {
		bad("spawn intervals must be positive")
	}
	if s.IntervalCut < 0 || s.IntervalCut >= 1 {
		bad("spawn.interval_cut must be in [0, 1), got %v", s.IntervalCut)
	}

	d := c.Difficulty
	if d.Floor <= 0 || d.Floor > d.Ceiling {
		bad("difficulty.floor %v must be positive and not above ceiling %v", d.Floor, d.Ceiling)
	}
	if d.OpeningCeiling < d.Floor {
		bad("difficulty.opening_ceiling %v is below floor %v", d.OpeningCeiling, d.Floor)
	}
	if d.RampTicks <= 0 {
		bad("difficulty.ramp_ticks must be positive, got %d", d.RampTicks)
	}
	if d.Smoothing <= 0 || d.Smoothing > 1 {
		bad("difficulty.smoothing must be in (0, 1], got %v", d.Smoothing)
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 || c.Viewport.CellWidth <= 0 {
		bad("viewport dimensions must be positive")
	}
	if c.Input.HoldWindowMS < 0 {
		bad("input.hold_window_ms must not be negative, got %d", c.Input.HoldWindowMS)
	}
	if c.Score.PerTick < 0 {
		bad("score.per_tick must not be negative, got %v", c.Score.PerTick)
	}

	return errors.Join(errs...)
}

func (j JumpTable) validate() []error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	n := len(j.InitialSpeed)
	if n == 0 {
		bad("jump.initial_speed must not be empty")
		return errs
	}
	if len(j.RiseAccel) != n || len(j.FallAccel) != n || len(j.AccelSeed) != n {
		bad("jump tables must have %d entries each", n)
		return errs
	}
	if len(j.HoldThresholds) != n-1 {
		bad("jump.hold_thresholds must have %d entries, got %d", n-1, len(j.HoldThresholds))
	}
	for i := range n {
		if j.InitialSpeed[i] >= 0 {
			bad("jump.initial_speed[%d] must be negative (upward), got %d", i, j.InitialSpeed[i])
		}
		if i > 0 && -j.InitialSpeed[i] < -j.InitialSpeed[i-1] {
			bad("jump.initial_speed must not weaken with longer holds (index %d)", i)
		}
		if j.RiseAccel[i] <= 0 || j.FallAccel[i] <= 0 {
			bad("jump accelerations must be positive (index %d)", i)
		}
		if j.AccelSeed[i] < 0 || j.AccelSeed[i] >= 256 {
			bad("jump.accel_seed[%d] must be in [0, 256), got %d", i, j.AccelSeed[i])
		}
	}
	for i := 1; i < len(j.HoldThresholds); i++ {
		if j.HoldThresholds[i] <= j.HoldThresholds[i-1] {
			bad("jump.hold_thresholds must be strictly ascending")
			break
		}
	}
	if j.HoldAssistFrames < 0 || j.HoldAssistDecrement < 0 {
		bad("jump hold assist values must not be negative")
	}
	if j.HoldAssistFloorRatio <= 0 || j.HoldAssistFloorRatio > 1 {
		bad("jump.hold_assist_floor_ratio must be in (0, 1], got %v", j.HoldAssistFloorRatio)
	}
	if j.ChargeLaunchFrames < 0 {
		bad("jump.charge_launch_frames must not be negative, got %d", j.ChargeLaunchFrames)
	}
	return errs
}
