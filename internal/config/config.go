// Package config provides YAML-based configuration loading, validation and
// difficulty management for the jumper game.
package config

// JumperConfig contains every tunable of the jumper game. All distances are
// in pixels of the logical viewport, all times in ticks unless the field
// name says otherwise.
type JumperConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Jump       JumpTable        `yaml:"jump"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Gaps       GapConfig        `yaml:"gaps"`
	Placement  PlacementConfig  `yaml:"placement"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Input      InputConfig      `yaml:"input"`
	Score      ScoreConfig      `yaml:"score"`
}

// PhysicsConfig holds the integrator limits and the safeguards that keep
// the actor from hanging in the air.
type PhysicsConfig struct {
	MaxFallSpeed    int     `yaml:"max_fall_speed"`    // px/tick, integer speed cap
	AscentCap       float64 `yaml:"ascent_cap"`        // px above the jump origin before forced fall accel
	AirtimeCap      int     `yaml:"airtime_cap"`       // ticks airborne before MinDescentSpeed is enforced
	MinDescentSpeed int     `yaml:"min_descent_speed"` // px/tick floor after AirtimeCap
	LeaveSpeed      int     `yaml:"leave_speed"`       // initial fall speed after walking off a platform
	StuckSpeed      int     `yaml:"stuck_speed"`       // speed forced on an airborne actor with zero speed
	StallEpsilon    float64 `yaml:"stall_epsilon"`     // px; smaller per-tick motion counts as a stall

	LandingTolerance    float64 `yaml:"landing_tolerance"`    // px band of the fallback landing test
	StationaryTolerance float64 `yaml:"stationary_tolerance"` // px band for an actor at rest
	NearbyMargin        float64 `yaml:"nearby_margin"`        // px outside the viewport still considered
	NearbyHeights       float64 `yaml:"nearby_heights"`       // vertical filter in actor heights
	GameOverMargin      float64 `yaml:"game_over_margin"`     // px below the viewport bottom
}

// JumpTable holds the per-bucket launch parameters. Bucket i is selected by
// how long the jump input was held while grounded (see HoldThresholds).
// Accelerations are in 1/256 px per tick².
type JumpTable struct {
	InitialSpeed []int `yaml:"initial_speed"`
	RiseAccel    []int `yaml:"rise_accel"`
	FallAccel    []int `yaml:"fall_accel"`
	AccelSeed    []int `yaml:"accel_seed"`

	// HoldThresholds are ascending hold-frame counts; a hold of at least
	// HoldThresholds[k] selects bucket k+1.
	HoldThresholds []int `yaml:"hold_thresholds"`

	HoldAssistFrames     int     `yaml:"hold_assist_frames"`
	HoldAssistDecrement  int     `yaml:"hold_assist_decrement"`
	HoldAssistFloorRatio float64 `yaml:"hold_assist_floor_ratio"`

	// ChargeLaunchFrames launches a jump automatically when the input stays
	// held on the ground this long. 0 disables charged launches.
	ChargeLaunchFrames int `yaml:"charge_launch_frames"`
}

// Buckets returns the number of jump strength buckets.
func (j JumpTable) Buckets() int {
	return len(j.InitialSpeed)
}

// PlayerConfig places and sizes the actor.
type PlayerConfig struct {
	X      float64 `yaml:"x"` // center
	Y      float64 `yaml:"y"` // center
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig bounds platform geometry.
type PlatformConfig struct {
	Height        float64 `yaml:"height"`
	MinWidth      float64 `yaml:"min_width"`
	MaxWidth      float64 `yaml:"max_width"`
	LandableWidth float64 `yaml:"landable_width"` // floor of the narrowed min width
	WidthCeiling  float64 `yaml:"width_ceiling"`
	WidthShrink   float64 `yaml:"width_shrink"` // min width lost per difficulty unit above 1

	EarlyBonusTicks   int     `yaml:"early_bonus_ticks"`
	EarlyBonusDivisor float64 `yaml:"early_bonus_divisor"`

	MinY float64 `yaml:"min_y"` // highest allowed platform top
	MaxY float64 `yaml:"max_y"` // lowest allowed platform top

	BaseSpeed  float64 `yaml:"base_speed"`  // px/tick at difficulty 1
	Types      int     `yaml:"types"`       // cosmetic type tags
	FirstWidth float64 `yaml:"first_width"` // width of the platform under the spawn point
	Lookahead  float64 `yaml:"lookahead"`   // px beyond the viewport the stage is kept filled
}

// GapConfig controls horizontal spacing between consecutive platforms.
type GapConfig struct {
	Base        float64 `yaml:"base"`
	Growth      float64 `yaml:"growth"`
	GrowthTicks int     `yaml:"growth_ticks"`
	Spread      float64 `yaml:"spread"`
	Headroom    float64 `yaml:"headroom"`
	PerLevel    float64 `yaml:"per_level"`
	Ceiling     float64 `yaml:"ceiling"`

	InitialCount   int        `yaml:"initial_count"`
	InitialNear    [2]float64 `yaml:"initial_near"`
	InitialFar     [2]float64 `yaml:"initial_far"`
	InitialLeadGap float64    `yaml:"initial_lead_gap"`
}

// PlacementConfig shapes the reachable window for new platform heights.
type PlacementConfig struct {
	OptimalDrop   float64 `yaml:"optimal_drop"`
	UpwardShare   float64 `yaml:"upward_share"`
	DownwardShare float64 `yaml:"downward_share"`
	LowerMargin   float64 `yaml:"lower_margin"`

	NarrowBase  float64 `yaml:"narrow_base"`
	NarrowSlope float64 `yaml:"narrow_slope"`
	NarrowFloor float64 `yaml:"narrow_floor"`

	GraceTicks  int     `yaml:"grace_ticks"`
	GraceJitter float64 `yaml:"grace_jitter"`

	MinWindow   float64    `yaml:"min_window"`
	FallbackDY  [2]float64 `yaml:"fallback_dy"`
	EasyDY      [2]float64 `yaml:"easy_dy"`
	EasyChance  float64    `yaml:"easy_chance"`
	EasySlope   float64    `yaml:"easy_slope"`
	EasyFloor   float64    `yaml:"easy_floor"`
	InitialFlat int        `yaml:"initial_flat"`
}

// SpawnConfig controls the spawn cadence.
type SpawnConfig struct {
	BaseInterval int     `yaml:"base_interval"`
	MinInterval  int     `yaml:"min_interval"`
	IntervalCut  float64 `yaml:"interval_cut"` // share of BaseInterval removed at full contribution
}

// DifficultyConfig defines the difficulty ramp.
type DifficultyConfig struct {
	Enabled bool    `yaml:"enabled"`
	Initial float64 `yaml:"initial"`
	Floor   float64 `yaml:"floor"`
	Ceiling float64 `yaml:"ceiling"`

	// During the first OpeningTicks the target never exceeds OpeningCeiling
	// (or Initial, if that is higher).
	OpeningTicks   int     `yaml:"opening_ticks"`
	OpeningCeiling float64 `yaml:"opening_ceiling"`

	RampTicks int     `yaml:"ramp_ticks"` // ticks from Initial to Ceiling
	Smoothing float64 `yaml:"smoothing"`  // 0 < s <= 1; 1 follows the target exactly
}

// ViewportConfig sets the logical pixel viewport and how terminal cells
// map onto it.
type ViewportConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	CellWidth float64 `yaml:"cell_width"` // px per terminal column
}

// InputConfig tunes the terminal input emulation.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// ScoreConfig converts ticks into metres.
type ScoreConfig struct {
	PerTick float64 `yaml:"per_tick"`
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings map to
// the empty preset, which keeps the config's own values.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// ApplyPreset adjusts the starting difficulty for a preset. Starting values
// are clamped into [Floor, Ceiling]. Fixed disables the ramp.
func ApplyPreset(cfg *JumperConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyEasy:
		d.Enabled = true
		d.Initial = d.Floor
	case DifficultyNormal:
		d.Enabled = true
		d.Initial = 1.0
	case DifficultyHard:
		d.Enabled = true
		d.Initial = d.Floor + (d.Ceiling-d.Floor)*0.6
	case DifficultyFixed:
		d.Enabled = false
	default:
		return
	}
	d.Initial = clampF(d.Initial, d.Floor, d.Ceiling)
}
