package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultJumperYAML
}

// DefaultJumperConfig returns the built-in configuration. It matches
// defaults/jumper.yaml and is used when the embedded document cannot be
// decoded.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: PhysicsConfig{
			MaxFallSpeed:        8,
			AscentCap:           50,
			AirtimeCap:          150,
			MinDescentSpeed:     2,
			LeaveSpeed:          1,
			StuckSpeed:          1,
			StallEpsilon:        0.1,
			LandingTolerance:    4,
			StationaryTolerance: 20,
			NearbyMargin:        50,
			NearbyHeights:       5,
			GameOverMargin:      50,
		},
		Jump: JumpTable{
			InitialSpeed:         []int{-4, -4, -5, -5, -6},
			RiseAccel:            []int{0x10, 0x10, 0x0e, 0x14, 0x14},
			FallAccel:            []int{0x90, 0x90, 0x80, 0xa0, 0xa0},
			AccelSeed:            []int{0, 0, 0, 0, 0},
			HoldThresholds:       []int{2, 5, 10, 15},
			HoldAssistFrames:     10,
			HoldAssistDecrement:  2,
			HoldAssistFloorRatio: 0.8,
			ChargeLaunchFrames:   15,
		},
		Player: PlayerConfig{
			X:      200,
			Y:      300,
			Width:  30,
			Height: 30,
		},
		Platforms: PlatformConfig{
			Height:            20,
			MinWidth:          100,
			MaxWidth:          220,
			LandableWidth:     90,
			WidthCeiling:      250,
			WidthShrink:       8,
			EarlyBonusTicks:   2000,
			EarlyBonusDivisor: 15,
			MinY:              150,
			MaxY:              350,
			BaseSpeed:         5,
			Types:             3,
			FirstWidth:        400,
			Lookahead:         200,
		},
		Gaps: GapConfig{
			Base:           40,
			Growth:         20,
			GrowthTicks:    3000,
			Spread:         5,
			Headroom:       10,
			PerLevel:       10,
			Ceiling:        90,
			InitialCount:   8,
			InitialNear:    [2]float64{40, 70},
			InitialFar:     [2]float64{60, 90},
			InitialLeadGap: 30,
		},
		Placement: PlacementConfig{
			OptimalDrop:   30,
			UpwardShare:   0.25,
			DownwardShare: 0.10,
			LowerMargin:   50,
			NarrowBase:    1.5,
			NarrowSlope:   0.2,
			NarrowFloor:   0.5,
			GraceTicks:    3000,
			GraceJitter:   8,
			MinWindow:     20,
			FallbackDY:    [2]float64{-5, 15},
			EasyDY:        [2]float64{-8, 15},
			EasyChance:    0.95,
			EasySlope:     0.2,
			EasyFloor:     0.2,
			InitialFlat:   5,
		},
		Spawn: SpawnConfig{
			BaseInterval: 40,
			MinInterval:  20,
			IntervalCut:  0.3,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Initial:        1.0,
			Floor:          0.8,
			Ceiling:        1.6,
			OpeningTicks:   1800,
			OpeningCeiling: 1.05,
			RampTicks:      14400,
			Smoothing:      0.05,
		},
		Viewport: ViewportConfig{
			Width:     800,
			Height:    400,
			CellWidth: 10,
		},
		Input: InputConfig{
			HoldWindowMS: 180,
		},
		Score: ScoreConfig{
			PerTick: 0.5,
		},
	}
}
