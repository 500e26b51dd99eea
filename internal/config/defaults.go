package config

import (
	_ "embed"
)

//go:embed defaults/pingpong.yaml
var defaultPingPongYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// YAML and is used when that cannot be parsed.
func DefaultConfig() PingPongConfig {
	return PingPongConfig{
		Physics: PhysicsConfig{
			Gravity:         -0.00005,
			Floor:           0.1,
			BounceFactor:    0.7,
			SpinDamping:     0.95,
			WallRestitution: 0.9,
			WallDamping:     0.95,
		},
		Ball: BallConfig{
			Radius:      0.02,
			StartZ:      0.2,
			ServeSpeed:  0.0011,
			ServeSpread: 0.0012,
			ServeOffset: 0.06,
			MaxSpeed:    0.004,
		},
		Paddles: PaddleConfig{
			Radius:            0.04,
			Z:                 0.1,
			Smoothing:         0.15,
			KeyStep:           0.04,
			PlayerStart:       Point{U: 0.5, V: 0.72},
			BotStart:          Point{U: 0.5, V: -0.40},
			PlayerMin:         Point{U: 0.05, V: 0.45},
			PlayerMax:         Point{U: 0.95, V: 0.95},
			HitReach:          0.02,
			HitZReach:         0.3,
			HitSpeedIncrement: 0.00005,
			HitAngleFactor:    0.02,
			HitLift:           0.002,
		},
		Bot: BotConfig{
			Lookahead:    12,
			DeadZone:     0.025,
			NearBand:     0.18,
			RetreatLimit: -0.5,
			RestLimit:    -0.3,
			RetreatRate:  0.6,
			ApproachRate: 0.4,
			RecoverRate:  0.3,
			JitterChance: 0.04,
			JitterU:      0.008,
			JitterV:      0.004,
			Min:          Point{U: 0.1, V: -0.6},
			Max:          Point{U: 0.9, V: -0.1},
		},
		Match: MatchConfig{
			WinScore:     7,
			ServeRule:    ServeRuleAlternate,
			FirstServe:   "bot",
			ServeDelayMS: 0,
			ScoreMargin:  0.15,
		},
		Difficulty: DifficultyConfig{
			BaseBotSpeed:    0.00020,
			BaseSpeedFactor: 0.7,
			CategoryStep:    0.00005,
			LevelStepFrom:   10,
			LevelStep:       0.00002,
			Bands: []DifficultyBand{
				{MinCategory: 4, MinLevel: 5, BotSpeed: 0.00035, SpeedFactor: 1.4},
				{MinCategory: 7, MinLevel: 10, BotSpeed: 0.00055, SpeedFactor: 2.0},
			},
		},
		Progression: ProgressionConfig{
			LevelsPerCategory: 15,
			XPNeeded:          []int{0, 100, 250, 500, 1000},
			Rewards: map[int]RewardRule{
				1: {WinXP: 100, LoseXP: 50, WinCoins: 50, LoseCoins: 25},
				2: {WinXP: 120, LoseXP: 60, WinCoins: 60, LoseCoins: 30},
			},
			CategoryNames: []string{
				"Rookie Rally", "Spin Masters", "Power Play", "Precision Pros", "Speed Demons",
				"Tactical Titans", "Elite Champions", "Ultimate Showdown", "Legendary League", "Hall of Fame",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPingPongYAML
}
