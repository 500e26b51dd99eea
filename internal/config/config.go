// Package config provides YAML-based configuration loading for the game
// and the category/level difficulty bands.
package config

import "fmt"

// PingPongConfig contains all tunable constants of the simulation.
// Velocities are in table units per millisecond, accelerations per ms².
type PingPongConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Ball        BallConfig        `yaml:"ball"`
	Paddles     PaddleConfig      `yaml:"paddles"`
	Bot         BotConfig         `yaml:"bot"`
	Match       MatchConfig       `yaml:"match"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Progression ProgressionConfig `yaml:"progression"`
}

// PhysicsConfig defines ball flight and bounce parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`          // negative, per ms²
	Floor           float64 `yaml:"floor"`            // table surface height
	BounceFactor    float64 `yaml:"bounce_factor"`    // vz retained on bounce
	SpinDamping     float64 `yaml:"spin_damping"`     // vu retained on bounce
	WallRestitution float64 `yaml:"wall_restitution"` // vu retained on side reflection
	WallDamping     float64 `yaml:"wall_damping"`     // extra vu damping on side reflection
}

// BallConfig defines the ball and its serve launch.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	StartZ      float64 `yaml:"start_z"`
	ServeSpeed  float64 `yaml:"serve_speed"`  // |vv| at launch before speed factor
	ServeSpread float64 `yaml:"serve_spread"` // full width of the random vu at launch
	ServeOffset float64 `yaml:"serve_offset"` // v distance from the serving paddle
	MaxSpeed    float64 `yaml:"max_speed"`    // cap on |vv| after paddle hits
}

// Point is a (u, v) pair in YAML.
type Point struct {
	U float64 `yaml:"u"`
	V float64 `yaml:"v"`
}

// PaddleConfig defines both paddles and the hit response.
type PaddleConfig struct {
	Radius            float64 `yaml:"radius"`
	Z                 float64 `yaml:"z"`
	Smoothing         float64 `yaml:"smoothing"` // player exponential smoothing per frame
	KeyStep           float64 `yaml:"key_step"`  // target move per key press
	PlayerStart       Point   `yaml:"player_start"`
	BotStart          Point   `yaml:"bot_start"`
	PlayerMin         Point   `yaml:"player_min"`
	PlayerMax         Point   `yaml:"player_max"`
	HitReach          float64 `yaml:"hit_reach"`   // added to the radii for the proximity test
	HitZReach         float64 `yaml:"hit_z_reach"` // max height difference for a hit
	HitSpeedIncrement float64 `yaml:"hit_speed_increment"`
	HitAngleFactor    float64 `yaml:"hit_angle_factor"`
	HitLift           float64 `yaml:"hit_lift"`
}

// BotConfig defines the bot's tracking heuristic.
type BotConfig struct {
	Lookahead    float64 `yaml:"lookahead"`
	DeadZone     float64 `yaml:"dead_zone"`
	NearBand     float64 `yaml:"near_band"`     // ball closer than this in v triggers retreat
	RetreatLimit float64 `yaml:"retreat_limit"` // bot does not retreat past this v
	RestLimit    float64 `yaml:"rest_limit"`    // bot does not advance past this v
	RetreatRate  float64 `yaml:"retreat_rate"`
	ApproachRate float64 `yaml:"approach_rate"`
	RecoverRate  float64 `yaml:"recover_rate"`
	JitterChance float64 `yaml:"jitter_chance"`
	JitterU      float64 `yaml:"jitter_u"` // full width of the horizontal jitter
	JitterV      float64 `yaml:"jitter_v"` // full width of the vertical jitter
	Min          Point   `yaml:"min"`
	Max          Point   `yaml:"max"`
}

// Serve rules decide who serves after a point.
const (
	ServeRuleAlternate = "alternate" // serve switches after every point
	ServeRuleBot       = "bot"       // bot always serves
)

// MatchConfig defines scoring and serving rules.
type MatchConfig struct {
	WinScore     int     `yaml:"win_score"`
	ServeRule    string  `yaml:"serve_rule"`
	FirstServe   string  `yaml:"first_serve"`    // "bot" or "player"
	ServeDelayMS float64 `yaml:"serve_delay_ms"` // bot serve hold; 0 launches immediately
	ScoreMargin  float64 `yaml:"score_margin"`   // distance past a paddle that counts as a miss
}

// RewardRule is the XP/coin payout for one category.
type RewardRule struct {
	WinXP     int `yaml:"win_xp"`
	LoseXP    int `yaml:"lose_xp"`
	WinCoins  int `yaml:"win_coins"`
	LoseCoins int `yaml:"lose_coins"`
}

// ProgressionConfig defines levels, XP thresholds and rewards.
type ProgressionConfig struct {
	LevelsPerCategory int                `yaml:"levels_per_category"`
	XPNeeded          []int              `yaml:"xp_needed"`
	Rewards           map[int]RewardRule `yaml:"rewards"`
	CategoryNames     []string           `yaml:"category_names"`
}

// CategoryName returns the display name for a 1-based category.
func (p ProgressionConfig) CategoryName(category int) string {
	if category >= 1 && category <= len(p.CategoryNames) {
		return p.CategoryNames[category-1]
	}
	return fmt.Sprintf("Category %d", category)
}
