package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load loads the game configuration.
// Search order: customPath -> ~/.pingpong/configs/pingpong.yaml -> ./configs/pingpong.yaml -> embedded default
func Load(customPath string) (PingPongConfig, error) {
	// Try custom path first; errors here are the caller's to see
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PingPongConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PingPongConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pingpong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "pingpong.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPingPongYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults, so a partial file only
// overrides what it names, and validates the result. A rewards table in the
// file replaces the default one instead of merging into it.
func parse(data []byte) (PingPongConfig, error) {
	var keys struct {
		Progression struct {
			Rewards yaml.Node `yaml:"rewards"`
		} `yaml:"progression"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return PingPongConfig{}, err
	}

	cfg := DefaultConfig()
	if !keys.Progression.Rewards.IsZero() {
		cfg.Progression.Rewards = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PingPongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PingPongConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pingpong", "configs", filename)
}

// Validate rejects settings the simulation cannot run with.
func (c PingPongConfig) Validate() error {
	switch {
	case c.Physics.Gravity > 0:
		return fmt.Errorf("%w: gravity must not be positive", ErrInvalidConfig)
	case c.Physics.BounceFactor < 0 || c.Physics.BounceFactor > 1:
		return fmt.Errorf("%w: bounce_factor must be within [0, 1]", ErrInvalidConfig)
	case c.Paddles.Smoothing <= 0 || c.Paddles.Smoothing > 1:
		return fmt.Errorf("%w: paddle smoothing must be within (0, 1]", ErrInvalidConfig)
	case c.Bot.Min.U > c.Bot.Max.U || c.Bot.Min.V > c.Bot.Max.V:
		return fmt.Errorf("%w: bot bounds are inverted", ErrInvalidConfig)
	case c.Paddles.PlayerMin.U > c.Paddles.PlayerMax.U || c.Paddles.PlayerMin.V > c.Paddles.PlayerMax.V:
		return fmt.Errorf("%w: player bounds are inverted", ErrInvalidConfig)
	case c.Match.WinScore <= 0:
		return fmt.Errorf("%w: win_score must be positive", ErrInvalidConfig)
	case c.Match.ServeRule != ServeRuleAlternate && c.Match.ServeRule != ServeRuleBot:
		return fmt.Errorf("%w: unknown serve_rule %q", ErrInvalidConfig, c.Match.ServeRule)
	case c.Match.FirstServe != "bot" && c.Match.FirstServe != "player":
		return fmt.Errorf("%w: first_serve must be bot or player, got %q", ErrInvalidConfig, c.Match.FirstServe)
	case c.Progression.LevelsPerCategory <= 0:
		return fmt.Errorf("%w: levels_per_category must be positive", ErrInvalidConfig)
	case len(c.Progression.XPNeeded) == 0:
		return fmt.Errorf("%w: xp_needed must not be empty", ErrInvalidConfig)
	}

	for i := 1; i < len(c.Progression.XPNeeded); i++ {
		if c.Progression.XPNeeded[i] < c.Progression.XPNeeded[i-1] {
			return fmt.Errorf("%w: xp_needed must be non-decreasing", ErrInvalidConfig)
		}
	}
	if _, ok := c.Progression.Rewards[1]; !ok {
		return fmt.Errorf("%w: rewards must define category 1", ErrInvalidConfig)
	}
	for i, band := range c.Difficulty.Bands {
		if band.MinCategory <= 0 || band.MinLevel <= 0 {
			return fmt.Errorf("%w: difficulty band %d needs positive thresholds", ErrInvalidConfig, i)
		}
	}
	return nil
}
