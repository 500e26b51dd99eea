package config

// DifficultyBand overrides bot speed and serve speed factor once the
// category or the level reaches its threshold.
type DifficultyBand struct {
	MinCategory int     `yaml:"min_category"`
	MinLevel    int     `yaml:"min_level"`
	BotSpeed    float64 `yaml:"bot_speed"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

// DifficultyConfig defines how category and level scale the opponent.
type DifficultyConfig struct {
	BaseBotSpeed    float64          `yaml:"base_bot_speed"`
	BaseSpeedFactor float64          `yaml:"base_speed_factor"`
	CategoryStep    float64          `yaml:"category_step"`   // added per category above 1
	LevelStepFrom   int              `yaml:"level_step_from"` // level at which LevelStep starts to apply
	LevelStep       float64          `yaml:"level_step"`      // added per 10 levels
	Bands           []DifficultyBand `yaml:"bands"`           // ascending severity
}

// Difficulty is the resolved opponent strength for one level.
type Difficulty struct {
	BotSpeed    float64
	SpeedFactor float64
}

// Resolve computes the difficulty for a category and level. The base speed
// grows linearly with category (from 2) and level (from LevelStepFrom). Bands
// are then checked in order; every matching band re-assigns both values, so
// the most severe matching band wins.
func (d DifficultyConfig) Resolve(category, level int) Difficulty {
	out := Difficulty{
		BotSpeed:    d.BaseBotSpeed,
		SpeedFactor: d.BaseSpeedFactor,
	}

	if category >= 2 {
		out.BotSpeed += d.CategoryStep * float64(category-1)
	}
	if d.LevelStepFrom > 0 && level >= d.LevelStepFrom {
		out.BotSpeed += d.LevelStep * (float64(level) / 10)
	}

	for _, band := range d.Bands {
		if category >= band.MinCategory || level >= band.MinLevel {
			out.BotSpeed = band.BotSpeed
			out.SpeedFactor = band.SpeedFactor
		}
	}
	return out
}
