// Package config provides YAML-based tuning for the engine and the games:
// input classification thresholds, LED animation parameters, tick rate and
// per-game difficulty. Missing or malformed files always degrade to the
// embedded defaults; configuration can make the arcade different, never
// broken.
package config

// EngineConfig tunes the shared engine core.
type EngineConfig struct {
	TickRate int         `yaml:"tick_rate"` // host simulation ticks per second
	Input    InputConfig `yaml:"input"`
	Leds     LedConfig   `yaml:"leds"`
}

// InputConfig holds the press-classification thresholds in seconds.
type InputConfig struct {
	LongPressS   float64 `yaml:"long_press_s"`
	DoublePressS float64 `yaml:"double_press_s"`
}

// LedConfig tunes the LED feedback engine.
type LedConfig struct {
	CrossfadeS  float64 `yaml:"crossfade_s"`   // target-change easing duration
	RateLimitHz float64 `yaml:"rate_limit_hz"` // max physical flush rate
	Brightness  float64 `yaml:"brightness"`    // global scale in [0,1]
}

// AsteroidsConfig tunes the asteroids game.
type AsteroidsConfig struct {
	ShipFrames  int              `yaml:"ship_frames"` // rotation steps in the sprite atlas
	TurnRate    float64          `yaml:"turn_rate"`   // radians per second
	Thrust      float64          `yaml:"thrust"`      // px/s^2
	BulletSpeed float64          `yaml:"bullet_speed"`
	BulletLife  float64          `yaml:"bullet_life_s"`
	FireDelay   float64          `yaml:"fire_delay_s"`
	StartRocks  int              `yaml:"start_rocks"`
	Lives       int              `yaml:"lives"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// SnakeConfig tunes the snake game.
type SnakeConfig struct {
	CellSize   int              `yaml:"cell_size"`  // pixels per grid cell
	StepEveryS float64          `yaml:"step_every"` // seconds between moves at speed 1
	MinStepS   float64          `yaml:"min_step"`   // floor as the snake speeds up
	SpeedupPct float64          `yaml:"speedup_pct"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanConfig tunes the maze game. The board itself is fixed; only the
// pacing is configurable.
type PacmanConfig struct {
	PlayerTPS  float64 `yaml:"player_tiles_per_s"`
	GhostTPS   float64 `yaml:"ghost_tiles_per_s"`
	FrightTime float64 `yaml:"fright_time_s"`
	Lives      int     `yaml:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAtScore   int     `yaml:"max_at_score"`  // score at which max difficulty is reached
}

// Level returns the difficulty in [0,1] for the given score.
func (d DifficultyConfig) Level(score int) float64 {
	if !d.Enabled || d.MaxAtScore <= 0 {
		return d.InitialLevel
	}
	l := d.InitialLevel + (1.0-d.InitialLevel)*float64(score)/float64(d.MaxAtScore)
	if l > 1.0 {
		l = 1.0
	}
	if l < 0 {
		l = 0
	}
	return l
}
