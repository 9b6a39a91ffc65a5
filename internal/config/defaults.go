package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultEngineConfig returns the hardcoded engine defaults, used when
// even the embedded YAML cannot be parsed.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TickRate: 60,
		Input: InputConfig{
			LongPressS:   1.0,
			DoublePressS: 0.35,
		},
		Leds: LedConfig{
			CrossfadeS:  0.25,
			RateLimitHz: 30,
			Brightness:  0.3,
		},
	}
}

// DefaultAsteroidsConfig returns the hardcoded asteroids defaults.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		ShipFrames:  16,
		TurnRate:    4.2,
		Thrust:      55.0,
		BulletSpeed: 70.0,
		BulletLife:  1.1,
		FireDelay:   0.22,
		StartRocks:  3,
		Lives:       3,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAtScore:   40,
		},
	}
}

// DefaultSnakeConfig returns the hardcoded snake defaults.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		CellSize:   4,
		StepEveryS: 0.22,
		MinStepS:   0.07,
		SpeedupPct: 0.06,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAtScore:   30,
		},
	}
}

// DefaultPacmanConfig returns the hardcoded maze-game defaults.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		PlayerTPS:  4.5,
		GhostTPS:   3.6,
		FrightTime: 6.0,
		Lives:      3,
	}
}
