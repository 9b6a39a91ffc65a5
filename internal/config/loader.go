package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves one named config with the standard search order:
// customPath -> ~/.merlinpad/configs/<name>.yaml -> ./configs/<name>.yaml
// -> embedded default. Only an explicitly named custom path surfaces its
// errors; the fallback chain is silent by design.
func load(customPath, name string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the per-user config path, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".merlinpad", "configs", filename)
}

// LoadEngine loads the engine tuning.
func LoadEngine(customPath string) (EngineConfig, error) {
	var cfg EngineConfig
	if err := load(customPath, "engine", defaultEngineYAML, &cfg); err != nil {
		return DefaultEngineConfig(), err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultEngineConfig().TickRate
	}
	return cfg, nil
}

// LoadAsteroids loads the asteroids tuning.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	var cfg AsteroidsConfig
	if err := load(customPath, "asteroids", defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), err
	}
	return cfg, nil
}

// LoadSnake loads the snake tuning.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := load(customPath, "snake", defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadPacman loads the maze-game tuning.
func LoadPacman(customPath string) (PacmanConfig, error) {
	var cfg PacmanConfig
	if err := load(customPath, "pacman", defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), err
	}
	return cfg, nil
}
