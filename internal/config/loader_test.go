package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedPacmanDefaultsMatchHardcoded(t *testing.T) {
	var cfg PacmanConfig
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		t.Fatalf("embedded pacman yaml: %v", err)
	}
	if cfg != DefaultPacmanConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultPacmanConfig())
	}
}

func TestEmbeddedEngineDefaultsMatchHardcoded(t *testing.T) {
	var cfg EngineConfig
	if err := yaml.Unmarshal(defaultEngineYAML, &cfg); err != nil {
		t.Fatalf("embedded engine yaml: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultEngineConfig())
	}
}

func TestEmbeddedSnakeDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded snake yaml: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultSnakeConfig())
	}
}
