package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	World   WorldConfig   `toml:"world"`
	Scripts ScriptsConfig `toml:"scripts"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Name     string        `toml:"name"`
	TickRate time.Duration `toml:"tick_rate"`
}

type WorldConfig struct {
	UnitScale float32 `toml:"unit_scale"` // script distance to world distance factor
	ScenePath string  `toml:"scene_path"`
}

type ScriptsConfig struct {
	Dir string `toml:"dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Name:     "colonygo",
			TickRate: 50 * time.Millisecond,
		},
		World: WorldConfig{
			UnitScale: 4.0,
			ScenePath: "data/scene.yaml",
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
