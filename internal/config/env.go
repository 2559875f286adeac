package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// UI modes.
const (
	UIScreen  = "tcell"
	UIConsole = "console"
)

// Config holds the runtime knobs. The word list and stage table are fixed.
type Config struct {
	UI       string `env:"SNOWMAN_UI" envDefault:"tcell"`
	Seed     int64  `env:"SNOWMAN_SEED"`
	LogLevel string `env:"SNOWMAN_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"SNOWMAN_LOG_FILE"`
}

// Load reads an optional .env file from path, then the environment.
// Variables already set in the environment win over the file.
func Load(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.UI != UIScreen && cfg.UI != UIConsole {
		return Config{}, fmt.Errorf("SNOWMAN_UI: unknown mode %q (want %q or %q)", cfg.UI, UIScreen, UIConsole)
	}
	return cfg, nil
}

// ParseEnv fills target from the SNOWMAN_* variables named in its env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
