package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile   string    `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Animation Animation `yaml:"animation" env-prefix:"TICTACTOE_ANIMATION_"`
	Theme     Theme     `yaml:"theme" env-prefix:"TICTACTOE_THEME_"`
}

type Animation struct {
	Disabled      bool          `yaml:"disabled" env:"DISABLED"`
	FrameInterval time.Duration `yaml:"frame-interval" env:"FRAME_INTERVAL" env-default:"50ms"`
	AppearFrames  int           `yaml:"appear-frames" env:"APPEAR_FRAMES" env-default:"6"`
	PulseFrames   int           `yaml:"pulse-frames" env:"PULSE_FRAMES" env-default:"8"`
	FadeInFrames  int           `yaml:"fade-in-frames" env:"FADE_IN_FRAMES" env-default:"10"`
}

type Theme struct {
	XColor      string `yaml:"x-color" env:"X_COLOR" env-default:"#FF5F87"`
	OColor      string `yaml:"o-color" env:"O_COLOR" env-default:"#5FD7FF"`
	AccentColor string `yaml:"accent-color" env:"ACCENT_COLOR" env-default:"#FFD75F"`
	MutedColor  string `yaml:"muted-color" env:"MUTED_COLOR" env-default:"241"`
}

// Load reads the yml file at path, falling back to environment variables and
// defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
			}

			return config, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}
