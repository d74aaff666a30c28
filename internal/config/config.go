package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	ModeHuman    = "human"
	ModeSelfPlay = "self-play"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode      string `yaml:"mode" env:"GAME_MODE" env-default:"human"`
	HumanMark string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file, applies the environment on top and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	switch that.Mode {
	case ModeHuman, ModeSelfPlay:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, that.Mode)
	}

	if _, err := entity.ParseMark(that.HumanMark); err != nil {
		return fmt.Errorf("%w: human mark: %w", ErrInvalidConfig, err)
	}

	return nil
}

// GetHumanMark - the side the human plays in human mode.
func (that *Config) GetHumanMark() entity.Mark {
	mark, err := entity.ParseMark(that.HumanMark)
	if err != nil {
		return entity.PlayerOne
	}

	return mark
}

func (that *Config) IsSelfPlay() bool {
	return that.Mode == ModeSelfPlay
}
