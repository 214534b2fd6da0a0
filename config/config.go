package config

import (
	"currency-converter/domain"
	"fmt"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// environment the variables read by cleanenv
type environment struct {
	LogLevel string `env:"CONVERTER_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Source   string `env:"CONVERTER_SOURCE" env-default:"USD" env-description:"currency preselected as source"`
	Target   string `env:"CONVERTER_TARGET" env-default:"EUR" env-description:"currency preselected as target"`
	HTTPAddr string `env:"CONVERTER_HTTP_ADDR" env-default:":8080" env-description:"listen address of the HTTP server"`
}

// Config validated application configuration
type Config struct {
	LogLevel string
	Source   string
	Target   string
	HTTPAddr string

	// Level the go-kit filter matching LogLevel
	Level level.Option
}

// Load reads the optional env file at path, then the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		// a missing file is fine, the environment and defaults still apply
		_ = godotenv.Load(path)
	}

	var env environment
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := Config{
		LogLevel: env.LogLevel,
		HTTPAddr: env.HTTPAddr,
	}

	source, err := domain.ParseCurrency(env.Source)
	if err != nil {
		return nil, fmt.Errorf("CONVERTER_SOURCE: %w", err)
	}
	target, err := domain.ParseCurrency(env.Target)
	if err != nil {
		return nil, fmt.Errorf("CONVERTER_TARGET: %w", err)
	}
	cfg.Source, cfg.Target = string(source), string(target)

	if cfg.Level, err = LevelOption(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("CONVERTER_LOG_LEVEL: %w", err)
	}
	return &cfg, nil
}

// LevelOption maps a level name to a go-kit level filter
func LevelOption(name string) (level.Option, error) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("unknown log level: %v", name)
}

func (c *Config) SourceCurrency() domain.Currency {
	return domain.Currency(c.Source)
}

func (c *Config) TargetCurrency() domain.Currency {
	return domain.Currency(c.Target)
}

// Usage describes the environment variables understood by Load
func Usage() string {
	var env environment
	text, err := cleanenv.GetDescription(&env, nil)
	if err != nil {
		return ""
	}
	return text
}
