// Package config loads the explorer's startup settings from EXPLORER_*
// environment variables and builds the application logger.
package config

import (
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vizkit/explorer/errors"
)

// Config holds the startup settings. Command-line flags may override
// individual fields after Load.
type Config struct {
	Module       string `env:"EXPLORER_MODULE"        envDefault:"linear_transform_2d"`
	LogLevel     string `env:"EXPLORER_LOG_LEVEL"     envDefault:"info"`
	WindowWidth  int    `env:"EXPLORER_WINDOW_WIDTH"  envDefault:"1200"`
	WindowHeight int    `env:"EXPLORER_WINDOW_HEIGHT" envDefault:"800"`
	TUI          bool   `env:"EXPLORER_TUI"           envDefault:"false"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Config("parse environment", err)
	}
	return cfg, nil
}

// NewLogger builds a console logger at the configured level
func NewLogger(cfg Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Config("log level "+cfg.LogLevel, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)

	log, err := zc.Build()
	if err != nil {
		return nil, errors.Config("build logger", err)
	}
	return log, nil
}
