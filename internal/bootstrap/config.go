// Package bootstrap wires configuration, storage and the analysis pipeline
// into running components for cmd/httpd.
package bootstrap

import (
	"fmt"

	"github.com/in-tuned/emotion-engine/internal/config"
	"github.com/in-tuned/emotion-engine/internal/logging"
)

// LoadConfig loads configuration. A missing file falls back to defaults plus
// environment overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Path("config.yml"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (logging.Logger, error) {
	logCfg := cfg.Logging
	if cfg.Service.Debug {
		logCfg.Development = true
		logCfg.Level = "debug"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger.With(logging.String("service", cfg.Service.Name)), nil
}
