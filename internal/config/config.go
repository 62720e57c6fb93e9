// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds all runtime configuration for the assessment client. The
// database path is resolved separately (--db flag, EXAM_DB, XDG default).
type App struct {
	Model Model
	Log   Log
}

// Model configures the outbound analysis call. API keys are discovered
// separately by probing the standard provider key variables.
type Model struct {
	// Provider forces a specific provider instead of key discovery.
	// Values: gemini, anthropic, openai, mock.
	Provider string `env:"EXAM_PROVIDER"`
	// Name picks the model; friendly aliases like "gemini-pro" resolve
	// to full model ids.
	Name    string        `env:"EXAM_MODEL"`
	Timeout time.Duration `env:"EXAM_TIMEOUT" envDefault:"60s"`
}

// Log configures the file logger. The TUI owns the terminal, so logs
// never go to stderr.
type Log struct {
	Level string `env:"EXAM_LOG_LEVEL" envDefault:"info"`
	File  string `env:"EXAM_LOG_FILE"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
