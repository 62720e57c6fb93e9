package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model.Timeout != 60*time.Second {
		t.Errorf("Timeout = %s, want 60s", cfg.Model.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EXAM_PROVIDER", "mock")
	t.Setenv("EXAM_MODEL", "gemini-flash")
	t.Setenv("EXAM_TIMEOUT", "5s")
	t.Setenv("EXAM_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model.Provider != "mock" || cfg.Model.Name != "gemini-flash" {
		t.Errorf("Model = %+v", cfg.Model)
	}
	if cfg.Model.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s", cfg.Model.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}
