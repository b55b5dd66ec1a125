package config

import (
	"errors"
	"testing"

	xerrors "github.com/vizkit/explorer/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Module != "linear_transform_2d" {
		t.Errorf("Module = %q, want linear_transform_2d", cfg.Module)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.WindowWidth != 1200 || cfg.WindowHeight != 800 {
		t.Errorf("window = %dx%d, want 1200x800", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.TUI {
		t.Error("TUI should default to false")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("EXPLORER_MODULE", "other_module")
	t.Setenv("EXPLORER_LOG_LEVEL", "debug")
	t.Setenv("EXPLORER_WINDOW_WIDTH", "640")
	t.Setenv("EXPLORER_WINDOW_HEIGHT", "480")
	t.Setenv("EXPLORER_TUI", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Module != "other_module" {
		t.Errorf("Module = %q, want other_module", cfg.Module)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.WindowWidth, cfg.WindowHeight)
	}
	if !cfg.TUI {
		t.Error("TUI should be true")
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("EXPLORER_WINDOW_WIDTH", "wide")

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for a non-numeric width")
	}

	var e *xerrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Phase != xerrors.PhaseConfig {
		t.Errorf("phase = %v, want config", e.Phase)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"info", "info", false},
		{"debug", "debug", false},
		{"warn", "warn", false},
		{"bogus", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(Config{LogLevel: tt.level})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger() error: %v", err)
			}
			if log == nil {
				t.Fatal("NewLogger() returned nil logger")
			}
		})
	}
}
