package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/pointer-snake/internal/config"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("frontend: ebiten\nsegments: 8\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path, config.FrontendTerm, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Frontend != config.FrontendTerm {
		t.Errorf("frontend = %q, want term", cfg.Frontend)
	}
	if !cfg.Sound {
		t.Error("sound flag should enable sound")
	}
	if cfg.Segments != 8 {
		t.Errorf("segments = %d, want 8", cfg.Segments)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", "", false)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Frontend != config.FrontendEbiten || cfg.Segments != config.SegmentCount || cfg.Sound {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownFrontend(t *testing.T) {
	if _, err := loadConfig("", "browser", false); err == nil {
		t.Error("expected an error for an unknown frontend")
	}
}
