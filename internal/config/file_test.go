package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *File)
	}{
		{
			name: "full config",
			yamlContent: `
window:
  width: 800
  height: 600
segments: 12
particles: 0
sound: true
frontend: term
fps: 30
`,
			validate: func(t *testing.T, f *File) {
				if f.Window.Width != 800 || f.Window.Height != 600 {
					t.Errorf("expected window 800x600, got %dx%d", f.Window.Width, f.Window.Height)
				}
				if f.Segments != 12 {
					t.Errorf("expected 12 segments, got %d", f.Segments)
				}
				if f.ParticleCount() != 0 {
					t.Errorf("expected particles disabled, got %d", f.ParticleCount())
				}
				if !f.Sound {
					t.Error("expected sound enabled")
				}
				if f.Frontend != FrontendTerm {
					t.Errorf("expected frontend term, got %q", f.Frontend)
				}
				if f.FPS != 30 {
					t.Errorf("expected fps 30, got %d", f.FPS)
				}
			},
		},
		{
			name:        "empty file uses defaults",
			yamlContent: ``,
			validate: func(t *testing.T, f *File) {
				if f.Window.Width != WindowWidth || f.Window.Height != WindowHeight {
					t.Errorf("expected default window, got %dx%d", f.Window.Width, f.Window.Height)
				}
				if f.Segments != SegmentCount {
					t.Errorf("expected %d segments, got %d", SegmentCount, f.Segments)
				}
				if f.ParticleCount() != ParticleCount {
					t.Errorf("expected %d particles, got %d", ParticleCount, f.ParticleCount())
				}
				if f.Frontend != FrontendEbiten {
					t.Errorf("expected frontend ebiten, got %q", f.Frontend)
				}
				if f.FPS != FramesPerSecond {
					t.Errorf("expected fps %d, got %d", FramesPerSecond, f.FPS)
				}
			},
		},
		{
			name:        "unknown frontend",
			yamlContent: "frontend: browser\n",
			wantErr:     true,
			errContains: "unknown frontend",
		},
		{
			name:        "negative segments",
			yamlContent: "segments: -3\n",
			wantErr:     true,
			errContains: "segments must be at least 1",
		},
		{
			name:        "negative particles",
			yamlContent: "particles: -1\n",
			wantErr:     true,
			errContains: "particles must not be negative",
		},
		{
			name:        "fps out of range",
			yamlContent: "fps: 1000\n",
			wantErr:     true,
			errContains: "fps must be in",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snake.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			f, err := LoadFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, f)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPresets(t *testing.T) {
	wantColors := []string{"Green", "Blue", "Pink", "Purple", "Orange"}
	if len(Colors) != len(wantColors) {
		t.Fatalf("expected %d colors, got %d", len(wantColors), len(Colors))
	}
	for i, name := range wantColors {
		if Colors[i].Name != name {
			t.Errorf("color %d: expected %q, got %q", i, name, Colors[i].Name)
		}
		if Colors[i].RGBA.A != 255 {
			t.Errorf("color %s: expected opaque, got alpha %d", name, Colors[i].RGBA.A)
		}
	}

	// limegreen
	if got := Colors[0].RGBA; got.R != 0x32 || got.G != 0xcd || got.B != 0x32 {
		t.Errorf("unexpected Green rgba %v", got)
	}

	wantSpeeds := map[string]float64{"Slow": 0.1, "Medium": 0.2, "Fast": 0.3, "Very Fast": 0.4}
	for _, s := range Speeds {
		if wantSpeeds[s.Name] != s.Value {
			t.Errorf("speed %s: expected %v, got %v", s.Name, wantSpeeds[s.Name], s.Value)
		}
		if s.Value <= 0 || s.Value > 1 {
			t.Errorf("speed %s out of (0,1]: %v", s.Name, s.Value)
		}
	}
	if Speeds[DefaultSpeedIndex].Name != "Medium" {
		t.Errorf("default speed should be Medium, got %s", Speeds[DefaultSpeedIndex].Name)
	}
}
