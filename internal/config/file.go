package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Frontend names accepted in the launch file and on the command line.
const (
	FrontendEbiten = "ebiten"
	FrontendTerm   = "term"
)

// File is the optional launch configuration.
// Presets and the link distance are fixed and cannot be set here.
type File struct {
	Window    WindowConfig `yaml:"window"`
	Segments  int          `yaml:"segments"`  // number of chain segments, default 30
	Particles *int         `yaml:"particles"` // background particles, default 50; 0 disables
	Sound     bool         `yaml:"sound"`     // click tone on control activation
	Frontend  string       `yaml:"frontend"`  // "ebiten" or "term"
	FPS       int          `yaml:"fps"`       // frame rate of the terminal frontend
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)
	return f
}

// LoadFile reads a YAML launch file, fills in defaults and validates it.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML launch configuration from memory.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &f, nil
}

// ParticleCount returns the configured number of background particles.
func (f *File) ParticleCount() int {
	if f.Particles == nil {
		return ParticleCount
	}
	return *f.Particles
}

func applyDefaults(f *File) {
	if f.Window.Width == 0 {
		f.Window.Width = WindowWidth
	}
	if f.Window.Height == 0 {
		f.Window.Height = WindowHeight
	}
	if f.Segments == 0 {
		f.Segments = SegmentCount
	}
	if f.Particles == nil {
		n := ParticleCount
		f.Particles = &n
	}
	if f.Frontend == "" {
		f.Frontend = FrontendEbiten
	}
	if f.FPS == 0 {
		f.FPS = FramesPerSecond
	}
}

func validate(f *File) error {
	if f.Window.Width < 0 || f.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", f.Window.Width, f.Window.Height)
	}
	if f.Segments < 1 {
		return fmt.Errorf("segments must be at least 1, got %d", f.Segments)
	}
	if *f.Particles < 0 {
		return fmt.Errorf("particles must not be negative, got %d", *f.Particles)
	}
	switch f.Frontend {
	case FrontendEbiten, FrontendTerm:
	default:
		return fmt.Errorf("unknown frontend %q (want %q or %q)", f.Frontend, FrontendEbiten, FrontendTerm)
	}
	if f.FPS < 1 || f.FPS > 240 {
		return fmt.Errorf("fps must be in [1, 240], got %d", f.FPS)
	}
	return nil
}
