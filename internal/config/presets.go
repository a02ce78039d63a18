package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorPreset is a named chain color.
type ColorPreset struct {
	Name  string
	Value string // hex, e.g. "#64ffda"
	RGBA  color.RGBA
}

// SpeedPreset is a named interpolation factor in (0, 1].
type SpeedPreset struct {
	Name  string
	Value float64
}

var Colors = []ColorPreset{
	mustColor("Green", "#32cd32"),
	mustColor("Blue", "#64ffda"),
	mustColor("Pink", "#ff6b6b"),
	mustColor("Purple", "#9d4edd"),
	mustColor("Orange", "#ff9e00"),
}

var Speeds = []SpeedPreset{
	{Name: "Slow", Value: 0.1},
	{Name: "Medium", Value: 0.2},
	{Name: "Fast", Value: 0.3},
	{Name: "Very Fast", Value: 0.4},
}

const (
	DefaultColorIndex = 0
	DefaultSpeedIndex = 1
)

func mustColor(name, hex string) ColorPreset {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("config: bad preset color %s=%q: %v", name, hex, err))
	}
	r, g, b := c.RGB255()
	return ColorPreset{
		Name:  name,
		Value: hex,
		RGBA:  color.RGBA{R: r, G: g, B: b, A: 255},
	}
}
