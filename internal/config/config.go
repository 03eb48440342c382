package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Version tags the settings schema. Stored settings carrying any other value
// are incompatible and discarded in favour of defaults.
const Version = 2

type HSV struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	V float64 `yaml:"v"`
}

type Settings struct {
	Version int `yaml:"version"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`

	Background HSV `yaml:"background"`

	BlobRadius     float64 `yaml:"blob_radius"`
	BlobCount      int     `yaml:"blob_count"`
	Speed          float64 `yaml:"speed"`
	SlowSpeed      float64 `yaml:"slow_speed"`
	ExtraSpeed     float64 `yaml:"extra_speed"`
	BlobSaturation float64 `yaml:"blob_saturation"`
	BlobValue      float64 `yaml:"blob_value"`

	ClearCanvas  bool    `yaml:"clear_canvas"`
	Symmetry     bool    `yaml:"symmetry"`
	HuePerSecond float64 `yaml:"hue_per_second"`
	WavyRange    float64 `yaml:"wavy_range"`
	WavyRate     float64 `yaml:"wavy_rate"`

	// Keymap maps symbolic action names to raw key codes. It is external
	// configuration; the engine only ever resolves codes through it.
	Keymap map[string]string `yaml:"keymap"`
}

// Default returns the settings used when nothing valid is stored.
func Default() *Settings {
	return &Settings{
		Version:        Version,
		Width:          800,
		Height:         600,
		FPS:            60,
		Background:     HSV{H: 0, S: 0, V: 8},
		BlobRadius:     10,
		BlobCount:      40,
		Speed:          60,
		SlowSpeed:      15,
		ExtraSpeed:     45,
		BlobSaturation: 85,
		BlobValue:      95,
		ClearCanvas:    true,
		Symmetry:       false,
		HuePerSecond:   25,
		WavyRange:      0.9,
		WavyRate:       2.4,
		Keymap: map[string]string{
			"pause":           "space",
			"randomise":       "r",
			"center":          "c",
			"slow":            "s",
			"wavy":            "w",
			"toggle-clear":    "t",
			"toggle-symmetry": "y",
			"reverse":         "v",
			"randomise-speed": "x",
			"start-macro":     "m",
			"help":            "h",
			"settings":        "e",
			"escape":          "escape",
		},
	}
}

// Load reads a settings file. A schema version mismatch is an error so the
// caller falls back to Default.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if s.Version != Version {
		return nil, fmt.Errorf("settings version %d, want %d", s.Version, Version)
	}
	return &s, nil
}

// Save writes the settings file.
func Save(path string, s *Settings) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
