// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foldmap

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/foldmap/heightfield"
)

const (
	// Folded is the variant with a sine folded parchment map.
	Folded = "folded"

	// Flat is the variant with a flat plain map.
	Flat = "flat"
)

// ConfigFile is the name of the optional configuration file
// read from the working directory.
const ConfigFile = "foldmap.toml"

// Config has the settings of the map. Default values come from the
// default struct tags, and can be overridden by a TOML file.
type Config struct {

	// Title is the window title.
	Title string `default:"Folded Map"`

	// Variant is Folded or Flat.
	Variant string `default:"folded"`

	// Width is the size of the map along X.
	Width float32 `default:"8"`

	// Depth is the size of the map along Z.
	Depth float32 `default:"6"`

	// Amplitude is the height of the folds.
	Amplitude float32 `default:"0.35"`

	// Frequency is the number of half waves of the folds across the width.
	Frequency float32 `default:"3"`

	// Segments is the grid resolution of the folded mesh along each side.
	Segments int `default:"96"`

	// MarkerRadius is the radius of the place markers.
	MarkerRadius float32 `default:"0.16"`

	// ResetSeconds is the duration of the camera reset animation.
	ResetSeconds float32 `default:"0.8"`

	// TextureSize is the width in pixels of the generated parchment texture.
	TextureSize int `default:"512"`
}

// NewConfig returns a config with all default values.
func NewConfig() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	return cfg
}

// OpenConfig returns a config with default values overridden by
// those in the given TOML file. On error the returned config still
// holds valid values.
func OpenConfig(filename string) (*Config, error) {
	cfg := NewConfig()
	err := tomlx.Open(cfg, filename)
	cfg.Validate()
	if err != nil {
		return cfg, fmt.Errorf("foldmap: opening config %q: %w", filename, err)
	}
	return cfg, nil
}

// Validate replaces out of range values with usable ones.
func (cfg *Config) Validate() {
	def := &Config{}
	cli.SetFromDefaults(def)
	switch cfg.Variant {
	case Folded, Flat:
	default:
		slog.Warn("foldmap: unknown variant, using default", "variant", cfg.Variant, "default", def.Variant)
		cfg.Variant = def.Variant
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Depth <= 0 {
		cfg.Depth = def.Depth
	}
	if cfg.Frequency < 0 {
		cfg.Frequency = def.Frequency
	}
	cfg.Segments = min(max(cfg.Segments, 1), 512)
	if cfg.MarkerRadius <= 0 {
		cfg.MarkerRadius = def.MarkerRadius
	}
	if cfg.ResetSeconds < 0 {
		cfg.ResetSeconds = 0
	}
	cfg.TextureSize = min(max(cfg.TextureSize, 16), 4096)
}

// Field returns the heightfield of the map surface.
// The flat variant has no folds.
func (cfg *Config) Field() heightfield.Field {
	f := heightfield.Field{Width: cfg.Width, Depth: cfg.Depth}
	if cfg.Variant == Folded {
		f.Amplitude = cfg.Amplitude
		f.Frequency = cfg.Frequency
	}
	return f
}

// GridSegments returns the mesh resolution: a single cell suffices
// for the flat variant.
func (cfg *Config) GridSegments() int {
	if cfg.Variant == Flat {
		return 1
	}
	return cfg.Segments
}

// ResetDuration returns the duration of the camera reset animation.
func (cfg *Config) ResetDuration() time.Duration {
	return time.Duration(float64(cfg.ResetSeconds) * float64(time.Second))
}
