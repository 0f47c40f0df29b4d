// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foldmap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, "Folded Map", cfg.Title)
	assert.Equal(t, Folded, cfg.Variant)
	assert.Equal(t, float32(8), cfg.Width)
	assert.Equal(t, float32(6), cfg.Depth)
	assert.Equal(t, 96, cfg.Segments)
	assert.Equal(t, 800*time.Millisecond, cfg.ResetDuration())

	f := cfg.Field()
	assert.Equal(t, float32(0.35), f.Amplitude)
	assert.Equal(t, float32(3), f.Frequency)
	assert.Equal(t, 96, cfg.GridSegments())
}

func TestFlatConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Variant = Flat
	f := cfg.Field()
	assert.Zero(t, f.Amplitude)
	assert.Zero(t, f.Height(1.3))
	assert.Equal(t, 1, cfg.GridSegments())
}

func TestOpenConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "foldmap.toml")
	data := `Variant = "flat"
Width = 10.0
Segments = 2000
ResetSeconds = 1.5
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, Flat, cfg.Variant)
	assert.Equal(t, float32(10), cfg.Width)
	assert.Equal(t, float32(6), cfg.Depth)
	assert.Equal(t, 512, cfg.Segments)
	assert.Equal(t, 1500*time.Millisecond, cfg.ResetDuration())
}

func TestOpenConfigMissing(t *testing.T) {
	cfg, err := OpenConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, NewConfig(), cfg)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Variant: "crumpled", Width: -1, Segments: 0, TextureSize: 1, ResetSeconds: -2}
	cfg.Validate()
	assert.Equal(t, Folded, cfg.Variant)
	assert.Equal(t, float32(8), cfg.Width)
	assert.Equal(t, float32(6), cfg.Depth)
	assert.Equal(t, 1, cfg.Segments)
	assert.Equal(t, 16, cfg.TextureSize)
	assert.Equal(t, float32(0.16), cfg.MarkerRadius)
	assert.Zero(t, cfg.ResetDuration())
}
