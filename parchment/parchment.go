// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parchment generates the procedural paper texture of the map
// by compositing noise, fold creases and an aged edge over a base tint.
package parchment

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"
)

// Options are the parameters of a generated texture.
type Options struct {

	// Width and Height are the image size in pixels.
	Width, Height int

	// Base is the paper tint.
	Base color.RGBA

	// Grain is the opacity of the paper grain noise, 0-1.
	// Zero disables the grain.
	Grain float64

	// GrainBlur is the Gaussian blur radius applied to the grain, in pixels.
	GrainBlur float64

	// Creases are the horizontal positions of the vertical fold creases,
	// normalized to 0-1 across the width.
	Creases []float64

	// CreaseWidth is the width of a crease, normalized to the image width.
	CreaseWidth float64

	// CreaseDepth is how much a crease darkens the paper at its center, 0-1.
	CreaseDepth float64

	// Vignette is how much the paper darkens toward its edges, 0-1.
	Vignette float64

	// Brightness is a final brightness change in the -1 to 1 range.
	Brightness float64
}

// Defaults returns the options for an aged parchment sheet.
func Defaults() Options {
	return Options{
		Width:       512,
		Height:      384,
		Base:        color.RGBA{236, 220, 184, 255},
		Grain:       0.35,
		GrainBlur:   1.2,
		CreaseWidth: 0.025,
		CreaseDepth: 0.28,
		Vignette:    0.3,
	}
}

// Plain returns the options for an untextured sheet of the given tint.
func Plain(base color.RGBA) Options {
	return Options{Width: 64, Height: 64, Base: base}
}

// Generate renders the texture described by the options.
func Generate(o Options) *image.RGBA {
	w, h := max(o.Width, 1), max(o.Height, 1)
	bounds := image.Rect(0, 0, w, h)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(o.Base), image.Point{}, draw.Src)

	if o.Grain > 0 {
		grain := noise.Generate(w, h, &noise.Options{Monochrome: true, NoiseFn: noise.Gaussian})
		if o.GrainBlur > 0 {
			grain = blur.Gaussian(grain, o.GrainBlur)
		}
		white := image.NewRGBA(bounds)
		draw.Draw(white, bounds, image.White, image.Point{}, draw.Src)
		grain = blend.Opacity(white, grain, math.Min(o.Grain, 1))
		img = blend.Multiply(img, grain)
	}
	if len(o.Creases) > 0 || o.Vignette > 0 {
		img = blend.Multiply(img, shading(o, w, h))
	}
	if o.Brightness != 0 {
		img = adjust.Brightness(img, o.Brightness)
	}
	return img
}

// shading returns the gray multiplier image for the creases and vignette.
func shading(o Options, w, h int) *image.Gray {
	sh := image.NewGray(image.Rect(0, 0, w, h))
	cw := math.Max(o.CreaseWidth, 1e-3)
	col := make([]float64, w)
	for x := range w {
		u := (float64(x) + 0.5) / float64(w)
		s := 1.0
		for _, c := range o.Creases {
			d := (u - c) / cw
			s *= 1 - o.CreaseDepth*math.Exp(-d*d)
		}
		col[x] = s
	}
	for y := range h {
		v := (float64(y) + 0.5) / float64(h)
		for x := range w {
			u := (float64(x) + 0.5) / float64(w)
			s := col[x]
			if o.Vignette > 0 {
				// distance from the center, 0 at the center and 1 at the corners
				dx, dy := 2*u-1, 2*v-1
				r := math.Min(math.Sqrt(dx*dx+dy*dy)/math.Sqrt2, 1)
				s *= 1 - o.Vignette*r*r*r
			}
			sh.SetGray(x, y, color.Gray{Y: uint8(math.Round(255 * math.Max(s, 0)))})
		}
	}
	return sh
}
