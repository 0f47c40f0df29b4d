// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heightfield generates the folded map surface: a grid mesh
// whose vertical displacement is a sine function of the horizontal
// x position.
package heightfield

import (
	"cogentcore.org/core/math32"
)

// Field is a heightfield over a Width x Depth rectangle centered on the
// origin in the XZ plane. The height only depends on x:
//
//	Height(x) = Amplitude * sin(Frequency * nx * π),  nx = (x + Width/2) / Width
//
// so nx runs from 0 at the left edge to 1 at the right edge.
type Field struct {

	// Width is the size of the map along the X axis.
	Width float32

	// Depth is the size of the map along the Z axis.
	Depth float32

	// Amplitude is the maximum vertical displacement of the folds.
	// Zero gives a flat plane.
	Amplitude float32

	// Frequency is the number of half waves across the width.
	Frequency float32
}

// Normalized returns the normalized x coordinate nx, which is 0
// at the left edge of the map and 1 at the right edge.
func (f Field) Normalized(x float32) float32 {
	if f.Width == 0 {
		return 0
	}
	return (x + 0.5*f.Width) / f.Width
}

// Height returns the surface height at x.
func (f Field) Height(x float32) float32 {
	return f.Amplitude * math32.Sin(f.Frequency*f.Normalized(x)*math32.Pi)
}

// Slope returns the derivative of [Field.Height] with respect to x.
func (f Field) Slope(x float32) float32 {
	if f.Width == 0 {
		return 0
	}
	k := f.Frequency * math32.Pi
	return f.Amplitude * k * math32.Cos(k*f.Normalized(x)) / f.Width
}

// MaxSlope returns the largest absolute value of [Field.Slope].
func (f Field) MaxSlope() float32 {
	if f.Width == 0 {
		return 0
	}
	return math32.Abs(f.Amplitude * f.Frequency * math32.Pi / f.Width)
}

// Normal returns the unit surface normal at x.
func (f Field) Normal(x float32) math32.Vector3 {
	return math32.Vec3(-f.Slope(x), 1, 0).Normal()
}

// Contains returns whether the (x, z) position lies on the map.
func (f Field) Contains(x, z float32) bool {
	return math32.Abs(x) <= 0.5*f.Width && math32.Abs(z) <= 0.5*f.Depth
}

// Extrema returns the x positions of the ridges and valleys of the
// folds inside the map, in increasing order. These are where the
// creases of a folded sheet run.
func (f Field) Extrema() []float32 {
	if f.Frequency <= 0 {
		return nil
	}
	var xs []float32
	// sin(k*nx) has extrema at nx = (i + 0.5) / Frequency
	for i := 0; ; i++ {
		nx := (float32(i) + 0.5) / f.Frequency
		if nx > 1 {
			break
		}
		xs = append(xs, nx*f.Width-0.5*f.Width)
	}
	return xs
}
