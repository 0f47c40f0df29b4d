// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"cogentcore.org/core/math32"
)

const (
	// marchSteps is the number of samples along a ray at the minimum
	// step size, which also bounds the number of samples taken.
	marchSteps = 4096

	// bisectSteps is the number of refinement steps once the
	// surface has been bracketed.
	bisectSteps = 24
)

// above returns the signed vertical distance of p above the surface.
func (f Field) above(p math32.Vector3) float32 {
	return p.Y - f.Height(p.X)
}

// Intersect returns the first point at which the ray meets the surface
// within the map bounds. The ray direction does not need to be normalized.
//
// Above the surface the ray advances by the distance above it divided by
// the fastest rate at which that distance can shrink, so no crossing is
// skipped. Only a crest thinner than the minimum step can be missed.
func (f Field) Intersect(ray math32.Ray) (math32.Vector3, bool) {
	dir := ray.Dir.Normal()
	if dir == (math32.Vector3{}) {
		return math32.Vector3{}, false
	}
	at := func(t float32) math32.Vector3 {
		return ray.Origin.Add(dir.MulScalar(t))
	}
	// far enough to cross the whole map from wherever the ray starts
	far := ray.Origin.Length() + f.Width + f.Depth + 2*math32.Abs(f.Amplitude)
	minStep := far / marchSteps
	rate := math32.Abs(dir.Y) + math32.Abs(dir.X)*f.MaxSlope()

	t0 := float32(0)
	d0 := f.above(at(t0))
	for range marchSteps {
		if t0 >= far {
			break
		}
		step := minStep
		if d0 > 0 && rate > 0 {
			step = max(d0/rate, minStep)
		}
		t1 := t0 + step
		d1 := f.above(at(t1))
		if d0 > 0 && d1 <= 0 {
			lo, hi := t0, t1
			for range bisectSteps {
				mid := 0.5 * (lo + hi)
				if f.above(at(mid)) > 0 {
					lo = mid
				} else {
					hi = mid
				}
			}
			p := at(hi)
			if f.Contains(p.X, p.Z) {
				return p, true
			}
		}
		t0, d0 = t1, d1
	}
	return math32.Vector3{}, false
}
