// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foldmap

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/foldmap/heightfield"
	"cogentcore.org/foldmap/places"
)

// LabelHeight is how far a label floats above the top of its marker.
const LabelHeight = 0.35

// sites has the position of each place by ID, as fractions of the map
// width (x) and depth (z), with 0 at the center.
var sites = map[string]math32.Vector2{
	"harbor":     {X: -0.33, Y: 0.28},
	"mill":       {X: 0.2, Y: -0.22},
	"lighthouse": {X: -0.12, Y: -0.33},
	"tower":      {X: 0.36, Y: 0.18},
}

// Placement is where a place is shown on the map.
type Placement struct {
	Place places.Place

	// Marker is the center of the marker, resting on the surface.
	Marker math32.Vector3

	// Label is the position of the label above the marker.
	Label math32.Vector3
}

// Layout returns the placements of all places on the given surface,
// for markers of the given radius.
func Layout(f heightfield.Field, radius float32) []Placement {
	ps := places.All()
	pls := make([]Placement, len(ps))
	for i, p := range ps {
		s := sites[p.ID]
		x := s.X * f.Width
		z := s.Y * f.Depth
		mk := math32.Vec3(x, f.Height(x)+radius, z)
		pls[i] = Placement{
			Place:  p,
			Marker: mk,
			Label:  mk.Add(math32.Vec3(0, radius+LabelHeight, 0)),
		}
	}
	return pls
}
