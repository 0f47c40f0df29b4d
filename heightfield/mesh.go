// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"cogentcore.org/core/gpu/shape"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Mesh is an [xyz.Mesh] rendering a [Field] as a triangulated grid.
type Mesh struct {
	xyz.MeshBase

	// Field is the heightfield the mesh is generated from.
	Field Field

	// Segments is the number of grid cells along each side.
	Segments int
}

// NewMesh adds a new heightfield mesh with the given name,
// field and number of segments per side to the given scene.
func NewMesh(sc *xyz.Scene, name string, field Field, segments int) *Mesh {
	ms := &Mesh{Field: field, Segments: max(segments, 1)}
	ms.Name = name
	ms.MeshSize()
	sc.SetMesh(ms)
	return ms
}

func (ms *Mesh) MeshSize() (numVertex, numIndex int, hasColor bool) {
	ms.NumVertex, ms.NumIndex = GridSize(ms.Segments)
	ms.HasColor = false
	return ms.NumVertex, ms.NumIndex, ms.HasColor
}

func (ms *Mesh) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	ms.Field.fill(max(ms.Segments, 1), vertex, normal, texcoord, index)
	bb := shape.BBoxFromVtxs(vertex, 0, ms.NumVertex)
	ms.BBox.SetBounds(bb.Min, bb.Max)
}
