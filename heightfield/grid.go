// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"cogentcore.org/core/math32"
)

// Grid is the triangulated vertex data of a [Field].
// Vertices are stored row by row along z, with Segments+1 vertices
// per row along x.
type Grid struct {
	Segments int

	// Vertex has 3 values per vertex.
	Vertex math32.ArrayF32

	// Normal has 3 values per vertex.
	Normal math32.ArrayF32

	// TexCoord has 2 values per vertex, in the 0-1 range.
	TexCoord math32.ArrayF32

	// Index has 3 values per triangle.
	Index math32.ArrayU32
}

// GridSize returns the number of vertices and indexes of a grid with
// the given number of segments per side. Segments below 1 are treated as 1.
func GridSize(segments int) (numVertex, numIndex int) {
	segments = max(segments, 1)
	n := segments + 1
	return n * n, 6 * segments * segments
}

// NumVertex returns the number of vertices.
func (g *Grid) NumVertex() int {
	return len(g.Vertex) / 3
}

// NumTriangles returns the number of triangles.
func (g *Grid) NumTriangles() int {
	return len(g.Index) / 3
}

// Vertex3 returns vertex i as a vector.
func (g *Grid) Vertex3(i int) math32.Vector3 {
	return math32.Vec3(g.Vertex[3*i], g.Vertex[3*i+1], g.Vertex[3*i+2])
}

// Grid returns a new grid with the given number of segments on each side.
func (f Field) Grid(segments int) *Grid {
	segments = max(segments, 1)
	nv, ni := GridSize(segments)
	g := &Grid{
		Segments: segments,
		Vertex:   make(math32.ArrayF32, 3*nv),
		Normal:   make(math32.ArrayF32, 3*nv),
		TexCoord: make(math32.ArrayF32, 2*nv),
		Index:    make(math32.ArrayU32, ni),
	}
	f.fill(segments, g.Vertex, g.Normal, g.TexCoord, g.Index)
	return g
}

// fill writes grid data into slices sized by [GridSize].
func (f Field) fill(segments int, vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	n := segments + 1
	seg := float32(segments)
	hw := 0.5 * f.Width
	hd := 0.5 * f.Depth
	for r := 0; r < n; r++ {
		v := float32(r) / seg
		z := -hd + v*f.Depth
		for c := 0; c < n; c++ {
			u := float32(c) / seg
			x := -hw + u*f.Width
			i := r*n + c
			nrm := f.Normal(x)
			vertex[3*i] = x
			vertex[3*i+1] = f.Height(x)
			vertex[3*i+2] = z
			normal[3*i] = nrm.X
			normal[3*i+1] = nrm.Y
			normal[3*i+2] = nrm.Z
			texcoord[2*i] = u
			texcoord[2*i+1] = v
		}
	}
	ii := 0
	for r := 0; r < segments; r++ {
		for c := 0; c < segments; c++ {
			i0 := uint32(r*n + c)
			i1 := i0 + 1
			i2 := i0 + uint32(n)
			i3 := i2 + 1
			// counter-clockwise seen from +Y
			index[ii] = i0
			index[ii+1] = i2
			index[ii+2] = i1
			index[ii+3] = i1
			index[ii+4] = i2
			index[ii+5] = i3
			ii += 6
		}
	}
}
