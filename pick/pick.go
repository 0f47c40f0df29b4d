// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick finds the nearest named object hit by a ray.
package pick

import (
	"cmp"
	"slices"

	"cogentcore.org/core/math32"
)

// Sphere is a named spherical pick target.
type Sphere struct {
	Name   string
	Center math32.Vector3
	Radius float32
}

// Surface is a named pick target with its own intersection test,
// such as a heightfield.
type Surface interface {
	// PickName returns the name reported for hits on the surface.
	PickName() string

	// Intersect returns the first point at which the ray hits the surface.
	Intersect(ray math32.Ray) (math32.Vector3, bool)
}

// Hit is an intersection of a ray with a named target.
type Hit struct {
	Name string

	// Point is the world position of the intersection.
	Point math32.Vector3

	// Dist is the distance from the ray origin to Point.
	Dist float32
}

// All returns all hits of the ray on the given targets, sorted from
// nearest to furthest. Hits behind the ray origin are not included.
func All(ray math32.Ray, spheres []Sphere, surfaces ...Surface) []Hit {
	ray.Dir = ray.Dir.Normal()
	var hits []Hit
	add := func(name string, pt math32.Vector3) {
		d := pt.Sub(ray.Origin)
		if d.Dot(ray.Dir) < 0 {
			return
		}
		hits = append(hits, Hit{Name: name, Point: pt, Dist: d.Length()})
	}
	for _, sp := range spheres {
		pt, ok := ray.IntersectSphere(math32.Sphere{Center: sp.Center, Radius: sp.Radius})
		if ok {
			add(sp.Name, pt)
		}
	}
	for _, sf := range surfaces {
		pt, ok := sf.Intersect(ray)
		if ok {
			add(sf.PickName(), pt)
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.Dist, b.Dist)
	})
	return hits
}

// Nearest returns the nearest hit of the ray on the given targets,
// and false if nothing is hit.
func Nearest(ray math32.Ray, spheres []Sphere, surfaces ...Surface) (Hit, bool) {
	hits := All(ray, spheres, surfaces...)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
