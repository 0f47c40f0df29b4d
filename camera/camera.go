// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the viewing transform of the map: a pose,
// perspective projection of world points to pixels and back to pick
// rays, and the one-shot animation that returns the camera home.
package camera

import (
	"image"

	"cogentcore.org/core/math32"
)

// Near is the closest distance in front of the camera
// at which points are projected.
const Near = 0.01

// Pose is a camera position and orientation.
// With an identity rotation the camera looks down -Z with +Y up.
type Pose struct {
	Pos  math32.Vector3
	Quat math32.Quat
}

// LookFrom returns the pose at pos looking at target, with +Y up.
// The target must not be directly above or below pos.
func LookFrom(pos, target math32.Vector3) Pose {
	f := target.Sub(pos).Normal()
	yaw := math32.Atan2(-f.X, -f.Z)
	pitch := math32.Asin(math32.Clamp(f.Y, -1, 1))
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), yaw)
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), pitch))
	q.Normalize()
	return Pose{Pos: pos, Quat: q}
}

// Forward returns the unit viewing direction.
func (ps Pose) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(ps.Quat)
}

// Right returns the unit direction of the screen +X axis.
func (ps Pose) Right() math32.Vector3 {
	return math32.Vec3(1, 0, 0).MulQuat(ps.Quat)
}

// Up returns the unit direction of the screen +Y axis.
func (ps Pose) Up() math32.Vector3 {
	return math32.Vec3(0, 1, 0).MulQuat(ps.Quat)
}

// Camera is a perspective camera.
type Camera struct {
	Pose

	// FOV is the vertical field of view in degrees.
	FOV float32
}

// tanHalf returns the tangent of half the vertical field of view.
func (cm *Camera) tanHalf() float32 {
	return math32.Tan(0.5 * math32.DegToRad(cm.FOV))
}

func aspect(size image.Point) float32 {
	if size.Y == 0 {
		return 1
	}
	return float32(size.X) / float32(size.Y)
}

// Project returns the pixel position of the world point p in a view of
// the given size, with the origin at the upper left. It returns false if
// p is behind the camera.
func (cm *Camera) Project(p math32.Vector3, size image.Point) (math32.Vector2, bool) {
	d := p.Sub(cm.Pos)
	z := d.Dot(cm.Forward())
	if z < Near {
		return math32.Vector2{}, false
	}
	th := cm.tanHalf()
	nx := d.Dot(cm.Right()) / (z * th * aspect(size))
	ny := d.Dot(cm.Up()) / (z * th)
	px := 0.5 * (nx + 1) * float32(size.X)
	py := 0.5 * (1 - ny) * float32(size.Y)
	return math32.Vec2(px, py), true
}

// Ray returns the world space ray from the camera through the pixel
// position px in a view of the given size. It is the inverse of
// [Camera.Project].
func (cm *Camera) Ray(px math32.Vector2, size image.Point) math32.Ray {
	w, h := max(float32(size.X), 1), max(float32(size.Y), 1)
	nx := 2*px.X/w - 1
	ny := 1 - 2*px.Y/h
	th := cm.tanHalf()
	dir := cm.Forward().
		Add(cm.Right().MulScalar(nx * th * aspect(size))).
		Add(cm.Up().MulScalar(ny * th))
	return math32.Ray{Origin: cm.Pos, Dir: dir.Normal()}
}
