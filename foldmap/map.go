// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package foldmap builds the interactive folded map scene and the
// screens that present it: markers for each place that can be tapped
// to open a detail screen, and an animated camera reset.
package foldmap

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/text/text"
	"cogentcore.org/core/xyz"
	"cogentcore.org/foldmap/camera"
	"cogentcore.org/foldmap/heightfield"
	"cogentcore.org/foldmap/parchment"
	"cogentcore.org/foldmap/pick"
	"cogentcore.org/foldmap/places"
)

// Names of the scene nodes and resources.
const (
	MapName     = "map"
	MarkersName = "markers"
	LabelsName  = "labels"
	MarkerMesh  = "marker"
	TextureName = "parchment"
)

// FOV is the vertical field of view of the camera, in degrees.
const FOV = 30

// UpDir is the up direction the scene navigation orbits and pans around.
var UpDir = math32.Vec3(0, 1, 0)

// markerColors are cycled through for the marker solids.
var markerColors = []color.RGBA{
	{178, 34, 34, 255},
	{34, 102, 170, 255},
	{46, 139, 87, 255},
	{204, 119, 34, 255},
}

// Map is the folded map scene. All methods must be called on the
// UI event loop.
type Map struct {

	// Config has the settings the map was built with.
	Config *Config

	// Scene is the xyz scene the map is built in.
	Scene *xyz.Scene

	// Field is the map surface.
	Field heightfield.Field

	// Camera is the current view, kept in sync with the scene camera.
	Camera camera.Camera

	// Target is the point the home camera looks at.
	Target math32.Vector3

	// Reset animates the camera back to its home pose.
	Reset camera.Animator

	// Placements has where each place is shown.
	Placements []Placement

	// Markers has one solid per place, named with the place name.
	Markers []*xyz.Solid

	// Labels has one text label per place.
	Labels []*xyz.Text2D
}

// Home returns the home pose of the camera for a map of the given
// width, looking at the center of the map from above and in front.
func Home(width float32) camera.Pose {
	return camera.LookFrom(math32.Vec3(0, 0.875*width, width), math32.Vector3{})
}

// Build constructs the map in the given scene and sets the camera to
// its home pose.
func Build(sc *xyz.Scene, cfg *Config) *Map {
	m := &Map{Config: cfg, Scene: sc, Field: cfg.Field()}
	home := Home(cfg.Width)
	m.Camera = camera.Camera{Pose: home, FOV: FOV}
	m.Reset = camera.Animator{Home: home, Duration: cfg.ResetDuration()}
	m.Placements = Layout(m.Field, cfg.MarkerRadius)

	sc.Background = colors.Uniform(color.RGBA{214, 226, 232, 255})
	xyz.NewAmbient(sc, "ambient", 0.35, xyz.DirectSun)
	sun := xyz.NewDirectional(sc, "sun", 1, xyz.DirectSun)
	sun.Pos.Set(-2, 4, 3)

	m.buildSurface()
	m.buildMarkers()

	sc.Camera.LookAt(m.Target, UpDir)
	m.PushCamera()
	sc.SaveCamera("default")
	slog.Debug("foldmap: built scene", "variant", cfg.Variant, "places", len(m.Placements))
	return m
}

func (m *Map) buildSurface() {
	cfg := m.Config
	ms := heightfield.NewMesh(m.Scene, MapName, m.Field, cfg.GridSegments())

	var img *image.RGBA
	if cfg.Variant == Flat {
		img = parchment.Generate(parchment.Plain(color.RGBA{232, 224, 204, 255}))
	} else {
		o := parchment.Defaults()
		o.Width = cfg.TextureSize
		o.Height = int(float32(cfg.TextureSize) * cfg.Depth / cfg.Width)
		for _, x := range m.Field.Extrema() {
			o.Creases = append(o.Creases, float64(m.Field.Normalized(x)))
		}
		img = parchment.Generate(o)
	}
	tx := &xyz.TextureBase{Name: TextureName, RGBA: img}
	m.Scene.SetTexture(tx)

	sld := xyz.NewSolid(m.Scene)
	sld.SetName(MapName)
	sld.SetMesh(ms).SetTexture(tx).SetShiny(8).SetReflective(0.2)
}

func (m *Map) buildMarkers() {
	sc := m.Scene
	sphere := xyz.NewSphere(sc, MarkerMesh, m.Config.MarkerRadius, 24)

	mgp := xyz.NewGroup(sc)
	mgp.SetName(MarkersName)
	lgp := xyz.NewGroup(sc)
	lgp.SetName(LabelsName)

	for i, pl := range m.Placements {
		mk := xyz.NewSolid(mgp)
		mk.SetName(pl.Place.Name)
		mk.SetMesh(sphere).SetColor(markerColors[i%len(markerColors)]).SetShiny(30)
		mk.Pose.Pos = pl.Marker
		m.Markers = append(m.Markers, mk)

		lb := xyz.NewText2D(lgp)
		lb.SetName("label-" + pl.Place.ID)
		lb.SetText(pl.Place.Name)
		lb.Styles.Text.Align = text.Center
		lb.Styles.Text.AlignV = text.Center
		lb.Styles.Background = colors.Uniform(color.RGBA{255, 250, 236, 255})
		lb.Styles.Padding.Set(units.Dp(4))
		lb.Pose.Scale.SetScalar(0.25)
		lb.Pose.Pos = pl.Label
		m.Labels = append(m.Labels, lb)
	}
}

// Targets returns the pick targets of the markers, named with the
// marker node names.
func (m *Map) Targets() []pick.Sphere {
	ts := make([]pick.Sphere, len(m.Markers))
	for i, mk := range m.Markers {
		ts[i] = pick.Sphere{Name: mk.Name, Center: mk.Pose.Pos, Radius: m.Config.MarkerRadius}
	}
	return ts
}

// surface is the map surface as a pick target.
type surface struct {
	heightfield.Field
}

func (s surface) PickName() string { return MapName }

// Hit returns the nearest scene node under the given pixel position,
// in a view of the given size.
func (m *Map) Hit(px image.Point, size image.Point) (pick.Hit, bool) {
	ray := m.Camera.Ray(math32.FromPoint(px), size)
	return pick.Nearest(ray, m.Targets(), surface{m.Field})
}

// Tap returns the place whose marker is the nearest node under the
// given pixel position, and false if there is no such place.
func (m *Map) Tap(px image.Point, size image.Point) (places.Place, bool) {
	hit, ok := m.Hit(px, size)
	if !ok {
		return places.Place{}, false
	}
	return places.ByName(hit.Name)
}

// ResetCamera starts the animation back to the home pose. It returns
// false if an animation is already running.
func (m *Map) ResetCamera() bool {
	m.PullCamera()
	return m.Reset.Start(m.Camera.Pose)
}

// Step advances the camera reset animation by dt, updating the scene,
// and returns whether the animation is done.
func (m *Map) Step(dt time.Duration) bool {
	pose, done := m.Reset.Step(dt)
	m.Camera.Pose = pose
	m.PushCamera()
	return done
}

// PullCamera updates [Map.Camera] from the scene camera, which the
// scene navigation may have moved.
func (m *Map) PullCamera() {
	m.Camera.Pos = m.Scene.Camera.Pose.Pos
	m.Camera.Quat = m.Scene.Camera.Pose.Quat
	m.Billboard()
}

// PushCamera sets the scene camera from [Map.Camera], with the
// navigation up direction reset to [UpDir].
func (m *Map) PushCamera() {
	sc := m.Scene
	sc.Camera.Pose.Pos = m.Camera.Pos
	sc.Camera.Pose.Quat = m.Camera.Quat
	sc.Camera.FOV = m.Camera.FOV
	sc.Camera.Target = m.Target
	// Orbit rotates UpDir, so it is part of the home state
	sc.Camera.UpDir = UpDir
	m.Billboard()
	sc.SetNeedsUpdate()
}

// Billboard turns all labels to face the camera.
func (m *Map) Billboard() {
	for _, lb := range m.Labels {
		lb.Pose.Quat = m.Camera.Quat
	}
}
