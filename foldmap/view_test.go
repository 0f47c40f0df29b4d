// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foldmap

import (
	"image"
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *View {
	t.Helper()
	cfg := NewConfig()
	cfg.Segments = 16
	cfg.TextureSize = 64
	b := core.NewBody()
	v := NewView(b).SetConfig(cfg)
	b.UpdateTree()
	require.NotNil(t, v.Map)
	return v
}

// markerPixel returns the pixel of the marker center in a view of viewSize.
func markerPixel(t *testing.T, m *Map, pl Placement) image.Point {
	t.Helper()
	px, ok := m.Camera.Project(pl.Marker, viewSize)
	require.True(t, ok)
	return image.Pt(int(math32.Round(px.X)), int(math32.Round(px.Y)))
}

func TestViewScreens(t *testing.T) {
	v := newTestView(t)
	detail := v.Child(1).AsTree()
	assert.Equal(t, "detail-screen", detail.Name)
	assert.Equal(t, 0, v.StackTop)
	assert.Equal(t, 0, detail.NumChildren())

	v.Tap(image.Pt(3, 3), viewSize)
	assert.False(t, v.Nav.ShowDetail())
	assert.Equal(t, 0, v.StackTop)

	for _, pl := range v.Map.Placements {
		v.Tap(markerPixel(t, v.Map, pl), viewSize)
		got, ok := v.Nav.Selected()
		require.True(t, ok, pl.Place.ID)
		assert.Equal(t, pl.Place, got)
		assert.Equal(t, 1, v.StackTop)
		require.Equal(t, 3, detail.NumChildren())
		assert.Equal(t, "back", detail.Child(0).AsTree().Name)
		assert.Equal(t, "title-"+pl.Place.ID, detail.Child(1).AsTree().Name)
		assert.Equal(t, pl.Place.Name, detail.Child(1).(*core.Text).Text)
		assert.Greater(t, detail.Child(2).AsTree().NumChildren(), 0)

		v.Nav.Back()
		assert.Equal(t, 0, v.StackTop)
		assert.Equal(t, 0, detail.NumChildren())
	}
}

func TestViewResetCamera(t *testing.T) {
	v := newTestView(t)
	n := len(v.Scene.Animations)

	v.Map.Scene.Camera.Orbit(30, 20)
	v.ResetCamera()
	require.Len(t, v.Scene.Animations, n+1)

	// a reset while one is running adds no animation
	v.ResetCamera()
	require.Len(t, v.Scene.Animations, n+1)

	a := v.Scene.Animations[n]
	for i := 0; !a.Done; i++ {
		require.Less(t, i, 1000)
		a.Dt = 16
		a.Func(a)
	}
	assert.Equal(t, Home(v.Config.Width), v.Map.Camera.Pose)
	assert.Equal(t, UpDir, v.Map.Scene.Camera.UpDir)

	v.ResetCamera()
	assert.Len(t, v.Scene.Animations, n+2)
}

func TestPlaceDetail(t *testing.T) {
	v := newTestView(t)
	pl := v.Map.Placements[0]
	p := &tree.Plan{}
	makePlaceDetail(p, pl.Place, func() {})
	require.Len(t, p.Children, 3)
	assert.Equal(t, "description-"+pl.Place.ID, p.Children[2].Name)
}
