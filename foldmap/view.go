// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foldmap

//go:generate core generate

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/htmlcore"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/foldmap/places"
)

// View is a widget with two screens: the 3D map, where tapping a
// marker selects its place, and the detail screen of the selected
// place. Which one is visible depends only on [View.Nav].
type View struct {
	core.Frame

	// Config has the map settings. It must be set before the view is
	// first shown.
	Config *Config

	// Map is the 3D map, built when the view is first shown.
	Map *Map `set:"-" display:"-"`

	// Nav is the selection state.
	Nav Navigator `set:"-" display:"-"`

	scene *xyzcore.Scene
}

func (v *View) Init() {
	v.Frame.Init()
	v.Config = NewConfig()
	v.Nav.OnChange = v.navChanged
	v.Styler(func(s *styles.Style) {
		s.Display = styles.Stacked
		s.Grow.Set(1, 1)
	})
	v.Updater(func() {
		v.StackTop = 0
		if v.Nav.ShowDetail() {
			v.StackTop = 1
		}
	})

	tree.AddChildAt(v, "map-screen", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
			s.Grow.Set(1, 1)
		})
		tree.AddChildAt(w, "scene", func(w *xyzcore.Scene) {
			v.initScene(w)
		})
		tree.AddChildAt(w, "bar", func(w *core.Frame) {
			w.Styler(func(s *styles.Style) {
				s.Justify.Content = styles.Center
				s.Grow.Set(1, 0)
			})
			tree.AddChildAt(w, "reset", func(w *core.Button) {
				w.SetText("Reset view").SetIcon(icons.Update).
					SetTooltip("Return the camera to the starting view")
				w.OnClick(func(e events.Event) {
					v.ResetCamera()
				})
			})
		})
	})
	tree.AddChildAt(v, "detail-screen", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
			s.Grow.Set(1, 1)
			s.Overflow.Y = styles.OverflowAuto
		})
		w.Maker(func(p *tree.Plan) {
			if pl, ok := v.Nav.Selected(); ok {
				makePlaceDetail(p, pl, v.Nav.Back)
			}
		})
	})
}

func (v *View) initScene(sw *xyzcore.Scene) {
	v.scene = sw
	v.Map = Build(sw.XYZ, v.Config)
	sw.OnClick(func(e events.Event) {
		bb := sw.Geom.ContentBBox
		v.Tap(e.Pos().Sub(bb.Min), bb.Size())
	})
	// the default scene navigation moves the camera on these events
	pull := func(e events.Event) {
		v.Map.PullCamera()
	}
	sw.OnFinal(events.SlideMove, pull)
	sw.OnFinal(events.Scroll, pull)
	sw.OnFinal(events.KeyChord, pull)
}

// Tap selects the place whose marker is under the given pixel position
// in a map view of the given size. Nothing happens if there is none.
func (v *View) Tap(px, size image.Point) {
	if v.Map == nil {
		return
	}
	v.Map.PullCamera()
	p, ok := v.Map.Tap(px, size)
	if !ok {
		return
	}
	slog.Info("foldmap: selected place", "id", p.ID)
	v.Nav.Select(p)
}

// ResetCamera animates the camera back to the home view. It does
// nothing while a reset is already running.
func (v *View) ResetCamera() {
	if v.Map == nil || !v.Map.ResetCamera() {
		return
	}
	sw := v.scene
	sw.Animate(func(a *core.Animation) {
		a.Done = v.Map.Step(time.Duration(a.Dt * float32(time.Millisecond)))
		sw.NeedsRender()
	})
}

func (v *View) navChanged() {
	v.Update()
}

// makePlaceDetail adds the widgets describing the place to the plan,
// with a button that calls back. The title and description are named
// by place so that they are remade when the selection changes.
func makePlaceDetail(p *tree.Plan, pl places.Place, back func()) {
	tree.AddAt(p, "back", func(w *core.Button) {
		w.SetText("Back").SetIcon(icons.ArrowBack).SetType(core.ButtonText)
		w.OnClick(func(e events.Event) {
			back()
		})
	})
	tree.AddAt(p, "title-"+pl.ID, func(w *core.Text) {
		w.SetType(core.TextHeadlineMedium).SetText(pl.Name)
	})
	tree.AddAt(p, "description-"+pl.ID, func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
			s.Grow.Set(1, 0)
		})
		errors.Log(htmlcore.ReadMDString(htmlcore.NewContext(), w, pl.Description))
	})
}
