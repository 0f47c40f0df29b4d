// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package foldmap

import "cogentcore.org/foldmap/places"

// Navigator is the selection state that drives which screen is shown:
// the detail screen is shown exactly when a place is selected.
type Navigator struct {
	selected *places.Place

	// OnChange, if set, is called after the selection changes.
	OnChange func()
}

// Select selects the given place, showing its detail screen.
func (nv *Navigator) Select(p places.Place) {
	nv.selected = &p
	nv.changed()
}

// Back clears the selection, returning to the map screen.
func (nv *Navigator) Back() {
	if nv.selected == nil {
		return
	}
	nv.selected = nil
	nv.changed()
}

// Selected returns the selected place, if any.
func (nv *Navigator) Selected() (places.Place, bool) {
	if nv.selected == nil {
		return places.Place{}, false
	}
	return *nv.selected, true
}

// ShowDetail returns whether the detail screen is shown.
func (nv *Navigator) ShowDetail() bool {
	return nv.selected != nil
}

func (nv *Navigator) changed() {
	if nv.OnChange != nil {
		nv.OnChange()
	}
}
