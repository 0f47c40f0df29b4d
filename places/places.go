// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package places provides the fixed set of points of interest
// shown on the folded map.
package places

// Place is a named point of interest with a description.
// Places are immutable values.
type Place struct {

	// ID is the unique, stable identifier of the place.
	ID string

	// Name is the display name of the place. Marker nodes in the
	// scene are named with it, so it is also unique.
	Name string

	// Description is the Markdown text shown on the detail screen.
	Description string
}

func (p Place) String() string {
	return p.Name
}

var all = []Place{
	{
		ID:   "harbor",
		Name: "Saltmarsh Harbor",
		Description: `The old harbor sits where the river meets the sea.
Fishing boats still leave before dawn, and the **harbor master's bell**
has rung at every change of tide for three hundred years.

- Best visited at low tide
- The fish market opens at six`,
	},
	{
		ID:   "mill",
		Name: "Old Mill",
		Description: `A stone watermill on the eastern brook, restored in working order.
On the first Sunday of each month the wheel is engaged and the mill
grinds flour for the village bakery.`,
	},
	{
		ID:   "lighthouse",
		Name: "Cape Lighthouse",
		Description: `The lighthouse stands on the northern cape, visible for twenty miles
on a clear night. The climb is *142 steps*; the lamp room has been
automated since the last keeper retired.`,
	},
	{
		ID:   "tower",
		Name: "Watchtower",
		Description: `A ruined watchtower on the highest fold of the hills. Only the
lower two storeys remain, but the view over the valley reaches all
the way to the harbor.`,
	},
}

// All returns the places, in display order.
func All() []Place {
	ps := make([]Place, len(all))
	copy(ps, all)
	return ps
}

// Len returns the number of places.
func Len() int {
	return len(all)
}

// ByID returns the place with the given ID.
func ByID(id string) (Place, bool) {
	for _, p := range all {
		if p.ID == id {
			return p, true
		}
	}
	return Place{}, false
}

// ByName returns the place with the given name.
func ByName(name string) (Place, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Place{}, false
}
