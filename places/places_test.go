// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	ps := All()
	assert.Len(t, ps, 4)
	assert.Equal(t, 4, Len())

	ids := map[string]bool{}
	names := map[string]bool{}
	for _, p := range ps {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.False(t, ids[p.ID], "duplicate id %q", p.ID)
		assert.False(t, names[p.Name], "duplicate name %q", p.Name)
		ids[p.ID] = true
		names[p.Name] = true
	}
}

func TestAllIsCopy(t *testing.T) {
	ps := All()
	ps[0].Name = "changed"
	assert.NotEqual(t, "changed", All()[0].Name)
}

func TestLookup(t *testing.T) {
	for _, p := range All() {
		got, ok := ByID(p.ID)
		assert.True(t, ok)
		assert.Equal(t, p, got)

		got, ok = ByName(p.Name)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ByID("nowhere")
	assert.False(t, ok)
	_, ok = ByName("")
	assert.False(t, ok)
}
