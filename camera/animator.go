// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"time"

	"cogentcore.org/core/math32"
)

// Animator moves a camera back to its Home pose over a fixed Duration.
// An animation runs to completion once started: it cannot be
// cancelled, and starting again while it runs has no effect.
type Animator struct {

	// Home is the pose the animation ends at.
	Home Pose

	// Duration is the length of the animation.
	Duration time.Duration

	from    Pose
	elapsed time.Duration
	active  bool
}

// Active returns whether an animation is in flight.
func (an *Animator) Active() bool {
	return an.active
}

// Start begins an animation from the given pose. It returns false,
// doing nothing, if an animation is already in flight.
func (an *Animator) Start(from Pose) bool {
	if an.active {
		return false
	}
	an.from = from
	an.elapsed = 0
	an.active = true
	return true
}

// Progress returns the fraction of the animation completed, 0-1.
func (an *Animator) Progress() float32 {
	if !an.active || an.Duration <= 0 {
		return 1
	}
	return min(float32(an.elapsed)/float32(an.Duration), 1)
}

// Step advances the animation by dt and returns the pose at the new
// time, and whether the animation is done. The last step always
// returns exactly Home.
func (an *Animator) Step(dt time.Duration) (Pose, bool) {
	if !an.active {
		return an.Home, true
	}
	an.elapsed += max(dt, 0)
	if an.elapsed >= an.Duration {
		an.active = false
		return an.Home, true
	}
	return an.at(smoothstep(an.Progress())), false
}

// at returns the pose at eased fraction e between the start and Home.
func (an *Animator) at(e float32) Pose {
	q := an.from.Quat
	q.Slerp(an.Home.Quat, e)
	return Pose{Pos: an.from.Pos.Lerp(an.Home.Pos, e), Quat: q}
}

func smoothstep(t float32) float32 {
	t = math32.Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}
