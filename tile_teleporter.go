// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "github.com/kelindar/stackline/internal/surface"

// Teleporter instantly relays any incoming signal to a fixed coordinate in
// a (possibly different) named pane, accepting from every direction.
// Delivery is tick-deferred: a signal handed off on tick N becomes visible
// at the destination on tick N+1, once World.Step collects and routes the
// outbound queue (spec.md §4.2, §4.6).
type Teleporter struct {
	Target PaneTarget `json:"target"`
}

// NewTeleporter creates a teleporter that relays to target.
func NewTeleporter(target PaneTarget) *Teleporter {
	return &Teleporter{Target: target}
}

func (t *Teleporter) sealed() {}

// AcceptsSignal accepts from any direction.
func (t *Teleporter) AcceptsSignal(Direction) bool {
	return true
}

// Update hands any incoming signal to the destination pane via the
// update context's outbound queue, then lets the cell's state cool down
// on its own over the following ticks.
func (t *Teleporter) Update(ctx *UpdateContext) {
	if signal := ctx.TakeSignal(); signal != nil {
		ctx.SendOutbound(t.Target, *signal)
	}

	if ctx.State() != Idle {
		ctx.NextState()
	}
}

// Draw renders a teleporter as 'P'.
func (t *Teleporter) Draw(x, y int, state State, surf *surface.TextSurface) {
	surf.Set(x, y, surface.Char{Rune: 'P', FG: surface.StateColor(uint8(state))})
}
