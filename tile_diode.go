// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "github.com/kelindar/stackline/internal/surface"

// Diode forwards a signal exactly one way, rejecting anything arriving
// from the direction it faces (spec.md §4.2).
type Diode struct {
	Direction Direction `json:"direction"`
}

// NewDiode creates a diode facing d.
func NewDiode(d Direction) *Diode {
	return &Diode{Direction: d}
}

func (d *Diode) sealed() {}

// AcceptsSignal rejects a signal whose reverse direction is the one the
// diode faces — i.e. a signal coming from the direction it looks towards.
func (d *Diode) AcceptsSignal(direction Direction) bool {
	return direction.Opposite() != d.Direction
}

// Update forwards the incoming signal, if any, in the diode's direction.
func (d *Diode) Update(ctx *UpdateContext) {
	if signal := ctx.TakeSignal(); signal != nil && signal.Direction().Opposite() != d.Direction {
		if pos, ok := ctx.Offset(d.Direction.Offset()); ok {
			ctx.Send(pos, d.Direction, *signal)
		}
	}

	if ctx.State() != Idle {
		ctx.NextState()
	}
}

// Draw renders an arrow glyph pointing the way the diode faces.
func (d *Diode) Draw(x, y int, state State, surf *surface.TextSurface) {
	var ch rune
	switch d.Direction {
	case Up:
		ch = '^'
	case Down:
		ch = 'v'
	case Left:
		ch = '<'
	default:
		ch = '>'
	}
	surf.Set(x, y, surface.Char{Rune: ch, FG: surface.StateColor(uint8(state))})
}
