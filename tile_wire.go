// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "github.com/kelindar/stackline/internal/surface"

// Wire forwards a signal to every neighbouring direction in its
// orientation except the one the signal arrived from, fanning out copies
// as needed (spec.md §4.2).
type Wire struct {
	Orientation Orientation `json:"orientation"`
}

// NewWire creates a wire with the given orientation.
func NewWire(o Orientation) *Wire {
	return &Wire{Orientation: o}
}

func (w *Wire) sealed() {}

// AcceptsSignal accepts a signal from any direction in the wire's
// orientation.
func (w *Wire) AcceptsSignal(direction Direction) bool {
	return w.Orientation.Contains(direction)
}

// Update forwards the incoming signal, if any, to every accepting
// neighbour in the wire's orientation other than where it came from.
func (w *Wire) Update(ctx *UpdateContext) {
	if signal := ctx.TakeSignal(); signal != nil {
		incoming := signal.Direction().Opposite()
		for _, d := range w.Orientation.Directions() {
			if d == incoming {
				continue
			}
			pos, ok := ctx.Offset(d.Offset())
			if !ok {
				continue
			}
			if !ctx.AcceptsSignal(pos, d) {
				continue
			}
			ctx.ForceSend(pos, signal.CloneMove(d))
		}
	}

	if ctx.State() != Idle {
		ctx.NextState()
	}
}

// Draw renders '-', '|' or '+' depending on orientation.
func (w *Wire) Draw(x, y int, state State, surf *surface.TextSurface) {
	ch := '+'
	switch w.Orientation {
	case Horizontal:
		ch = '-'
	case Vertical:
		ch = '|'
	}
	surf.Set(x, y, surface.Char{Rune: ch, FG: surface.StateColor(uint8(state))})
}
