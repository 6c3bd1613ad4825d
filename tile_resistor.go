// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"

	"github.com/kelindar/stackline/internal/surface"
)

// Resistor holds a signal for one extra tick before forwarding it in a
// fixed direction, giving a one-tick propagation delay (spec.md §4.2).
//
// Its update rule is two-phase: first emit any signal latched on a
// previous tick, then, if a fresh signal arrived this tick, latch it and
// mark the cell Active so it is revisited next tick even without a new
// incoming signal.
type Resistor struct {
	Direction Direction `json:"direction"`
	stored    *Signal
}

// NewResistor creates a resistor facing d.
func NewResistor(d Direction) *Resistor {
	return &Resistor{Direction: d}
}

func (r *Resistor) sealed() {}

// AcceptsSignal rejects a signal coming from the direction it faces, like
// a diode.
func (r *Resistor) AcceptsSignal(direction Direction) bool {
	return direction.Opposite() != r.Direction
}

// Update emits any previously latched signal, then latches a fresh
// incoming signal if one arrived this tick.
func (r *Resistor) Update(ctx *UpdateContext) {
	if r.stored != nil {
		if pos, ok := ctx.Offset(r.Direction.Offset()); ok {
			ctx.Send(pos, r.Direction, *r.stored)
		}
		r.stored = nil
	}

	if incoming := ctx.TakeSignal(); incoming != nil {
		r.stored = incoming
		ctx.SetState(Active)
	} else if ctx.State() != Idle {
		ctx.NextState()
	}
}

// Draw renders a resistor as '=' (lit when it is holding a signal).
func (r *Resistor) Draw(x, y int, state State, surf *surface.TextSurface) {
	ch := '='
	if r.stored != nil {
		ch = '#'
	}
	surf.Set(x, y, surface.Char{Rune: ch, FG: surface.StateColor(uint8(state))})
}

// resistorJSON is the wire shape of a Resistor, including the latched
// signal so persistence is lossless (spec.md §6).
type resistorJSON struct {
	Direction Direction `json:"direction"`
	Stored    *Signal   `json:"stored,omitempty"`
}

// MarshalJSON encodes the resistor, including any latched signal.
func (r *Resistor) MarshalJSON() ([]byte, error) {
	return json.Marshal(resistorJSON{Direction: r.Direction, Stored: r.stored})
}

// UnmarshalJSON decodes a resistor previously written by MarshalJSON.
func (r *Resistor) UnmarshalJSON(data []byte) error {
	var raw resistorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Direction = raw.Direction
	r.stored = raw.Stored
	return nil
}
