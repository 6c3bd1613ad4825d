// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"runtime"
	"sync/atomic"

	"github.com/kelindar/stackline/internal/surface"
)

// FullTile is a cell envelope: it holds at most one tile body, at most one
// signal, and a State. Cloning a FullTile produces an empty-signal copy
// (spec.md §3/§4.3).
//
// Invariants:
//   - tile absent ⇒ signal absent
//   - accepts a signal ⇒ tile present ∧ state is Idle
type FullTile struct {
	cell    AnyTile
	signal  *Signal
	state   State
	updated bool // per-tick scratch flag, private to the scheduler

	lock int32 // per-cell borrow guard, see pane.go
}

// NewFullTile wraps an (possibly absent) tile in a fresh, empty cell.
func NewFullTile(cell AnyTile) *FullTile {
	return &FullTile{cell: cell}
}

// Clone returns a copy of the tile with its signal slot cleared, keeping
// the tile body and state (spec.md §3 invariant on cloning).
func (f *FullTile) Clone() *FullTile {
	return &FullTile{cell: f.cell, state: f.state}
}

// AcceptsSignal reports whether this cell, in its current state, accepts
// a signal arriving from direction (invariant I2).
func (f *FullTile) AcceptsSignal(direction Direction) bool {
	t := f.cell.Tile()
	if t == nil {
		return false
	}
	return f.state.AcceptsSignal() && t.AcceptsSignal(direction)
}

// SetSignal installs (or clears) the cell's signal. It fails (returns
// false) if the cell is empty.
func (f *FullTile) SetSignal(signal *Signal) bool {
	if f.cell.Tile() == nil {
		return false
	}
	f.signal = signal
	return true
}

// Get returns the wrapped tile, or nil if the cell is empty.
func (f *FullTile) Get() Tile {
	return f.cell.Tile()
}

// GetAny returns the wrapped AnyTile envelope.
func (f *FullTile) GetAny() AnyTile {
	return f.cell
}

// Signal returns the cell's current signal, or nil if it has none.
func (f *FullTile) Signal() *Signal {
	return f.signal
}

// TakeSignal removes and returns the cell's signal, leaving it empty.
func (f *FullTile) TakeSignal() *Signal {
	s := f.signal
	f.signal = nil
	return s
}

// State returns the cell's current state.
func (f *FullTile) State() State {
	return f.state
}

// SetState sets the cell's state. It is a no-op on an empty cell.
func (f *FullTile) SetState(state State) {
	if f.cell.Tile() != nil {
		f.state = state
	}
}

// NextState advances the cell's state via State.Next.
func (f *FullTile) NextState() {
	f.state = f.state.Next()
}

// IsEmpty reports whether the cell holds no tile.
func (f *FullTile) IsEmpty() bool {
	return f.cell.Tile() == nil
}

// Draw renders the cell onto surf at (x, y), delegating to the wrapped
// tile if it implements Drawer. Empty cells are left untouched.
func (f *FullTile) Draw(x, y int, surf *surface.TextSurface) {
	t := f.cell.Tile()
	if t == nil {
		return
	}
	if d, ok := t.(Drawer); ok {
		d.Draw(x, y, f.state, surf)
	}
}

// Lock acquires the cell's spin lock, guarding the exclusive-mutable /
// shared-read borrow discipline a Pane enforces between the tile
// currently updating and any neighbour it peeks at (spec.md §4.4).
// Named Lock so `go vet -copylocks` flags any accidental copy of a
// FullTile, grounded on the teacher's page.Lock in grid.go.
func (f *FullTile) Lock() {
	for !atomic.CompareAndSwapInt32(&f.lock, 0, 1) {
		runtime.Gosched()
	}
}

// Unlock releases the cell's spin lock.
func (f *FullTile) Unlock() {
	atomic.StoreInt32(&f.lock, 0)
}

// fullTileJSON is the wire shape of a FullTile.
type fullTileJSON struct {
	Tile   AnyTile `json:"tile"`
	Signal *Signal `json:"signal,omitempty"`
	State  State   `json:"state"`
}

// MarshalJSON encodes the cell for persistence.
func (f *FullTile) MarshalJSON() ([]byte, error) {
	return json.Marshal(fullTileJSON{Tile: f.cell, Signal: f.signal, State: f.state})
}

// UnmarshalJSON decodes a cell previously written by MarshalJSON.
func (f *FullTile) UnmarshalJSON(data []byte) error {
	var raw fullTileJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f.cell = raw.Tile
	f.signal = raw.Signal
	f.state = raw.State
	return nil
}
