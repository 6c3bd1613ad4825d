// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"fmt"

	"github.com/kelindar/stackline/internal/surface"
)

// Pane is a fixed-size grid of cells (FullTile), its own position in
// world space, and a roster of cells carrying a signal. Step runs one
// simulation tick; every other mutation is immediate (spec.md §4.3/§4.4).
//
// Grounded on pane.rs from the original implementation; the VecCell +
// borrow-checker-mediated exclusive/shared access that file uses becomes
// a flat slice guarded by each FullTile's own spin lock here, since Go's
// aliasing rules don't give us the same compile-time borrow guarantees.
type Pane struct {
	tiles  []FullTile
	width  int
	height int

	position Point

	signals [][2]int // roster of cells carrying a signal, rebuilt every Step
}

// NewPane creates an empty width x height pane. Both dimensions must be
// positive.
func NewPane(width, height int) (*Pane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("stackline: pane dimensions must be positive, got %dx%d", width, height)
	}

	tiles := make([]FullTile, width*height)
	return &Pane{tiles: tiles, width: width, height: height}, nil
}

// Width returns the pane's width in cells.
func (p *Pane) Width() int {
	return p.width
}

// Height returns the pane's height in cells.
func (p *Pane) Height() int {
	return p.height
}

// Position returns the pane's position in world space.
func (p *Pane) Position() Point {
	return p.position
}

// SetPosition sets the pane's position in world space, used for drawing
// and for computing cross-pane distances (spec.md §4.6).
func (p *Pane) SetPosition(pos Point) {
	p.position = pos
}

func (p *Pane) index(pos [2]int) int {
	return pos[1]*p.width + pos[0]
}

// inBounds reports whether pos lies within the pane.
func (p *Pane) inBounds(pos [2]int) bool {
	return pos[0] >= 0 && pos[0] < p.width && pos[1] >= 0 && pos[1] < p.height
}

// at returns a pointer to the cell at pos, without locking.
func (p *Pane) at(pos [2]int) (*FullTile, bool) {
	if !p.inBounds(pos) {
		return nil, false
	}
	return &p.tiles[p.index(pos)], true
}

// offset returns position+(dx, dy) if that lands inside the pane.
func (p *Pane) offset(position [2]int, dx, dy int) ([2]int, bool) {
	x, y := position[0]+dx, position[1]+dy
	pos := [2]int{x, y}
	if !p.inBounds(pos) {
		return [2]int{}, false
	}
	return pos, true
}

// Get returns the cell at pos, or false if pos is out of bounds. It waits
// for the cell's spin lock to be free, but releases the lock again before
// returning, so the caller's later reads of the cell are not guarded by it.
func (p *Pane) Get(pos [2]int) (*FullTile, bool) {
	tile, ok := p.at(pos)
	if !ok {
		return nil, false
	}
	tile.Lock()
	defer tile.Unlock()
	return tile, true
}

// GetState returns the state of the cell at pos, or false if pos is out
// of bounds.
func (p *Pane) GetState(pos [2]int) (State, bool) {
	tile, ok := p.Get(pos)
	if !ok {
		return 0, false
	}
	return tile.State(), true
}

// GetAs downcasts the tile at pos to T, e.g. GetAs[*Wire](pane, pos).
func GetAs[T Tile](p *Pane, pos [2]int) (T, bool) {
	var zero T
	tile, ok := p.Get(pos)
	if !ok {
		return zero, false
	}
	t, ok := tile.Get().(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// SetTile places tile at pos, discarding whatever was there — signal,
// state and all — and returns false if pos is out of bounds.
func (p *Pane) SetTile(pos [2]int, tile Tile) bool {
	cell, ok := p.at(pos)
	if !ok {
		return false
	}
	*cell = *NewFullTile(WrapTile(tile))
	return true
}

// SetSignal installs signal at pos, overriding any signal already there
// without checking AcceptsSignal, sets the cell Active, and adds it to
// the roster for the next Step. Returns false if pos is out of bounds or
// the cell is empty.
func (p *Pane) SetSignal(pos [2]int, signal Signal) bool {
	cell, ok := p.at(pos)
	if !ok {
		return false
	}
	signal.setPosition(pos)
	if !cell.SetSignal(&signal) {
		return false
	}
	cell.SetState(Active)
	p.signals = append(p.signals, pos)
	return true
}

// step runs one tile's update in isolation and applies its immediate
// (Keep'd) effects, leaving every deferred effect in commit.
func (p *Pane) step(pos [2]int, commit *UpdateCommit) {
	tile, ok := p.at(pos)
	if !ok {
		return
	}
	tile.Lock()
	ctx, ok := newUpdateContext(p, pos, commit)
	if !ok {
		tile.Unlock()
		return
	}

	t := tile.Get()
	tile.Unlock()
	if t == nil {
		return
	}
	t.Update(ctx)

	tile.Lock()
	commit.applyImmediate(tile)
	tile.Unlock()
}

// Step performs one simulation tick: every cell carrying a signal is
// updated first, then every remaining non-Idle cell, each tile updated at
// most once; finally every buffered effect is applied together. Returns
// the signals Teleporter/Sender tiles queued for other panes (which
// World.Step is responsible for routing, spec.md §4.4/§4.6) and the
// positions of every tile that updated this tick, for World.Step to feed
// to its Observers.
func (p *Pane) Step() (outbound []outboundEntry, updated [][2]int) {
	commit := newUpdateCommit()

	roster := p.signals
	p.signals = nil
	for _, pos := range roster {
		p.step(pos, commit)
	}

	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			pos := [2]int{x, y}
			if state, ok := p.GetState(pos); ok && state != Idle {
				p.step(pos, commit)
			}
		}
	}

	updated = append(updated, commit.updates...)
	return commit.apply(p), updated
}

// Tiles calls fn for every non-empty cell in the pane, in row-major
// order.
func (p *Pane) Tiles(fn func(pos [2]int, tile *FullTile)) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			pos := [2]int{x, y}
			tile, _ := p.at(pos)
			if !tile.IsEmpty() {
				fn(pos, tile)
			}
		}
	}
}

// Draw renders the pane onto surf, offset by (dx, dy) plus the pane's own
// world-space position. Cells at a negative final coordinate are
// skipped.
func (p *Pane) Draw(dx, dy int32, surf *surface.TextSurface) {
	p.Tiles(func(pos [2]int, tile *FullTile) {
		x := int32(pos[0]) + dx + p.position.X
		y := int32(pos[1]) + dy + p.position.Y
		if x >= 0 && y >= 0 {
			tile.Draw(int(x), int(y), surf)
		}
	})
}

// paneJSON is the wire shape of a Pane.
type paneJSON struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Position Point      `json:"position"`
	Tiles    []FullTile `json:"tiles"`
}

// MarshalJSON encodes the pane for persistence (spec.md §6).
func (p *Pane) MarshalJSON() ([]byte, error) {
	return json.Marshal(paneJSON{Width: p.width, Height: p.height, Position: p.position, Tiles: p.tiles})
}

// UnmarshalJSON decodes a pane previously written by MarshalJSON. The
// signal roster is rebuilt from whichever cells carry a signal, rather
// than persisted directly.
func (p *Pane) UnmarshalJSON(data []byte) error {
	var raw paneJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Tiles) != raw.Width*raw.Height {
		return fmt.Errorf("stackline: pane tile count %d does not match %dx%d", len(raw.Tiles), raw.Width, raw.Height)
	}

	p.width = raw.Width
	p.height = raw.Height
	p.position = raw.Position
	p.tiles = raw.Tiles
	p.signals = nil
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			pos := [2]int{x, y}
			if tile, _ := p.at(pos); tile.Signal() != nil {
				p.signals = append(p.signals, pos)
			}
		}
	}
	return nil
}
