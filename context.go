// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "fmt"

// UpdateContext is the interface a Tile's Update method uses to talk to
// its parent Pane. Every action it performs other than TakeSignal/Keep is
// buffered into an UpdateCommit and only applied once every tile in the
// Pane has updated for this tick — this is what makes a tick's outcome
// independent of the order tiles happen to be visited in (spec.md §4.5).
//
// Grounded on context.rs from the original implementation, adapted from
// borrow-checked references to the Pane's own per-cell spin lock.
type UpdateContext struct {
	position [2]int
	pane     *Pane
	state    State
	signal   *Signal
	commit   *UpdateCommit
}

// newUpdateContext starts an update for the tile at position. It returns
// false if the tile was already updated this tick, or the cell is empty.
func newUpdateContext(pane *Pane, position [2]int, commit *UpdateCommit) (*UpdateContext, bool) {
	tile, ok := pane.at(position)
	if !ok || tile.IsEmpty() || tile.updated {
		return nil, false
	}

	tile.updated = true
	commit.recordUpdate(position)

	return &UpdateContext{
		position: position,
		pane:     pane,
		state:    tile.State(),
		signal:   tile.TakeSignal(),
		commit:   commit,
	}, true
}

// Position returns the position of the tile currently being updated.
func (c *UpdateContext) Position() [2]int {
	return c.position
}

// Signal returns the signal held by the current tile, if any, without
// removing it.
func (c *UpdateContext) Signal() *Signal {
	return c.signal
}

// TakeSignal removes and returns the current tile's signal. A tile that
// wants to keep its signal without changing it must call Keep; otherwise
// whatever TakeSignal returned (and is not re-sent) is dropped at the end
// of the tick.
func (c *UpdateContext) TakeSignal() *Signal {
	s := c.signal
	c.signal = nil
	return s
}

// State returns the current tile's state as captured at the start of this
// update, or the state most recently scheduled through SetState/NextState
// during it.
func (c *UpdateContext) State() State {
	return c.state
}

// SetState schedules the current tile's state to change to state once
// the tick's commit is applied.
func (c *UpdateContext) SetState(state State) {
	c.state = state
	c.commit.recordState(c.position, state)
}

// NextState schedules the current tile's state to advance via State.Next.
func (c *UpdateContext) NextState() {
	c.SetState(c.state.Next())
}

// Get returns the neighbouring cell at pos, or false if pos is the
// current tile's own position (use TakeSignal/Signal for that) or does
// not exist.
func (c *UpdateContext) Get(pos [2]int) (*FullTile, bool) {
	if pos == c.position {
		return nil, false
	}
	return c.pane.at(pos)
}

// Offset returns the position reached by moving (dx, dy) from the
// current tile, or false if that position falls outside the pane.
func (c *UpdateContext) Offset(dx, dy int) ([2]int, bool) {
	return c.pane.offset(c.position, dx, dy)
}

// InBounds reports whether pos lies within the current pane.
func (c *UpdateContext) InBounds(pos [2]int) bool {
	return c.pane.inBounds(pos)
}

// GetOffset combines Offset and Get: it returns the neighbour (dx, dy)
// away from the current tile.
func (c *UpdateContext) GetOffset(dx, dy int) ([2]int, *FullTile, bool) {
	pos, ok := c.Offset(dx, dy)
	if !ok {
		return [2]int{}, nil, false
	}
	tile, ok := c.Get(pos)
	return pos, tile, ok
}

// AcceptsSignal reports whether the tile at pos would accept a signal
// arriving from direction. A nonexistent tile never accepts.
func (c *UpdateContext) AcceptsSignal(pos [2]int, direction Direction) bool {
	tile, ok := c.Get(pos)
	if !ok {
		return false
	}
	return tile.AcceptsSignal(direction)
}

// AcceptsDirection is a shortcut for GetOffset(direction.Offset())
// followed by AcceptsSignal; it returns the resulting position.
func (c *UpdateContext) AcceptsDirection(direction Direction) ([2]int, bool) {
	pos, tile, ok := c.GetOffset(direction.Offset())
	if !ok || !tile.AcceptsSignal(direction) {
		return [2]int{}, false
	}
	return pos, true
}

// ForceSend schedules signal to be stored at pos, overriding whatever is
// there, without checking whether the destination accepts it. The
// destination's state becomes Active once applied. Callers should set
// signal's direction (via Moved/CloneMove) before calling this.
func (c *UpdateContext) ForceSend(pos [2]int, signal Signal) error {
	if !c.pane.inBounds(pos) {
		return fmt.Errorf("stackline: position %v is out of bounds", pos)
	}
	signal.setPosition(pos)
	c.commit.recordSignal(pos, signal)
	return nil
}

// Send is ForceSend guarded by AcceptsSignal: it only schedules the send
// if the destination tile accepts a signal from direction, and sets the
// signal's direction and position. On rejection it returns the signal
// unchanged (direction restored) alongside an error.
func (c *UpdateContext) Send(pos [2]int, direction Direction, signal Signal) (Signal, error) {
	if !c.AcceptsSignal(pos, direction) {
		return signal, fmt.Errorf("stackline: %v does not accept a signal from %s", pos, direction)
	}

	original := signal.Direction()
	moved := signal.Moved(direction)
	if err := c.ForceSend(pos, moved); err != nil {
		return moved.Moved(original), err
	}
	return Signal{}, nil
}

// Keep puts the current tile's signal back immediately, bypassing the
// commit buffer. Use this when a tile wants to hold its own signal
// unchanged for another tick; it is a no-op if TakeSignal/Keep already
// emptied the context's signal.
func (c *UpdateContext) Keep() {
	if c.signal != nil {
		c.commit.setSelfSignal(c.signal)
		c.signal = nil
	}
}

// SendOutbound schedules signal for delivery to target's pane once
// World.Step collects every pane's outbound queue — one tick after this
// call, since pane updates for the current tick have already started
// (spec.md §4.6).
func (c *UpdateContext) SendOutbound(target PaneTarget, signal Signal) {
	c.commit.recordOutbound(target, signal)
}

// Callback records an arbitrary deferred mutation on the pane, run once
// after every signal and state write for this tick has been applied.
func (c *UpdateContext) Callback(f func(*Pane)) {
	c.commit.recordCallback(f)
}
