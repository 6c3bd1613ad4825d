// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

// UpdateCommit buffers every action taken through an UpdateContext during
// one Pane.Step call. None of it is visible to other tiles until apply
// runs, after every tile has updated — the mechanism behind the tick's
// order-agnostic guarantee (spec.md §4.5). Grounded on UpdateCommit in
// the original implementation's context.rs.
type UpdateCommit struct {
	updates   [][2]int
	states    []stateEntry
	signals   []signalEntry
	outbound  []outboundEntry
	callbacks []func(*Pane)

	selfSignal *Signal
}

type stateEntry struct {
	pos   [2]int
	state State
}

type signalEntry struct {
	pos    [2]int
	signal Signal
}

// outboundEntry is a signal queued by Teleporter/Sender for a cell in
// another pane; World.Step collects these from every pane after a tick
// and routes them (spec.md §4.6).
type outboundEntry struct {
	target PaneTarget
	signal Signal
}

// newUpdateCommit returns an empty commit buffer for one Step call.
func newUpdateCommit() *UpdateCommit {
	return &UpdateCommit{}
}

func (c *UpdateCommit) recordUpdate(pos [2]int) {
	c.updates = append(c.updates, pos)
}

func (c *UpdateCommit) recordState(pos [2]int, state State) {
	c.states = append(c.states, stateEntry{pos: pos, state: state})
}

func (c *UpdateCommit) recordSignal(pos [2]int, signal Signal) {
	c.signals = append(c.signals, signalEntry{pos: pos, signal: signal})
}

func (c *UpdateCommit) recordOutbound(target PaneTarget, signal Signal) {
	c.outbound = append(c.outbound, outboundEntry{target: target, signal: signal})
}

func (c *UpdateCommit) recordCallback(f func(*Pane)) {
	c.callbacks = append(c.callbacks, f)
}

func (c *UpdateCommit) setSelfSignal(signal *Signal) {
	c.selfSignal = signal
}

// applyImmediate installs a Keep'd signal back onto tile right away,
// before the cell's lock is released — unlike every other action, Keep
// cannot wait for the end-of-tick Apply, since by then the tile may have
// already been visited again via the stateful sweep (spec.md §4.4).
func (c *UpdateCommit) applyImmediate(tile *FullTile) {
	if c.selfSignal != nil {
		tile.SetSignal(c.selfSignal)
		c.selfSignal = nil
	}
}

// apply installs every buffered state and signal change into pane, clears
// the updated flag of every tile visited this tick, runs every recorded
// callback, and returns the outbound queue for World.Step to route. Signal
// writes are applied in record order, so a later ForceSend/Send to the same
// cell overrides an earlier one within the same tick — last writer wins (an
// explicit design choice; see SPEC_FULL.md).
func (c *UpdateCommit) apply(pane *Pane) []outboundEntry {
	for _, pos := range c.updates {
		if tile, ok := pane.at(pos); ok {
			tile.updated = false
		}
	}

	for _, e := range c.states {
		if tile, ok := pane.at(e.pos); ok {
			tile.SetState(e.state)
		}
	}

	for _, e := range c.signals {
		tile, ok := pane.at(e.pos)
		if !ok {
			continue
		}
		signal := e.signal
		tile.SetSignal(&signal)
		tile.SetState(Active)
		pane.signals = append(pane.signals, e.pos)
	}

	for _, f := range c.callbacks {
		f(pane)
	}

	return c.outbound
}
