// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// I1: an empty cell never carries a signal.
func TestInvariantEmptyCellHasNoSignal(t *testing.T) {
	pane, _ := NewPane(1, 1)
	cell, ok := pane.Get([2]int{0, 0})
	assert.True(t, ok)
	assert.True(t, cell.IsEmpty())
	assert.Nil(t, cell.Signal())

	ok = cell.SetSignal(&Signal{})
	assert.False(t, ok, "an empty cell must reject SetSignal")
	assert.Nil(t, cell.Signal())
}

// I2: AcceptsSignal requires a present tile in the Idle state.
func TestInvariantAcceptsSignalRequiresIdleAndPresent(t *testing.T) {
	pane, _ := NewPane(1, 1)
	cell, _ := pane.Get([2]int{0, 0})
	assert.False(t, cell.AcceptsSignal(Right), "empty cell never accepts")

	pane.SetTile([2]int{0, 0}, NewWire(Any))
	cell, _ = pane.Get([2]int{0, 0})
	assert.True(t, cell.AcceptsSignal(Right))

	cell.SetState(Active)
	assert.False(t, cell.AcceptsSignal(Right), "a non-Idle cell never accepts")
}

// I3: after a step, no cell is left in the updated state.
func TestInvariantStepClearsUpdatedFlag(t *testing.T) {
	pane, _ := NewPane(2, 1)
	pane.SetTile([2]int{0, 0}, NewWire(Horizontal))
	pane.SetTile([2]int{1, 0}, NewWire(Horizontal))
	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	pane.Step()

	for _, pos := range [][2]int{{0, 0}, {1, 0}} {
		tile, ok := pane.at(pos)
		assert.True(t, ok)
		assert.False(t, tile.updated)
	}
}

// I4: SetSignal positions the signal and activates a non-empty cell, and
// is a no-op on an empty one.
func TestInvariantSetSignalPositionsAndActivates(t *testing.T) {
	pane, _ := NewPane(1, 1)
	pane.SetTile([2]int{0, 0}, NewWire(Any))

	ok := pane.SetSignal([2]int{0, 0}, NewSignal([2]int{9, 9}, Up))
	assert.True(t, ok)

	cell, _ := pane.Get([2]int{0, 0})
	assert.Equal(t, [2]int{0, 0}, cell.Signal().Position())
	assert.Equal(t, Active, cell.State())

	empty, _ := NewPane(1, 1)
	ok = empty.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Up))
	assert.False(t, ok)
}

// I5 exception: two diodes both sending into the same destination in a
// single tick collide. The commit applies signal writes in the order the
// rules ran, so the last writer wins; the result follows the roster order
// of the two sources, not which signal arrived "first".
func TestInvariantCollidingWritesLastWriterWins(t *testing.T) {
	pane, _ := NewPane(3, 1)
	pane.SetTile([2]int{0, 0}, NewDiode(Right))
	pane.SetTile([2]int{2, 0}, NewDiode(Left))
	pane.SetTile([2]int{1, 0}, NewWire(Any))

	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))
	pane.SetSignal([2]int{2, 0}, NewSignal([2]int{2, 0}, Left))

	pane.Step()

	cell, ok := pane.Get([2]int{1, 0})
	assert.True(t, ok)
	assert.NotNil(t, cell.Signal(), "exactly one of the two colliding writes should land")
	assert.Equal(t, Left, cell.Signal().Direction(), "the roster visits (0,0) before (2,0), so the later write from (2,0) wins")
}

// I6: a signal present at tick start is consumed exactly once — it is
// neither duplicated nor silently left in two places — unless the rule
// explicitly clones it (Wire's fan-out).
func TestInvariantSignalNotDuplicatedByDiode(t *testing.T) {
	pane, _ := NewPane(2, 1)
	pane.SetTile([2]int{0, 0}, NewDiode(Right))
	pane.SetTile([2]int{1, 0}, NewDiode(Right))
	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	pane.Step()

	count := 0
	for _, pos := range [][2]int{{0, 0}, {1, 0}} {
		cell, _ := pane.Get(pos)
		if cell.Signal() != nil {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
