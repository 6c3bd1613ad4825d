// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertSignalOnlyAt asserts exactly one of the given positions carries a
// signal, and that every other position in all does not.
func assertSignalOnlyAt(t *testing.T, pane *Pane, all [][2]int, want [2]int) {
	t.Helper()
	for _, pos := range all {
		cell, ok := pane.Get(pos)
		assert.True(t, ok)
		if pos == want {
			assert.NotNilf(t, cell.Signal(), "expected a signal at %v", pos)
		} else {
			assert.Nilf(t, cell.Signal(), "expected no signal at %v", pos)
		}
	}
}

func assertNoSignalAnywhere(t *testing.T, pane *Pane, all [][2]int) {
	t.Helper()
	for _, pos := range all {
		cell, ok := pane.Get(pos)
		assert.True(t, ok)
		assert.Nilf(t, cell.Signal(), "expected no signal at %v", pos)
	}
}

// S1: horizontal wire pair.
func TestScenarioWirePair(t *testing.T) {
	pane, err := NewPane(3, 1)
	assert.NoError(t, err)

	pane.SetTile([2]int{0, 0}, NewWire(Horizontal))
	pane.SetTile([2]int{1, 0}, NewWire(Any))
	pane.SetTile([2]int{2, 0}, NewWire(Horizontal))

	all := [][2]int{{0, 0}, {1, 0}, {2, 0}}
	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	pane.Step()
	assertSignalOnlyAt(t, pane, all, [2]int{1, 0})

	pane.Step()
	assertSignalOnlyAt(t, pane, all, [2]int{2, 0})

	pane.Step()
	assertNoSignalAnywhere(t, pane, all)
}

// A wire cell must cool back down to Idle once its signal has drained,
// so it can accept a second, independent signal later — mirroring
// test_wire_transmit's reverse-direction pass through the same three
// cells after the first one cools down.
func TestWireCellReturnsToIdleAndAcceptsASecondSignal(t *testing.T) {
	pane, err := NewPane(3, 1)
	assert.NoError(t, err)

	pane.SetTile([2]int{0, 0}, NewWire(Horizontal))
	pane.SetTile([2]int{1, 0}, NewWire(Horizontal))
	pane.SetTile([2]int{2, 0}, NewWire(Horizontal))
	all := [][2]int{{0, 0}, {1, 0}, {2, 0}}

	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))
	pane.Step()
	pane.Step()
	pane.Step()
	assertNoSignalAnywhere(t, pane, all)

	// Let every cell finish cooling down to Idle before reusing them.
	pane.Step()
	pane.Step()
	for _, pos := range all {
		state, ok := pane.GetState(pos)
		assert.True(t, ok)
		assert.Equal(t, Idle, state, "a wire must cool back to Idle, not stay stuck Active/Dormant forever")
	}

	// A fresh signal, travelling the other way, must be accepted.
	pane.SetSignal([2]int{2, 0}, NewSignal([2]int{2, 0}, Left))
	pane.Step()
	assertSignalOnlyAt(t, pane, all, [2]int{1, 0})

	pane.Step()
	assertSignalOnlyAt(t, pane, all, [2]int{0, 0})
}

// S2: diode ring, period 4.
func TestScenarioDiodeRing(t *testing.T) {
	pane, err := NewPane(2, 2)
	assert.NoError(t, err)

	pane.SetTile([2]int{0, 0}, NewDiode(Right))
	pane.SetTile([2]int{1, 0}, NewDiode(Down))
	pane.SetTile([2]int{0, 1}, NewDiode(Up))
	pane.SetTile([2]int{1, 1}, NewDiode(Left))

	all := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	expected := [][2]int{{1, 0}, {1, 1}, {0, 1}, {0, 0}}
	for _, want := range expected {
		pane.Step()
		assertSignalOnlyAt(t, pane, all, want)
	}
}

// S3: wire fan-out.
func TestScenarioWireFanOut(t *testing.T) {
	pane, err := NewPane(3, 2)
	assert.NoError(t, err)

	pane.SetTile([2]int{0, 0}, NewWire(Horizontal))
	pane.SetTile([2]int{1, 0}, NewWire(Any))
	pane.SetTile([2]int{2, 0}, NewWire(Horizontal))
	pane.SetTile([2]int{1, 1}, NewWire(Vertical))

	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	pane.Step()
	c, ok := pane.Get([2]int{1, 0})
	assert.True(t, ok)
	assert.NotNil(t, c.Signal())

	pane.Step()
	right, ok := pane.Get([2]int{2, 0})
	assert.True(t, ok)
	assert.NotNil(t, right.Signal())

	down, ok := pane.Get([2]int{1, 1})
	assert.True(t, ok)
	assert.NotNil(t, down.Signal())
}

// S4: resistor delay.
func TestScenarioResistorDelay(t *testing.T) {
	pane, err := NewPane(4, 1)
	assert.NoError(t, err)

	pane.SetTile([2]int{0, 0}, NewDiode(Right))
	pane.SetTile([2]int{1, 0}, NewResistor(Right))
	pane.SetTile([2]int{2, 0}, NewResistor(Right))
	pane.SetTile([2]int{3, 0}, NewDiode(Right))

	all := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	pane.Step() // tick 1
	assertSignalOnlyAt(t, pane, all, [2]int{1, 0})

	pane.Step() // tick 2
	assertNoSignalAnywhere(t, pane, all)
	r1, ok := GetAs[*Resistor](pane, [2]int{1, 0})
	assert.True(t, ok)
	assert.NotNil(t, r1.stored, "first resistor should be holding the signal internally")

	pane.Step() // tick 3
	assertSignalOnlyAt(t, pane, all, [2]int{2, 0})

	pane.Step() // tick 4
	assertNoSignalAnywhere(t, pane, all)
	r2, ok := GetAs[*Resistor](pane, [2]int{2, 0})
	assert.True(t, ok)
	assert.NotNil(t, r2.stored)

	pane.Step() // tick 5
	assertSignalOnlyAt(t, pane, all, [2]int{3, 0})
}

// S5: teleporter same-pane.
func TestScenarioTeleporterSamePane(t *testing.T) {
	world := NewWorld()
	pane, err := NewPane(3, 3)
	assert.NoError(t, err)
	world.SetPane("main", pane)

	pane.SetTile([2]int{0, 0}, NewDiode(Right))
	pane.SetTile([2]int{1, 0}, NewTeleporter(PaneTarget{Pane: "main", X: 2, Y: 2}))
	pane.SetTile([2]int{2, 2}, NewWire(Any))

	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	world.Step() // tick 1
	c, ok := pane.Get([2]int{1, 0})
	assert.True(t, ok)
	assert.NotNil(t, c.Signal())

	world.Step() // tick 2
	dest, ok := pane.Get([2]int{2, 2})
	assert.True(t, ok)
	assert.NotNil(t, dest.Signal())

	world.Step() // tick 3
	source, ok := pane.Get([2]int{1, 0})
	assert.True(t, ok)
	assert.Nil(t, source.Signal())
	dest, ok = pane.Get([2]int{2, 2})
	assert.True(t, ok)
	assert.Nil(t, dest.Signal(), "wire has no outlet to forward into, so the signal falls off")
}

// S6: teleporter cross-pane.
func TestScenarioTeleporterCrossPane(t *testing.T) {
	world := NewWorld()
	main, err := NewPane(2, 1)
	assert.NoError(t, err)
	sub, err := NewPane(1, 1)
	assert.NoError(t, err)

	world.SetPane("main", main)
	world.SetPane("sub", sub)

	main.SetTile([2]int{0, 0}, NewDiode(Right))
	main.SetTile([2]int{1, 0}, NewTeleporter(PaneTarget{Pane: "sub", X: 0, Y: 0}))
	sub.SetTile([2]int{0, 0}, NewWire(Any))

	main.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	world.Step() // tick 1
	world.Step() // tick 2

	dest, ok := sub.Get([2]int{0, 0})
	assert.True(t, ok)
	assert.NotNil(t, dest.Signal())

	source, ok := main.Get([2]int{0, 0})
	assert.True(t, ok)
	assert.Nil(t, source.Signal())
}
