// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// R1: deserialize(serialize(w)) == w, for a world exercising every
// concrete tile and a signal mid-flight.
func TestWorldRoundtrip(t *testing.T) {
	world := NewWorld()
	main, err := NewPane(4, 2)
	assert.NoError(t, err)
	main.SetPosition(At(3, -2))

	sub, err := NewPane(1, 1)
	assert.NoError(t, err)

	world.SetPane("main", main)
	world.SetPane("sub", sub)

	main.SetTile([2]int{0, 0}, NewWire(Any))
	main.SetTile([2]int{1, 0}, NewDiode(Down))
	resistor := NewResistor(Right)
	main.SetTile([2]int{2, 0}, resistor)
	main.SetTile([2]int{3, 0}, NewTeleporter(PaneTarget{Pane: "sub", X: 0, Y: 0}))
	main.SetTile([2]int{0, 1}, NewSender(PaneTarget{Pane: "sub", X: 0, Y: 0}))

	signal := NewSignal([2]int{0, 0}, Right)
	signal.Push(Number(42))
	signal.Push(String("hi"))
	main.SetSignal([2]int{0, 0}, signal)

	data, err := json.Marshal(world)
	assert.NoError(t, err)

	restored := NewWorld()
	assert.NoError(t, json.Unmarshal(data, restored))

	data2, err := json.Marshal(restored)
	assert.NoError(t, err)
	assert.JSONEq(t, string(data), string(data2))

	restoredMain, ok := restored.Pane("main")
	assert.True(t, ok)
	assert.Equal(t, main.Width(), restoredMain.Width())
	assert.Equal(t, main.Height(), restoredMain.Height())
	assert.Equal(t, main.Position(), restoredMain.Position())

	restoredResistor, ok := GetAs[*Resistor](restoredMain, [2]int{2, 0})
	assert.True(t, ok)
	assert.Equal(t, Right, restoredResistor.Direction)
}

func TestResistorLatchedSignalRoundtrips(t *testing.T) {
	pane, err := NewPane(2, 1)
	assert.NoError(t, err)
	pane.SetTile([2]int{0, 0}, NewResistor(Right))
	pane.SetSignal([2]int{0, 0}, NewSignal([2]int{0, 0}, Right))

	pane.Step() // resistor latches the incoming signal internally

	data, err := json.Marshal(pane)
	assert.NoError(t, err)

	restored := &Pane{}
	assert.NoError(t, json.Unmarshal(data, restored))

	r, ok := GetAs[*Resistor](restored, [2]int{0, 0})
	assert.True(t, ok)
	assert.NotNil(t, r.stored, "the latched signal must survive a save/load cycle")
}

func TestAnyTileRejectsMultiKeyObject(t *testing.T) {
	var tile AnyTile
	err := json.Unmarshal([]byte(`{"Wire": {}, "Diode": {}}`), &tile)
	assert.Error(t, err)
}

func TestAnyTileRejectsUnknownVariant(t *testing.T) {
	var tile AnyTile
	err := json.Unmarshal([]byte(`{"Transistor": {}}`), &tile)
	assert.Error(t, err)
}
