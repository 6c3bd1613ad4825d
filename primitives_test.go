// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOffset(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, tc := range tests {
		dx, dy := tc.dir.Offset()
		assert.Equal(t, tc.dx, dx)
		assert.Equal(t, tc.dy, dy)
	}
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Up, Down.Opposite())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
}

func TestDirectionJSON(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		data, err := json.Marshal(d)
		assert.NoError(t, err)

		var out Direction
		assert.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, d, out)
	}

	var bad Direction
	assert.Error(t, json.Unmarshal([]byte(`"Sideways"`), &bad))
}

func TestOrientationContains(t *testing.T) {
	assert.True(t, Horizontal.Contains(Left))
	assert.True(t, Horizontal.Contains(Right))
	assert.False(t, Horizontal.Contains(Up))

	assert.True(t, Vertical.Contains(Up))
	assert.True(t, Vertical.Contains(Down))
	assert.False(t, Vertical.Contains(Left))

	for _, d := range []Direction{Up, Down, Left, Right} {
		assert.True(t, Any.Contains(d))
	}
}

func TestOrientationDirections(t *testing.T) {
	assert.ElementsMatch(t, []Direction{Left, Right}, Horizontal.Directions())
	assert.ElementsMatch(t, []Direction{Up, Down}, Vertical.Directions())
	assert.ElementsMatch(t, []Direction{Up, Down, Left, Right}, Any.Directions())
}

func TestStateNextCyclesAfterThree(t *testing.T) {
	s := Idle
	assert.Equal(t, Active, s.Next())
	s = s.Next()
	assert.Equal(t, Dormant, s.Next())
	s = s.Next()
	assert.Equal(t, Idle, s.Next())
}

func TestStateAcceptsSignal(t *testing.T) {
	assert.True(t, Idle.AcceptsSignal())
	assert.False(t, Active.AcceptsSignal())
	assert.False(t, Dormant.AcceptsSignal())
}

func TestStateJSON(t *testing.T) {
	for _, s := range []State{Idle, Active, Dormant} {
		data, err := json.Marshal(s)
		assert.NoError(t, err)

		var out State
		assert.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, s, out)
	}
}

func TestValueNumber(t *testing.T) {
	v := Number(3.5)
	n, ok := v.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	_, ok = v.AsString()
	assert.False(t, ok)

	i, ok := v.AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)
}

func TestValueString(t *testing.T) {
	v := String("hello")
	s, ok := v.AsString()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = v.AsNumber()
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(1).Equal(String("1")))
	assert.True(t, String("a").Equal(String("a")))
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal(Number(2))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"Number": 2}`, string(data))

	var v Value
	assert.NoError(t, json.Unmarshal(data, &v))
	assert.True(t, v.Equal(Number(2)))

	data, err = json.Marshal(String("hi"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"String": "hi"}`, string(data))

	assert.NoError(t, json.Unmarshal(data, &v))
	assert.True(t, v.Equal(String("hi")))

	assert.Error(t, json.Unmarshal([]byte(`{}`), &v))
}

func TestPointPackRoundtrips(t *testing.T) {
	for _, p := range []Point{At(0, 0), At(5, -5), At(-100, 200), At(32767, -32768)} {
		assert.Equal(t, p, Unpack(p.Pack()))
	}
}

func TestRectContainsAndUnion(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	assert.True(t, r.Contains(At(0, 0)))
	assert.True(t, r.Contains(At(3, 3)))
	assert.False(t, r.Contains(At(4, 4)))

	other := NewRect(2, 2, 6, 6)
	assert.True(t, r.Intersects(other))

	union := r.Union(other)
	assert.Equal(t, NewRect(0, 0, 6, 6), union)
}
