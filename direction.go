// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

// Direction represents one directed orientation on the grid.
type Direction uint8

// The four cardinal directions a signal may travel.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Offset converts a Direction into a (Δx, Δy) pair, with Up equal to (0, -1).
func (d Direction) Offset() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// String returns a short, human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Invalid"
	}
}

// MarshalJSON encodes the direction as its name, matching the
// single-key-variant convention used for tiles elsewhere in the engine.
func (d Direction) MarshalJSON() ([]byte, error) {
	return marshalEnumName(d.String())
}

// UnmarshalJSON decodes a direction from its name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return err
	}

	switch name {
	case "Up":
		*d = Up
	case "Down":
		*d = Down
	case "Left":
		*d = Left
	case "Right":
		*d = Right
	default:
		return &invalidEnumError{kind: "Direction", value: name}
	}
	return nil
}
