// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

// Orientation represents one or many undirected orientation(s). Since we
// are in a 2D grid, this may either be Horizontal, Vertical, or both (Any).
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
	Any
)

var (
	horizontalDirs = [2]Direction{Left, Right}
	verticalDirs   = [2]Direction{Up, Down}
	anyDirs        = [4]Direction{Up, Down, Left, Right}
)

// Directions returns the set of directions denoted by the orientation.
func (o Orientation) Directions() []Direction {
	switch o {
	case Horizontal:
		return horizontalDirs[:]
	case Vertical:
		return verticalDirs[:]
	default:
		return anyDirs[:]
	}
}

// Contains returns true iff d is one of the directions denoted by o.
func (o Orientation) Contains(d Direction) bool {
	switch o {
	case Horizontal:
		return d == Left || d == Right
	case Vertical:
		return d == Up || d == Down
	case Any:
		return true
	default:
		return false
	}
}

// String returns a short, human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Any:
		return "Any"
	default:
		return "Invalid"
	}
}

// MarshalJSON encodes the orientation as its name.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return marshalEnumName(o.String())
}

// UnmarshalJSON decodes an orientation from its name.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return err
	}

	switch name {
	case "Horizontal":
		*o = Horizontal
	case "Vertical":
		*o = Vertical
	case "Any":
		*o = Any
	default:
		return &invalidEnumError{kind: "Orientation", value: name}
	}
	return nil
}
