// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"fmt"
)

// AnyTile wraps any of the closed set of concrete tiles (Wire, Diode,
// Resistor, Teleporter, Sender). It exists, distinct from the bare Tile
// interface, so callers have one concrete type to store, downcast, and
// serialize — mirroring the Rust original's `AnyTile` enum (spec.md §3).
type AnyTile struct {
	tile Tile
}

// WrapTile builds an AnyTile around one of the package's concrete tiles.
func WrapTile(t Tile) AnyTile {
	return AnyTile{tile: t}
}

// Tile returns the wrapped tile interface value.
func (a AnyTile) Tile() Tile {
	return a.tile
}

// Kind returns the registered variant name for the wrapped tile (e.g.
// "Wire"), used as the key of JSON's single-key-object encoding
// (spec.md §6).
func (a AnyTile) Kind() string {
	return kindOf(a.tile)
}

// AsWire downcasts to *Wire, mirroring Pane::get_as::<Wire> in the
// original source.
func (a AnyTile) AsWire() (*Wire, bool) {
	t, ok := a.tile.(*Wire)
	return t, ok
}

// AsDiode downcasts to *Diode.
func (a AnyTile) AsDiode() (*Diode, bool) {
	t, ok := a.tile.(*Diode)
	return t, ok
}

// AsResistor downcasts to *Resistor.
func (a AnyTile) AsResistor() (*Resistor, bool) {
	t, ok := a.tile.(*Resistor)
	return t, ok
}

// AsTeleporter downcasts to *Teleporter.
func (a AnyTile) AsTeleporter() (*Teleporter, bool) {
	t, ok := a.tile.(*Teleporter)
	return t, ok
}

// AsSender downcasts to *Sender.
func (a AnyTile) AsSender() (*Sender, bool) {
	t, ok := a.tile.(*Sender)
	return t, ok
}

// anyTileJSON mirrors the single-key-object wire shape spec.md §6
// requires of every tile variant: {"Wire": {...}}.
type anyTileJSON map[string]json.RawMessage

// MarshalJSON encodes the tile as a single-key object naming its variant.
func (a AnyTile) MarshalJSON() ([]byte, error) {
	if a.tile == nil {
		return json.Marshal(nil)
	}
	payload, err := json.Marshal(a.tile)
	if err != nil {
		return nil, err
	}
	return json.Marshal(anyTileJSON{a.Kind(): payload})
}

// UnmarshalJSON decodes a tile from its single-key-object form, using the
// registry to resolve the variant name to a constructor before filling in
// its fields.
func (a *AnyTile) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		a.tile = nil
		return nil
	}

	var raw anyTileJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("stackline: tile object must have exactly one key, got %d", len(raw))
	}

	for kind, payload := range raw {
		ctor, ok := registry[kind]
		if !ok {
			return fmt.Errorf("stackline: unknown tile variant %q", kind)
		}
		tile := ctor()
		if err := json.Unmarshal(payload, tile); err != nil {
			return err
		}
		a.tile = tile
	}
	return nil
}

func kindOf(t Tile) string {
	switch t.(type) {
	case *Wire:
		return "Wire"
	case *Diode:
		return "Diode"
	case *Resistor:
		return "Resistor"
	case *Teleporter:
		return "Teleporter"
	case *Sender:
		return "Sender"
	default:
		return ""
	}
}
