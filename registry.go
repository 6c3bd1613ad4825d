// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

// registry stands in for the Rust original's build-time discovery
// (build.rs walks a source directory, enumerates every Tile
// implementation, and emits this table plus the AnyTile enum; spec.md
// §6/§9). Since the set of tiles is closed and small, and the spec
// explicitly leaves the discovery mechanism open ("a macro, a codegen
// step, or a hand-written registry"), it is a static table here. Adding a
// tile means adding both the type and an entry here — a build-time
// operation, not a runtime one.
var registry = map[string]func() Tile{
	"Wire":       func() Tile { return &Wire{} },
	"Diode":      func() Tile { return &Diode{} },
	"Resistor":   func() Tile { return &Resistor{} },
	"Teleporter": func() Tile { return &Teleporter{} },
	"Sender":     func() Tile { return &Sender{} },
}

// TileNames returns the registered tile variant names, in the fixed order
// the CLI's `set` verb lists them when given an unknown name.
func TileNames() []string {
	return []string{"Wire", "Diode", "Resistor", "Teleporter", "Sender"}
}

// NewTileByName constructs a zero-valued tile of the named variant, used
// by the CLI's `set <pos> <name>` verb (spec.md §6). JSON decoding reads
// the same registry table directly.
func NewTileByName(name string) (Tile, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
