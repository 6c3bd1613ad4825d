// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "github.com/kelindar/stackline/internal/surface"

// Tile is the minimum interface a concrete cell rule must implement. The
// set of types implementing Tile is closed (spec.md §9): the unexported
// sealed method below can only be satisfied from within this package, so
// no external package may add a sixth tile variant at runtime. Adding a
// tile is a build-time operation — extend the registry in registry.go.
type Tile interface {
	// Update mutates the tile's own state and enqueues deferred effects
	// through ctx. It is invoked at most once per tick (spec.md §4.4).
	Update(ctx *UpdateContext)

	// AcceptsSignal reports whether the tile, considered alone, accepts a
	// signal arriving from direction. FullTile additionally requires the
	// cell to be Idle (spec.md §3 invariant I2).
	AcceptsSignal(direction Direction) bool

	// sealed restricts Tile implementations to this package.
	sealed()
}

// Drawer is implemented by tiles that render themselves onto a
// TextSurface. Tiles that don't implement it simply aren't drawn beyond
// their FullTile envelope's default (nothing).
type Drawer interface {
	Draw(x, y int, state State, surf *surface.TextSurface)
}
