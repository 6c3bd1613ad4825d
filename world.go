// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"sort"

	"github.com/kelindar/stackline/internal/surface"
)

// World is a named collection of Panes, each positioned somewhere in a
// shared world space. Stepping the world steps every pane once, then
// routes whatever Teleporter/Sender tiles queued for another pane — so a
// cross-pane signal sent on tick N becomes visible on tick N+1, after the
// destination pane has already run its own tick N (spec.md §4.6).
//
// Grounded on world.rs from the original implementation. Panes may
// overlap; when more than one contains a queried point, the pane whose
// name sorts first wins — an explicit, deterministic tie-break the
// original's HashMap iteration order did not guarantee (see DESIGN.md).
type World struct {
	panes    map[string]*Pane
	notifier *notifier
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{panes: make(map[string]*Pane), notifier: newNotifier()}
}

// SetPane inserts or replaces the named pane.
func (w *World) SetPane(name string, pane *Pane) {
	w.panes[name] = pane
}

// Pane returns the named pane, if it exists.
func (w *World) Pane(name string) (*Pane, bool) {
	p, ok := w.panes[name]
	return p, ok
}

// Panes returns the world's live name-to-pane map.
func (w *World) Panes() map[string]*Pane {
	return w.panes
}

// paneNames returns every pane name in sorted order, the fixed iteration
// order Step, Get, InPane and Draw use for determinism.
func (w *World) paneNames() []string {
	names := make([]string, 0, len(w.panes))
	for name := range w.panes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subscribe registers sub to be notified, synchronously, of every tile
// that updates during Step.
func (w *World) Subscribe(sub Observer) {
	w.notifier.Subscribe(sub)
}

// Unsubscribe deregisters sub.
func (w *World) Unsubscribe(sub Observer) {
	w.notifier.Unsubscribe(sub)
}

// Step runs one tick on every pane, notifies Observers of every tile
// that updated, then delivers every pane's outbound queue to its
// destination — one tick after it was sent.
func (w *World) Step() {
	var outbound []outboundEntry

	for _, name := range w.paneNames() {
		pane := w.panes[name]
		out, updated := pane.Step()
		outbound = append(outbound, out...)

		for _, pos := range updated {
			if tile, ok := pane.at(pos); ok {
				w.notifier.Notify(pane.Position().Add(At(int32(pos[0]), int32(pos[1]))), tile)
			}
		}
	}

	for _, e := range outbound {
		if pane, ok := w.panes[e.target.Pane]; ok {
			pane.SetSignal([2]int{e.target.X, e.target.Y}, e.signal)
		}
	}
}

// localPos converts a world-space point to pos local to pane.
func localPos(pane *Pane, p Point) ([2]int, bool) {
	local := p.Subtract(pane.Position())
	if local.X < 0 || local.Y < 0 || int(local.X) >= pane.Width() || int(local.Y) >= pane.Height() {
		return [2]int{}, false
	}
	return [2]int{int(local.X), int(local.Y)}, true
}

// Get returns the cell at world-space point p, if it falls within any
// pane.
func (w *World) Get(p Point) (*FullTile, bool) {
	for _, name := range w.paneNames() {
		pane := w.panes[name]
		if pos, ok := localPos(pane, p); ok {
			if tile, ok := pane.Get(pos); ok {
				return tile, true
			}
		}
	}
	return nil, false
}

// GetWithPos is Get, additionally returning the owning pane's name and
// the point's position local to that pane.
func (w *World) GetWithPos(p Point) (tile *FullTile, pane string, pos [2]int, ok bool) {
	for _, name := range w.paneNames() {
		candidate := w.panes[name]
		if local, ok := localPos(candidate, p); ok {
			if t, ok := candidate.Get(local); ok {
				return t, name, local, true
			}
		}
	}
	return nil, "", [2]int{}, false
}

// InPane reports whether p falls within the bounds of any pane (whether
// or not a tile sits there).
func (w *World) InPane(p Point) bool {
	for _, name := range w.paneNames() {
		if _, ok := localPos(w.panes[name], p); ok {
			return true
		}
	}
	return false
}

// Bounds returns the smallest rectangle covering every pane.
func (w *World) Bounds() Rect {
	var bounds Rect
	first := true
	for _, name := range w.paneNames() {
		pane := w.panes[name]
		r := Rect{
			Min: pane.Position(),
			Max: pane.Position().Add(At(int32(pane.Width()), int32(pane.Height()))),
		}
		if first {
			bounds, first = r, false
			continue
		}
		bounds = bounds.Union(r)
	}
	return bounds
}

// Draw renders every pane onto surf, offset by (dx, dy).
func (w *World) Draw(dx, dy int32, surf *surface.TextSurface) {
	for _, name := range w.paneNames() {
		w.panes[name].Draw(dx, dy, surf)
	}
}

// worldJSON is the wire shape of a World.
type worldJSON struct {
	Panes map[string]*Pane `json:"panes"`
}

// MarshalJSON encodes the world for persistence (spec.md §6).
func (w *World) MarshalJSON() ([]byte, error) {
	return json.Marshal(worldJSON{Panes: w.panes})
}

// UnmarshalJSON decodes a world previously written by MarshalJSON. Any
// registered Observers are preserved.
func (w *World) UnmarshalJSON(data []byte) error {
	var raw worldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Panes == nil {
		raw.Panes = make(map[string]*Pane)
	}
	w.panes = raw.Panes
	if w.notifier == nil {
		w.notifier = newNotifier()
	}
	return nil
}
