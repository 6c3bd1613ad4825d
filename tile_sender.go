// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"

	"github.com/kelindar/stackline/internal/surface"
)

// Sender acts like a virtual wire to a (possibly distant, possibly
// cross-pane) target: every incoming signal is held for Length ticks —
// the travel time of the last computed path — before being handed to
// World.Step's outbound queue. Path and Length are a display/delay aid
// computed by CalculatePath; they never gate acceptance, only timing.
type Sender struct {
	Target PaneTarget `json:"target"`
	Path   []Point    `json:"path,omitempty"`
	Length int        `json:"length"`

	pending []pendingSignal
}

// pendingSignal is a signal in flight inside a Sender, aged one tick at a
// time until it reaches Length and is handed off.
type pendingSignal struct {
	Signal Signal
	Age    int
}

// NewSender creates a sender relaying to target. Call CalculatePath to
// populate its display path and delay before using it in a simulation.
func NewSender(target PaneTarget) *Sender {
	return &Sender{Target: target}
}

func (s *Sender) sealed() {}

// AcceptsSignal accepts from any direction.
func (s *Sender) AcceptsSignal(Direction) bool {
	return true
}

// Update ages every signal in flight, admits a freshly arrived one, and
// hands off everything that has reached Length ticks of age.
func (s *Sender) Update(ctx *UpdateContext) {
	needsSending := false
	for i := range s.pending {
		s.pending[i].Age++
		if s.pending[i].Age >= s.Length {
			needsSending = true
		}
	}

	if signal := ctx.TakeSignal(); signal != nil {
		s.pending = append(s.pending, pendingSignal{Signal: *signal})
		if s.Length == 0 {
			needsSending = true
		}
	}

	if needsSending {
		remaining := s.pending[:0]
		for _, p := range s.pending {
			if p.Age >= s.Length {
				ctx.SendOutbound(s.Target, p.Signal)
			} else {
				remaining = append(remaining, p)
			}
		}
		s.pending = remaining
	}

	switch {
	case ctx.State() == Active:
		ctx.NextState()
	case ctx.State() == Dormant && len(s.pending) == 0:
		ctx.NextState()
	}
}

// CalculatePath runs an A* search (pathfind.go) from origin, in world
// space, to the Sender's target pane/coordinate, compresses the result
// into corner waypoints for display, and sets Length to the number of
// steps — which becomes this sender's propagation delay. It leaves Path
// and Length untouched if no target pane exists or no path is found.
func (s *Sender) CalculatePath(origin Point, world *World) {
	pane, ok := world.Pane(s.Target.Pane)
	if !ok {
		return
	}

	targetPos := pane.Position().Add(At(int32(s.Target.X), int32(s.Target.Y)))

	path, ok := findPath(origin, targetPos, func(p Point) int {
		if world.InPane(p) {
			return 100
		}
		return 1
	})
	if !ok {
		return
	}

	s.Path = compressCorners(path)
	s.Length = len(path) - 1
}

// compressCorners reduces a full cell-by-cell path to its corner
// waypoints (first cell, every direction-change cell, last cell),
// grounded on the original implementation's corner-compression loop for
// the Sender's display path.
func compressCorners(path []Point) []Point {
	if len(path) == 0 {
		return nil
	}

	out := []Point{path[0]}
	for i := 1; i < len(path)-1; i++ {
		prevAligned := path[i-1].X == path[i].X
		nextAligned := path[i].X == path[i+1].X
		if prevAligned != nextAligned {
			out = append(out, path[i])
		}
	}
	if last := path[len(path)-1]; last != out[len(out)-1] {
		out = append(out, last)
	}
	return out
}

// Draw renders the sender's display path as a sequence of corner arrows
// joined by straight segments, then the sender itself.
func (s *Sender) Draw(x, y int, state State, surf *surface.TextSurface) {
	for i := 0; i < len(s.Path)-1; i++ {
		prev, next := s.Path[i], s.Path[i+1]
		if prev.X != next.X {
			ch := '<'
			if next.X > prev.X {
				ch = '>'
			}
			surf.Set(x+int(prev.X), y+int(prev.Y), surface.Char{Rune: ch})
			lo, hi := prev.X, next.X
			if lo > hi {
				lo, hi = hi, lo
			}
			for dx := lo + 1; dx < hi; dx++ {
				surf.Set(x+int(dx), y+int(prev.Y), surface.Char{Rune: '-'})
			}
			continue
		}

		ch := '^'
		if next.Y > prev.Y {
			ch = 'v'
		}
		surf.Set(x+int(prev.X), y+int(prev.Y), surface.Char{Rune: ch})
		lo, hi := prev.Y, next.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		for dy := lo + 1; dy < hi; dy++ {
			surf.Set(x+int(prev.X), y+int(dy), surface.Char{Rune: '|'})
		}
	}

	surf.Set(x, y, surface.Char{Rune: 'S', FG: surface.StateColor(uint8(state))})
}

// senderJSON is the wire shape of a Sender, including in-flight signals
// so persistence is lossless.
type senderJSON struct {
	Target  PaneTarget      `json:"target"`
	Path    []Point         `json:"path,omitempty"`
	Length  int             `json:"length"`
	Pending []pendingSignal `json:"pending,omitempty"`
}

// MarshalJSON encodes the sender, its path/length and any in-flight
// signals.
func (s *Sender) MarshalJSON() ([]byte, error) {
	return json.Marshal(senderJSON{Target: s.Target, Path: s.Path, Length: s.Length, Pending: s.pending})
}

// UnmarshalJSON decodes a sender previously written by MarshalJSON.
func (s *Sender) UnmarshalJSON(data []byte) error {
	var raw senderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Target = raw.Target
	s.Path = raw.Path
	s.Length = raw.Length
	s.pending = raw.Pending
	return nil
}
