// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "fmt"

// Point represents a 2D, world-space coordinate. Unlike cell positions
// inside a Pane (plain (int, int) pairs, always non-negative), a Point may
// be negative — panes may sit anywhere in world space (spec.md §3/§4.6).
type Point struct {
	X int32
	Y int32
}

// At creates a new point at the given x, y coordinate.
func At(x, y int32) Point {
	return Point{X: x, Y: y}
}

// String returns the string representation of a point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add adds two points together.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Subtract subtracts o from p.
func (p Point) Subtract(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// ManhattanDistance computes the L1 distance between two points, used as
// the A* heuristic for Sender's display path (spec.md §4.2).
func (p Point) ManhattanDistance(o Point) int {
	return absInt(int(p.X)-int(o.X)) + absInt(int(p.Y)-int(o.Y))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Pack encodes the point as a single uint32, placing X in the high 16
// bits and Y in the low 16 bits. Grounded on Point.Integer() /
// unpackPoint in the teacher's point.go; used by the A* search in
// pathfind.go to key its cost/visited tables.
func (p Point) Pack() uint32 {
	return (uint32(uint16(p.X)) << 16) | uint32(uint16(p.Y))
}

// Unpack reconstructs a Point from the encoding produced by Pack.
func Unpack(v uint32) Point {
	return Point{X: int32(int16(v >> 16)), Y: int32(int16(v))}
}

// Rect represents an axis-aligned, inclusive-exclusive rectangle in world
// space: it contains every point p with Min.X <= p.X < Max.X and
// Min.Y <= p.Y < Max.Y.
type Rect struct {
	Min Point
	Max Point
}

// NewRect builds a rectangle from its corners.
func NewRect(minX, minY, maxX, maxY int32) Rect {
	return Rect{Min: At(minX, minY), Max: At(maxX, maxY)}
}

// Contains reports whether p lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: At(minInt32(r.Min.X, o.Min.X), minInt32(r.Min.Y, o.Min.Y)),
		Max: At(maxInt32(r.Max.X, o.Max.X), maxInt32(r.Max.Y, o.Max.Y)),
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
