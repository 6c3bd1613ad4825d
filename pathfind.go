// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import "github.com/kelindar/intmap"

// findPath runs an A* search from start to goal over the infinite world
// grid, moving one cardinal step at a time. cost reports the price of
// entering a cell (Sender.CalculatePath penalizes cells already occupied
// by a pane, treating them as obstacles to route around). It returns the
// cells visited, start first and goal last, and false if no path exists.
//
// Grounded on the teacher's binary heap (heap.go, repurposed here as
// the A* openSet) and kelindar/intmap for the g-score/came-from tables,
// keyed by Point.Pack() — the same packing scheme the teacher's
// point.go uses to key its page index.
func findPath(start, goal Point, cost func(Point) int) ([]Point, bool) {
	open := newOpenSet()
	gScore := intmap.NewMap32(64)
	cameFrom := intmap.NewMap32(64)
	closed := make(map[uint32]bool, 64)

	startKey := start.Pack()
	gScore.Store(startKey, 0)
	open.Push(startKey, uint32(start.ManhattanDistance(goal)))

	steps := []Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	for {
		key, ok := open.Pop()
		if !ok {
			return nil, false
		}
		if closed[key] {
			continue
		}
		closed[key] = true

		cur := Unpack(key)
		if cur == goal {
			return reconstructPath(cameFrom, startKey, key), true
		}

		curG, _ := gScore.Load(key)
		for _, d := range steps {
			neighbor := cur.Add(d)
			nKey := neighbor.Pack()
			if closed[nKey] {
				continue
			}

			tentativeG := curG + uint32(cost(neighbor))
			if existing, ok := gScore.Load(nKey); ok && tentativeG >= existing {
				continue
			}

			gScore.Store(nKey, tentativeG)
			cameFrom.Store(nKey, key)
			open.Push(nKey, tentativeG+uint32(neighbor.ManhattanDistance(goal)))
		}
	}
}

// reconstructPath walks cameFrom back from goal to start and returns the
// path start-first.
func reconstructPath(cameFrom *intmap.Map32, startKey, goalKey uint32) []Point {
	path := []Point{Unpack(goalKey)}
	for cur := goalKey; cur != startKey; {
		prev, ok := cameFrom.Load(cur)
		if !ok {
			break
		}
		cur = prev
		path = append(path, Unpack(cur))
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
