// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

// frontierNode is one entry in the A* open set: Point is a packed grid
// coordinate (see Point.Pack) and FScore is its priority — the
// g-score-plus-heuristic estimate findPath ranks the frontier by.
type frontierNode struct {
	Point  uint32
	FScore uint32
}

// openSet is the A* frontier: a binary min-heap ordered by FScore, so
// Pop always returns the packed point with the lowest estimated total
// cost to the goal. The heap shape (Push/Pop/up/down/Swap/Less) is the
// teacher's page-index binary heap from heap.go, repurposed here to rank
// search frontier nodes instead of dirty pages.
type openSet []frontierNode

func newOpenSet() openSet {
	return make(openSet, 0, 16)
}

func (h openSet) Len() int { return len(h) }

func (h openSet) Less(i, j int) bool { return h[i].FScore < h[j].FScore }

func (h *openSet) Swap(i, j int) { (*h)[i], (*h)[j] = (*h)[j], (*h)[i] }

// Push adds a frontier node for point with the given f-score.
// The complexity is O(log n) where n = h.Len().
func (h *openSet) Push(point, fScore uint32) {
	*h = append(*h, frontierNode{Point: point, FScore: fScore})
	h.up(h.Len() - 1)
}

// Pop removes and returns the packed point with the lowest f-score.
// The complexity is O(log n) where n = h.Len().
func (h *openSet) Pop() (uint32, bool) {
	n := h.Len() - 1
	if n < 0 {
		return 0, false
	}

	h.Swap(0, n)
	h.down(0, n)

	old := *h
	node := old[n]
	*h = old[:n]
	return node.Point, true
}

func (h *openSet) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func (h *openSet) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2 // right child
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}
