// SPDX-License-Identifier: MIT

package dag

import (
	"container/heap"
	"fmt"
)

// TopologicalSort returns every vertex index such that each parent precedes
// its children. Among vertices that are ready at the same time the lowest
// index (earliest declared) goes first, so the result is unique.
//
// If the graph has a cycle, ErrCycleDetected is returned wrapped with the
// offending cycle path (see FindCycle).
//
// Complexity: O((V+E) log V) time, O(V) memory.
func (g *Graph) TopologicalSort() ([]int, error) {
	// 1) in-degrees
	indeg := make([]int, len(g.names))
	for v := range g.names {
		indeg[v] = len(g.parents[v])
	}
	// 2) seed the frontier with all roots
	frontier := &minHeap{}
	for v, d := range indeg {
		if d == 0 {
			*frontier = append(*frontier, v)
		}
	}
	heap.Init(frontier)
	// 3) Kahn's loop
	order := make([]int, 0, len(g.names))
	for frontier.Len() > 0 {
		v := heap.Pop(frontier).(int)
		order = append(order, v)
		for _, c := range g.children[v] {
			indeg[c]--
			if indeg[c] == 0 {
				heap.Push(frontier, c)
			}
		}
	}
	// 4) leftovers mean a cycle
	if len(order) != len(g.names) {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, g.pathNames(g.FindCycle()))
	}

	return order, nil
}

// FindCycle returns one directed cycle as a vertex path [v0, v1, ..., vk]
// where vk→v0 closes the cycle, or nil if the graph is acyclic. The search
// starts from the lowest index and follows children in insertion order, so
// the reported cycle is deterministic.
//
// Complexity: O(V+E).
func (g *Graph) FindCycle() []int {
	state := make([]int, len(g.names))
	path := make([]int, 0, len(g.names))

	var visit func(v int) []int
	visit = func(v int) []int {
		state[v] = Gray
		path = append(path, v)
		for _, c := range g.children[v] {
			switch state[c] {
			case White:
				if cyc := visit(c); cyc != nil {
					return cyc
				}
			case Gray:
				// back-edge v→c: the cycle is the path segment starting at c
				for i, p := range path {
					if p == c {
						return cloneInts(path[i:])
					}
				}
			}
		}
		path = path[:len(path)-1]
		state[v] = Black

		return nil
	}

	for v := range g.names {
		if state[v] == White {
			if cyc := visit(v); cyc != nil {
				return cyc
			}
		}
	}

	return nil
}

// Ancestors returns a membership mask of the ancestral closure of seeds,
// seeds included.
// Complexity: O(V+E).
func (g *Graph) Ancestors(seeds ...int) []bool {
	in := make([]bool, len(g.names))
	stack := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !in[s] {
			in[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range g.parents[v] {
			if !in[p] {
				in[p] = true
				stack = append(stack, p)
			}
		}
	}

	return in
}

// PathNames maps vertex indices to names.
func (g *Graph) PathNames(path []int) []string {
	return g.pathNames(path)
}

func (g *Graph) pathNames(path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = g.names[v]
	}

	return out
}

// minHeap is a container/heap of vertex indices, smallest first.
type minHeap []int

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
