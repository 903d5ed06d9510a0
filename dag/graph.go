// SPDX-License-Identifier: MIT

package dag

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and ordering.
var (
	// ErrEmptyVertexID indicates a vertex name is the empty string.
	ErrEmptyVertexID = errors.New("dag: vertex ID is empty")

	// ErrDuplicateVertex indicates a vertex name was added twice.
	ErrDuplicateVertex = errors.New("dag: duplicate vertex")

	// ErrVertexNotFound indicates an edge referenced an undeclared vertex.
	ErrVertexNotFound = errors.New("dag: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop edge.
	ErrLoopNotAllowed = errors.New("dag: self-loop not allowed")

	// ErrDuplicateEdge indicates the same parent→child edge was added twice.
	ErrDuplicateEdge = errors.New("dag: duplicate edge")

	// ErrCycleDetected indicates the edge set contains a directed cycle.
	ErrCycleDetected = errors.New("dag: cycle detected")
)

// Visitation states for DFS-based routines.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // fully explored
)

// Edge is a directed parent→child pair of vertex indices.
type Edge struct {
	From int
	To   int
}

// Graph is a directed graph over dense vertex indices.
type Graph struct {
	names    []string       // index → name
	index    map[string]int // name → index
	parents  [][]int        // parents[v] in edge insertion order
	children [][]int        // children[v] in edge insertion order
	edges    []Edge         // insertion order
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddVertex declares a vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyVertexID
	}
	if _, ok := g.index[name]; ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}
	id := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = id
	g.parents = append(g.parents, nil)
	g.children = append(g.children, nil)

	return id, nil
}

// AddEdge inserts the directed edge from→to. Both endpoints must exist.
//
// Cycles are NOT rejected here: a network is allowed to be temporarily
// cyclic during construction, and acyclicity is verified by the model check.
//
// Complexity: O(indegree(to)).
func (g *Graph) AddEdge(from, to string) error {
	// 1) resolve endpoints
	u, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	w, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	// 2) structural constraints
	if u == w {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	for _, p := range g.parents[w] {
		if p == u {
			return fmt.Errorf("%w: %q -> %q", ErrDuplicateEdge, from, to)
		}
	}
	// 3) link both directions
	g.parents[w] = append(g.parents[w], u)
	g.children[u] = append(g.children[u], w)
	g.edges = append(g.edges, Edge{From: u, To: w})

	return nil
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	u, ok1 := g.index[from]
	w, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}
	for _, p := range g.parents[w] {
		if p == u {
			return true
		}
	}

	return false
}

// Index returns the index of name.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Name returns the name of vertex i.
func (g *Graph) Name(i int) string { return g.names[i] }

// Names returns all vertex names in declaration order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.names) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Parents returns a copy of the parent indices of v in edge insertion order.
func (g *Graph) Parents(v int) []int { return cloneInts(g.parents[v]) }

// Children returns a copy of the child indices of v in edge insertion order.
func (g *Graph) Children(v int) []int { return cloneInts(g.children[v]) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		names:    make([]string, len(g.names)),
		index:    make(map[string]int, len(g.index)),
		parents:  make([][]int, len(g.parents)),
		children: make([][]int, len(g.children)),
		edges:    make([]Edge, len(g.edges)),
	}
	copy(c.names, g.names)
	copy(c.edges, g.edges)
	for k, v := range g.index {
		c.index[k] = v
	}
	for i := range g.parents {
		c.parents[i] = cloneInts(g.parents[i])
		c.children[i] = cloneInts(g.children[i])
	}

	return c
}

func cloneInts(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}
