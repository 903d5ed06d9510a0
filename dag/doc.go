// SPDX-License-Identifier: MIT

// Package dag implements the structural skeleton of a Bayesian network: a
// directed graph stored as an arena of dense vertex indices with parent and
// child adjacency lists.
//
// What:
//
//   - Graph: vertices are identified by name and addressed by the index
//     returned from AddVertex (0..Len()-1, declaration order). Edges are
//     directed parent→child, without self-loops or parallel edges.
//   - TopologicalSort: Kahn's algorithm with a min-index frontier, so the
//     order is unique for a given graph and ties follow declaration order.
//   - FindCycle: three-color DFS (White/Gray/Black) returning the first
//     directed cycle reachable from the lowest-index vertex.
//   - Ancestors: the ancestral closure of a vertex set.
//
// Why indices instead of pointers:
//
//   - No lifetime or aliasing hazards, cheap cloning, and acyclicity checks
//     reduce to integer bookkeeping.
//
// Concurrency:
//
//   - Single writer. Once mutation stops, all read methods are safe for
//     concurrent use.
//
// Complexity:
//
//   - AddVertex/AddEdge: O(1) amortized (AddEdge also scans the parent list
//     of the child to reject duplicates: O(indegree))
//   - TopologicalSort:   O((V+E) log V)
//   - FindCycle:         O(V+E)
//   - Ancestors:         O(V+E)
//
// Errors:
//
//   - ErrEmptyVertexID     vertex name is empty
//   - ErrDuplicateVertex   vertex name already present
//   - ErrVertexNotFound    edge endpoint not declared
//   - ErrLoopNotAllowed    self-loop edge
//   - ErrDuplicateEdge     edge already present
//   - ErrCycleDetected     TopologicalSort on a cyclic graph
package dag
