// SPDX-License-Identifier: MIT

// Package network builds discrete Bayesian networks and validates them into
// immutable, query-ready models.
//
// What:
//
//   - Network: single-writer builder. AddVariable declares a variable and its
//     cardinality, AddEdge declares parent→child, SetCPD attaches a raw
//     TabularCPD. Nothing about the CPD table is checked at SetCPD time.
//   - TabularCPD: the flat CPD contract. Values has one row per target state
//     and one column per joint parent assignment, enumerated in lexicographic
//     order of (parent_1, parent_2, ...) with the first listed parent varying
//     slowest. Evidence lists the parents in that order and EvidenceCard their
//     cardinalities.
//   - CheckModel / Model: validate every CPD against the graph and the
//     declared cardinalities, then verify acyclicity. On success Model()
//     returns a frozen *Model whose CPDs are factor.Factor values with scope
//     [target, parents...]. Later builder mutations never affect a Model
//     already handed out.
//
// Validation (all violations are collected, in declaration order, with the
// cycle check reported last):
//
//   - ErrMissingCPD            variable has no CPD
//   - ErrCardinalityMismatch   CPD card or evidence card disagrees with a declaration
//   - ErrTableShape            rows/columns/evidence lengths do not fit
//   - ErrScopeMismatch         CPD evidence set differs from the graph parents
//   - ErrInvalidProbability    negative, NaN or infinite entry
//   - ErrColumnSum             a column does not sum to 1 within tolerance
//   - ErrCycle                 the edge set has a directed cycle
//
// All of them are reported inside a *ValidationError, which also matches
// ErrInvalidModel under errors.Is.
//
// Concurrency:
//
//   - Builder methods take an internal lock, but the intended use is a single
//     writer followed by read-only queries against the frozen Model. A Model
//     is immutable and safe for unlimited concurrent readers.
package network
