// SPDX-License-Identifier: MIT

// Package factor implements immutable discrete factors: dense tables mapping
// every joint assignment of an ordered variable scope to a non-negative real.
//
// What:
//
//   - Factor: scope (ordered, distinct variables) + table of size ∏ Card.
//     The table is row-major: the LAST scope variable varies fastest and the
//     first varies slowest. A CPD over [target, p1, p2] therefore stores row
//     "target state" and, inside it, columns in lexicographic (p1, p2) order,
//     which is exactly the flat CPD layout accepted by the network package.
//   - Algebra (all pure; each returns a new Factor, inputs are never mutated):
//     Multiply/Product, SumOut/Marginalize, MaxOut, Reduce, Normalize, Reorder.
//
// Why:
//
//   - Variable Elimination is nothing but repeated Multiply and SumOut; CPDs
//     and intermediate factors share one representation.
//
// Semantics worth remembering:
//
//   - Multiply(a, b) scope is a.Scope() followed by the variables of b.Scope()
//     that a lacks, in b's order.
//   - SumOut(f, v) and MaxOut(f, v) with v not in scope return f unchanged (identity).
//   - Reduce drops evidence variables from the scope; evidence variables not
//     in scope are ignored.
//   - Normalize fails with ErrDegenerate when the total mass is <= epsilon.
//   - A factor with an empty scope is a scalar holding exactly one value.
//
// Complexity:
//
//   - Multiply:  O(|union table|)
//   - SumOut, MaxOut: O(|f|)
//   - Reduce:    O(|result|)
//   - Normalize: O(|f|)
//
// Errors:
//
//   - ErrNilFactor             nil *Factor operand
//   - ErrShape                 table length does not match ∏ Card
//   - ErrNegativeValue         negative table entry
//   - ErrNaNInf                NaN or ±Inf table entry
//   - ErrDuplicateVariable     a variable appears twice in one scope
//   - ErrCardinalityMismatch   same variable name with different cardinalities
//   - ErrScopeMismatch         Reorder/ValueOf names do not match the scope
//   - ErrDegenerate            Normalize of a (near) all-zero factor
//   - variable.ErrStateOutOfRange  assignment or evidence state outside the domain
package factor
