// SPDX-License-Identifier: MIT

// Package variable declares discrete random variables and the ordered
// registry that identifies them inside a network.
//
// What:
//
//   - Variable: a unique name plus a cardinality (number of states).
//     States are indexed 0..Card-1; binary variables use Card=2 with
//     0 = false/low and 1 = true/high.
//   - Registry: an append-only, declaration-ordered catalog with O(1)
//     name→index lookup. Indices are stable for the lifetime of the registry
//     and are what the dag and network packages use as arena keys.
//
// Determinism:
//
//   - Registry.Variables() and Registry.Names() always return declaration order.
//
// Errors:
//
//   - ErrEmptyName         variable name is the empty string
//   - ErrBadCardinality    cardinality < 1
//   - ErrDuplicate         a variable with the same name already exists
//   - ErrUnknown           lookup of a name that was never declared
//   - ErrStateOutOfRange   state index outside 0..Card-1
package variable
