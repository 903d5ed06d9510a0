// SPDX-License-Identifier: MIT

package factor

import "errors"

// Every message is prefixed with "factor: ". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is useful; callers match with errors.Is.
var (
	// ErrNilFactor indicates a nil *Factor was passed to an operation.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrShape indicates the table length does not equal the product of the
	// scope cardinalities.
	ErrShape = errors.New("factor: table size does not match scope")

	// ErrNegativeValue indicates a negative table entry.
	ErrNegativeValue = errors.New("factor: negative value")

	// ErrNaNInf indicates a NaN or infinite table entry.
	ErrNaNInf = errors.New("factor: NaN or Inf value")

	// ErrDuplicateVariable indicates a variable listed twice in one scope.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrCardinalityMismatch indicates two factors disagree on the cardinality
	// of a shared variable. This is model corruption, never a user input error.
	ErrCardinalityMismatch = errors.New("factor: cardinality mismatch")

	// ErrScopeMismatch indicates a requested variable ordering or assignment
	// does not match the factor scope.
	ErrScopeMismatch = errors.New("factor: scope mismatch")

	// ErrDegenerate indicates normalization of a factor whose total mass is
	// not above epsilon (the conditioning evidence is impossible).
	ErrDegenerate = errors.New("factor: degenerate distribution")
)
