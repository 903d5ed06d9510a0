// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"strings"
)

// Builder errors.
var (
	// ErrUnknownVariable indicates a reference to an undeclared variable.
	ErrUnknownVariable = errors.New("network: unknown variable")

	// ErrNilCPD indicates SetCPD was called with nil.
	ErrNilCPD = errors.New("network: nil CPD")
)

// Validation kinds. Each Violation carries exactly one of these.
var (
	// ErrInvalidModel matches every *ValidationError.
	ErrInvalidModel = errors.New("network: invalid model")

	// ErrMissingCPD indicates a variable without a CPD.
	ErrMissingCPD = errors.New("network: missing CPD")

	// ErrCardinalityMismatch indicates a CPD disagrees with a declared cardinality.
	ErrCardinalityMismatch = errors.New("network: cardinality mismatch")

	// ErrTableShape indicates CPD rows, columns or evidence lists have the wrong length.
	ErrTableShape = errors.New("network: CPD table shape mismatch")

	// ErrScopeMismatch indicates CPD evidence does not equal the graph parents.
	ErrScopeMismatch = errors.New("network: CPD scope does not match parents")

	// ErrInvalidProbability indicates a negative or non-finite CPD entry.
	ErrInvalidProbability = errors.New("network: invalid probability")

	// ErrColumnSum indicates a CPD column whose entries do not sum to 1.
	ErrColumnSum = errors.New("network: CPD column does not sum to 1")

	// ErrCycle indicates the edge set contains a directed cycle.
	ErrCycle = errors.New("network: graph has a cycle")
)

// Violation is one failed model check.
type Violation struct {
	// Variable names the offending variable (first vertex of the cycle for ErrCycle).
	Variable string

	// Kind is one of the validation sentinels above.
	Kind error

	// Detail describes the specific condition, e.g. "column 2 sums to 0.9".
	Detail string
}

// Error renders "variable: kind: detail".
func (v Violation) Error() string {
	if v.Detail == "" {
		return fmt.Sprintf("%s: %v", v.Variable, v.Kind)
	}

	return fmt.Sprintf("%s: %v: %s", v.Variable, v.Kind, v.Detail)
}

// Unwrap exposes Kind to errors.Is.
func (v Violation) Unwrap() error { return v.Kind }

// ValidationError aggregates every violation found by CheckModel.
// Violations are ordered by variable declaration order; a cycle comes last.
type ValidationError struct {
	Violations []Violation
}

// Error reports the count and every violation, one per line.
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %d violation(s)", ErrInvalidModel, len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.Error())
	}

	return b.String()
}

// Unwrap lets errors.Is match ErrInvalidModel and every violation kind.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Violations)+1)
	out = append(out, ErrInvalidModel)
	for _, v := range e.Violations {
		out = append(out, v)
	}

	return out
}

// For returns the violations reported for variable name.
func (e *ValidationError) For(name string) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Variable == name {
			out = append(out, v)
		}
	}

	return out
}
