// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors. QueryError and NumericError wrap one of these.
var (
	// ErrNilNetwork indicates a nil network or model was passed to a constructor.
	ErrNilNetwork = errors.New("inference: nil network")

	// ErrUnknownVariable indicates a query or evidence variable the model lacks.
	ErrUnknownVariable = errors.New("inference: unknown variable")

	// ErrEvidenceOutOfRange indicates an evidence state outside the variable domain.
	ErrEvidenceOutOfRange = errors.New("inference: evidence state out of range")

	// ErrQueryEvidenceOverlap indicates a variable both queried and observed.
	ErrQueryEvidenceOverlap = errors.New("inference: variable in both query and evidence")

	// ErrEmptyQuery indicates no query variables.
	ErrEmptyQuery = errors.New("inference: empty query")

	// ErrDuplicateVariable indicates a query variable listed twice.
	ErrDuplicateVariable = errors.New("inference: duplicate query variable")

	// ErrInvalidOrder indicates an explicit elimination order that is not a
	// permutation of the hidden variables.
	ErrInvalidOrder = errors.New("inference: invalid elimination order")
)

// QueryError reports a request rejected before any elimination work.
type QueryError struct {
	Op       string // "Query", "Marginals", "MAPQuery", ...
	Variable string // offending variable, may be empty
	Err      error  // wraps one of the sentinels above
}

func (e *QueryError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("inference: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("inference: %s %q: %v", e.Op, e.Variable, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func queryErr(op, name string, kind error, format string, args ...interface{}) *QueryError {
	err := kind
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
	}

	return &QueryError{Op: op, Variable: name, Err: err}
}

// NumericError reports that normalization failed: the evidence is
// impossible (or vanishingly unlikely) under the model.
type NumericError struct {
	Op       string
	Evidence map[string]int
	Err      error // wraps factor.ErrDegenerate
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("inference: %s: degenerate posterior given evidence %s: %v", e.Op, formatEvidence(e.Evidence), e.Err)
}

func (e *NumericError) Unwrap() error { return e.Err }

// formatEvidence renders evidence with sorted keys, e.g. "{A=1, B=0}".
func formatEvidence(ev map[string]int) string {
	keys := make([]string, 0, len(ev))
	for k := range ev {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, ev[k])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
