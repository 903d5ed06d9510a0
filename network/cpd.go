// SPDX-License-Identifier: MIT

package network

// TabularCPD is a raw conditional probability table as supplied by a network
// definition. It is validated only by CheckModel.
//
//	Values[targetState][column]
//
// where column enumerates joint parent assignments lexicographically over
// Evidence, first parent slowest. For parents (B, E) with two states each the
// columns are (0,0) (0,1) (1,0) (1,1). A root variable has one column.
type TabularCPD struct {
	Variable     string
	Card         int
	Values       [][]float64
	Evidence     []string
	EvidenceCard []int
}

// NewTabularCPD deep-copies its arguments into a TabularCPD.
func NewTabularCPD(variable string, card int, values [][]float64, evidence []string, evidenceCard []int) *TabularCPD {
	c := &TabularCPD{
		Variable:     variable,
		Card:         card,
		Values:       make([][]float64, len(values)),
		Evidence:     append([]string(nil), evidence...),
		EvidenceCard: append([]int(nil), evidenceCard...),
	}
	for i, row := range values {
		c.Values[i] = append([]float64(nil), row...)
	}

	return c
}

// Columns returns the number of parent configurations implied by EvidenceCard.
func (c *TabularCPD) Columns() int {
	n := 1
	for _, k := range c.EvidenceCard {
		n *= k
	}

	return n
}

// Clone returns a deep copy.
func (c *TabularCPD) Clone() *TabularCPD {
	return NewTabularCPD(c.Variable, c.Card, c.Values, c.Evidence, c.EvidenceCard)
}

// flat concatenates the rows: target state slowest, parent columns fastest.
// This is exactly the row-major layout of a factor over [target, parents...].
func (c *TabularCPD) flat() []float64 {
	out := make([]float64, 0, c.Card*c.Columns())
	for _, row := range c.Values {
		out = append(out, row...)
	}

	return out
}
