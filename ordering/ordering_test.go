package ordering_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayesnet/ordering"
)

var (
	chain = [][]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}
	star  = [][]string{{"H", "L1"}, {"H", "L2"}, {"H", "L3"}}
)

func TestOrder_Chain(t *testing.T) {
	for _, h := range ordering.Heuristics() {
		t.Run(h.String(), func(t *testing.T) {
			cards := map[string]int{"A": 2, "B": 2, "C": 2, "D": 2}
			got, err := ordering.Order([]string{"D", "C", "B", "A"}, chain, cards, h)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C", "D"}, got)
			assert.Equal(t, 1, ordering.InducedWidth(got, chain))
		})
	}
}

func TestOrder_StarKeepsHubLate(t *testing.T) {
	got, err := ordering.Order([]string{"H", "L1", "L2", "L3"}, star, nil, ordering.MinFill)
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L2", "H", "L3"}, got)
	assert.Equal(t, 1, ordering.InducedWidth(got, star))

	// hub first connects every leaf
	assert.Equal(t, 3, ordering.InducedWidth([]string{"H", "L1", "L2", "L3"}, star))
}

func TestOrder_OnlyEmitsEliminated(t *testing.T) {
	got, err := ordering.Order([]string{"B", "C"}, chain, nil, ordering.MinNeighbors)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "C"}, got)
	assert.Len(t, got, 2)
}

func TestOrder_DuplicatesAndIsolated(t *testing.T) {
	got, err := ordering.Order([]string{"Z", "A", "Z"}, [][]string{{"A", "B"}}, nil, ordering.MinFill)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Z"}, got)
	assert.Equal(t, 0, ordering.InducedWidth([]string{"Z"}, nil))
}

func TestOrder_MinWeightUsesCardinalities(t *testing.T) {
	scopes := [][]string{{"A", "B"}, {"C", "D"}}
	cards := map[string]int{"A": 4, "B": 2, "C": 2, "D": 2}

	got, err := ordering.Order([]string{"B", "C"}, scopes, cards, ordering.MinWeight)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, got)

	got, err = ordering.Order([]string{"B", "C"}, scopes, cards, ordering.MinNeighbors)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, got)
}

func TestOrder_WeightedMinFill(t *testing.T) {
	scopes := [][]string{{"X", "A"}, {"X", "B"}, {"Y", "C"}, {"Y", "D"}}
	cards := map[string]int{"X": 2, "Y": 2, "A": 5, "B": 5, "C": 2, "D": 2}

	got, err := ordering.Order([]string{"X", "Y"}, scopes, cards, ordering.MinFill)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, got)

	got, err = ordering.Order([]string{"X", "Y"}, scopes, cards, ordering.WeightedMinFill)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "X"}, got)
}

func TestOrder_Errors(t *testing.T) {
	_, err := ordering.Order([]string{"A"}, chain, nil, ordering.Heuristic(42))
	assert.ErrorIs(t, err, ordering.ErrUnknownHeuristic)

	_, err = ordering.Order([]string{"A"}, chain, map[string]int{"A": 2}, ordering.MinWeight)
	assert.ErrorIs(t, err, ordering.ErrMissingCardinality)

	// unweighted heuristics ignore cards entirely
	_, err = ordering.Order([]string{"A"}, chain, nil, ordering.MinFill)
	assert.NoError(t, err)
}

func TestOrder_Deterministic(t *testing.T) {
	scopes := [][]string{
		{"A", "B", "C"}, {"C", "D"}, {"D", "E", "F"}, {"B", "F"}, {"G", "A"},
	}
	elim := []string{"G", "F", "E", "D", "C", "B", "A"}
	first, err := ordering.Order(elim, scopes, nil, ordering.MinFill)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		got, err := ordering.Order(elim, scopes, nil, ordering.MinFill)
		require.NoError(t, err)
		require.Equal(t, first, got, "run %d", i)
	}
}

func TestParseHeuristic(t *testing.T) {
	cases := map[string]ordering.Heuristic{
		"min-fill":          ordering.MinFill,
		"MinFill":           ordering.MinFill,
		" min_neighbors ":   ordering.MinNeighbors,
		"MIN-WEIGHT":        ordering.MinWeight,
		"weightedminfill":   ordering.WeightedMinFill,
		"weighted-min-fill": ordering.WeightedMinFill,
	}
	for in, want := range cases {
		got, err := ordering.ParseHeuristic(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, h := range ordering.Heuristics() {
		got, err := ordering.ParseHeuristic(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	_, err := ordering.ParseHeuristic("random")
	assert.ErrorIs(t, err, ordering.ErrUnknownHeuristic)
	assert.Equal(t, "Heuristic(9)", ordering.Heuristic(9).String())

	var h ordering.Heuristic
	require.NoError(t, h.Set("min-weight"))
	assert.Equal(t, ordering.MinWeight, h)
	assert.Error(t, h.Set("nope"))
	assert.Equal(t, "heuristic", h.Type())
}

func ExampleOrder() {
	// A chain A - B - C with C as the query: only A and B are eliminated.
	scopes := [][]string{{"A"}, {"B", "A"}, {"C", "B"}}
	order, _ := ordering.Order([]string{"A", "B"}, scopes, nil, ordering.MinFill)
	fmt.Println(order, ordering.InducedWidth(order, scopes))
	// Output:
	// [A B] 1
}
