package inference_test

import (
	"fmt"

	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/internal/fixtures"
	"github.com/katalvlaran/bayesnet/network"
)

// ExampleVariableElimination_Query shows explaining away on the burglary
// network: a second call makes burglary far more likely.
func ExampleVariableElimination_Query() {
	n, _ := fixtures.Alarm()
	ve, err := inference.NewVariableElimination(n)
	if err != nil {
		fmt.Println(err)
		return
	}

	one, _ := ve.Query([]string{"Burglary"}, map[string]int{"JohnCalls": 1})
	both, _ := ve.Query([]string{"Burglary"}, map[string]int{"JohnCalls": 1, "MaryCalls": 1})
	p1, _ := one.Value(1)
	p2, _ := both.Value(1)
	fmt.Printf("P(B | j)    = %.4f\n", p1)
	fmt.Printf("P(B | j, m) = %.4f\n", p2)
	// Output:
	// P(B | j)    = 0.0163
	// P(B | j, m) = 0.2842
}

// ExampleVariableElimination_MAPQuery builds a two-node network inline.
func ExampleVariableElimination_MAPQuery() {
	n := network.New()
	_ = n.AddVariable("Rain", 2)
	_ = n.AddVariable("Wet", 2)
	_ = n.AddEdge("Rain", "Wet")
	_ = n.AddCPDs(
		network.NewTabularCPD("Rain", 2, [][]float64{{0.8}, {0.2}}, nil, nil),
		network.NewTabularCPD("Wet", 2, [][]float64{{0.9, 0.1}, {0.1, 0.9}}, []string{"Rain"}, []int{2}),
	)
	ve, err := inference.NewVariableElimination(n)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := ve.MAPQuery([]string{"Rain"}, map[string]int{"Wet": 1})
	fmt.Printf("%v %.4f\n", res.Assignment(), res.Probability)
	// Output:
	// map[Rain:1] 0.6923
}
