// SPDX-License-Identifier: MIT

// Package fixtures provides the reference networks used across package tests:
// the burglary/alarm network and the cloudy/sprinkler/rain/wet-grass network.
package fixtures

import (
	"github.com/katalvlaran/bayesnet/network"
)

// Alarm builds the five-variable burglary network:
//
//	Burglary   Earthquake
//	      \     /
//	       Alarm
//	      /     \
//	JohnCalls  MaryCalls
func Alarm(opts ...network.Option) (*network.Network, error) {
	n := network.New(opts...)
	for _, name := range []string{"Burglary", "Earthquake", "Alarm", "JohnCalls", "MaryCalls"} {
		if err := n.AddVariable(name, 2); err != nil {
			return nil, err
		}
	}
	for _, e := range [][2]string{
		{"Burglary", "Alarm"}, {"Earthquake", "Alarm"},
		{"Alarm", "JohnCalls"}, {"Alarm", "MaryCalls"},
	} {
		if err := n.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	err := n.AddCPDs(
		network.NewTabularCPD("Burglary", 2, [][]float64{{0.999}, {0.001}}, nil, nil),
		network.NewTabularCPD("Earthquake", 2, [][]float64{{0.998}, {0.002}}, nil, nil),
		network.NewTabularCPD("Alarm", 2, [][]float64{
			{0.999, 0.71, 0.06, 0.05},
			{0.001, 0.29, 0.94, 0.95},
		}, []string{"Burglary", "Earthquake"}, []int{2, 2}),
		network.NewTabularCPD("JohnCalls", 2, [][]float64{
			{0.95, 0.10},
			{0.05, 0.90},
		}, []string{"Alarm"}, []int{2}),
		network.NewTabularCPD("MaryCalls", 2, [][]float64{
			{0.99, 0.30},
			{0.01, 0.70},
		}, []string{"Alarm"}, []int{2}),
	)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// Sprinkler builds the four-variable wet-grass network:
//
//	     Cloudy
//	    /      \
//	Sprinkler  Rain
//	    \      /
//	    WetGrass
func Sprinkler(opts ...network.Option) (*network.Network, error) {
	n := network.New(opts...)
	for _, name := range []string{"Cloudy", "Sprinkler", "Rain", "WetGrass"} {
		if err := n.AddVariable(name, 2); err != nil {
			return nil, err
		}
	}
	for _, e := range [][2]string{
		{"Cloudy", "Sprinkler"}, {"Cloudy", "Rain"},
		{"Sprinkler", "WetGrass"}, {"Rain", "WetGrass"},
	} {
		if err := n.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	err := n.AddCPDs(
		network.NewTabularCPD("Cloudy", 2, [][]float64{{0.5}, {0.5}}, nil, nil),
		network.NewTabularCPD("Sprinkler", 2, [][]float64{
			{0.5, 0.9},
			{0.5, 0.1},
		}, []string{"Cloudy"}, []int{2}),
		network.NewTabularCPD("Rain", 2, [][]float64{
			{0.8, 0.2},
			{0.2, 0.8},
		}, []string{"Cloudy"}, []int{2}),
		network.NewTabularCPD("WetGrass", 2, [][]float64{
			{1.0, 0.1, 0.1, 0.01},
			{0.0, 0.9, 0.9, 0.99},
		}, []string{"Sprinkler", "Rain"}, []int{2, 2}),
	)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// Weather builds a network with non-binary variables:
// Weather(3) -> Umbrella(2), Weather(3) -> Traffic(3).
func Weather(opts ...network.Option) (*network.Network, error) {
	n := network.New(opts...)
	for _, v := range []struct {
		name string
		card int
	}{{"Weather", 3}, {"Umbrella", 2}, {"Traffic", 3}} {
		if err := n.AddVariable(v.name, v.card); err != nil {
			return nil, err
		}
	}
	for _, child := range []string{"Umbrella", "Traffic"} {
		if err := n.AddEdge("Weather", child); err != nil {
			return nil, err
		}
	}
	err := n.AddCPDs(
		network.NewTabularCPD("Weather", 3, [][]float64{{0.6}, {0.3}, {0.1}}, nil, nil),
		network.NewTabularCPD("Umbrella", 2, [][]float64{
			{0.9, 0.2, 0.05},
			{0.1, 0.8, 0.95},
		}, []string{"Weather"}, []int{3}),
		network.NewTabularCPD("Traffic", 3, [][]float64{
			{0.7, 0.3, 0.1},
			{0.2, 0.5, 0.3},
			{0.1, 0.2, 0.6},
		}, []string{"Weather"}, []int{3}),
	)
	if err != nil {
		return nil, err
	}

	return n, nil
}
