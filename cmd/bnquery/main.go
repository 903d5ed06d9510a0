// SPDX-License-Identifier: MIT

// Command bnquery validates and queries Bayesian networks stored as YAML.
//
//	bnquery validate alarm.yaml
//	bnquery query alarm.yaml --var Burglary --evidence JohnCalls=1 --evidence MaryCalls=1
//	bnquery query alarm.yaml --map --evidence JohnCalls=1
//	bnquery order alarm.yaml --var Burglary --evidence JohnCalls=1 --heuristic min-weight
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
