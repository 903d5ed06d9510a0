// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/bayesnet/factor"
	"github.com/katalvlaran/bayesnet/inference"
	"github.com/katalvlaran/bayesnet/netfile"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// renderFactor prints one row per joint assignment with state labels.
func renderFactor(doc *netfile.Document, f *factor.Factor) string {
	names := f.Names()
	t := newTable(append(names, "P")...)
	f.Each(func(x []int, p float64) {
		row := make([]string, 0, len(x)+1)
		for i, s := range x {
			row = append(row, doc.StateName(names[i], s))
		}
		t.Row(append(row, fmt.Sprintf("%.6f", p))...)
	})

	return t.String()
}

func renderAssignment(doc *netfile.Document, res inference.MAPResult) string {
	t := newTable("Variable", "State")
	for i, v := range res.Variables {
		t.Row(v, doc.StateName(v, res.States[i]))
	}

	return t.String()
}

// givenClause renders " | A=a, B=b" with sorted names, or "" without evidence.
func givenClause(doc *netfile.Document, ev map[string]int) string {
	if len(ev) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ev))
	for _, name := range sortedNames(ev) {
		parts = append(parts, name+"="+doc.StateName(name, ev[name]))
	}

	return " | " + strings.Join(parts, ", ")
}

func sortedNames(ev map[string]int) []string {
	names := make([]string, 0, len(ev))
	for k := range ev {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}
