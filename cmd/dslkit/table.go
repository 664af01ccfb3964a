package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"sort"
	"strconv"

	"github.com/npillmayer/dslkit/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the action table of the built-in grammar",
	Long: `table builds the action table for the built-in expression grammar and
prints it, one row per state, one column per lookahead symbol.`,
	RunE: doTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func doTable(cmd *cobra.Command, args []string) error {
	p, err := demoParser()
	if err != nil {
		return err
	}
	table := p.Table()
	syms := columns(table)
	header := append([]string{"state"}, syms...)
	data := pterm.TableData{header}
	for i, row := range table {
		cells := []string{strconv.Itoa(i)}
		for _, sym := range syms {
			cells = append(cells, cell(row, sym))
		}
		data = append(data, cells)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// columns collects every lookahead symbol occurring in the table, sorted.
func columns(table lr.Table) []string {
	seen := make(map[string]bool)
	for _, row := range table {
		for sym := range row {
			seen[sym] = true
		}
	}
	syms := make([]string, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

func cell(row lr.Row, sym string) string {
	action, ok := row[sym]
	if !ok {
		return ""
	}
	switch action.Op {
	case lr.ShiftAction:
		return "s" + strconv.Itoa(action.Goto)
	case lr.ReduceAction:
		return "r " + action.Key
	default:
		return "acc"
	}
}
