package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strings"
	"testing"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTable(t *testing.T, rules RuleSet, start string) Table {
	g, err := NewGrammar(rules, start)
	if err != nil {
		t.Fatal(err)
	}
	table, err := NewTableGenerator(Analyze(g)).BuildTable()
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestBuildTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	table := buildTable(t, exprRules(), "root")
	accepts := 0
	for i, row := range table {
		for sym, action := range row {
			switch action.Op {
			case ShiftAction:
				if action.Goto < 0 || action.Goto >= len(table) {
					t.Errorf("state %d, %s: goto %d out of range", i, sym, action.Goto)
				}
			case ReduceAction:
				if action.Key == "" {
					t.Errorf("state %d, %s: reduce without a non-terminal", i, sym)
				}
			case AcceptAction:
				accepts++
				if sym != dslkit.TypeEOF {
					t.Errorf("accept action under %q, expected '$'", sym)
				}
				if action.Key != "root" {
					t.Errorf("accept names %q, expected the start symbol", action.Key)
				}
			default:
				t.Errorf("state %d, %s: unknown op %q", i, sym, action.Op)
			}
		}
	}
	if accepts != 1 {
		t.Errorf("table has %d accept actions, expected exactly one", accepts)
	}
}

func TestBuildTableQuantified(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	table := buildTable(t, RuleSet{"list": {{"[", "item*", "]"}}, "item": {{"a"}}}, "list")
	// the item* loop needs a shift with a 'came from' chain somewhere
	looped := false
	for _, row := range table {
		if action, ok := row["item"]; ok && action.Op == ShiftAction && len(action.CameFrom) > 0 {
			looped = true
		}
	}
	if !looped {
		t.Error("expected a goto under 'item' carrying a 'came from' map")
	}
}

func TestBuildTableConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	g, err := NewGrammar(RuleSet{"S": {{"S", "S"}, {"a"}}}, "S")
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewTableGenerator(Analyze(g)).BuildTable()
	perr, ok := err.(*dslkit.ParseError)
	if !ok || perr.Code != dslkit.ErrLRConflict {
		t.Fatalf("expected LR_CONFLICT, got %v", err)
	}
	if !strings.Contains(perr.Msg, `"S"`) {
		t.Errorf("expected the conflict to name the offending rule, got %q", perr.Msg)
	}
}
