package visitor

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strconv"
	"testing"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/dslkit/lexer"
	"github.com/npillmayer/dslkit/lr"
	"github.com/npillmayer/dslkit/lr/slr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func leaf(kind, text string) *dslkit.LexTree {
	return &dslkit.LexTree{Kind: kind, Match: []string{text}}
}

func TestVisitDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.visitor")
	defer teardown()
	//
	v := New().On("number", func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		n, _ := strconv.Atoi(node.(*dslkit.LexTree).Text())
		return n
	})
	if value := v.Visit(nil, leaf("number", "42")); value != 42 {
		t.Errorf("Visit = %v, expected 42", value)
	}
	if value := v.Visit(nil, leaf("other", "x")); value != nil {
		t.Errorf("expected nil for an unregistered leaf, got %v", value)
	}
}

// An unregistered internal node falls through to its children, yielding the
// last child's result.
func TestVisitChildrenFallThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.visitor")
	defer teardown()
	//
	v := New().On("number", func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		n, _ := strconv.Atoi(node.(*dslkit.LexTree).Text())
		return n
	})
	tree := &dslkit.ParseTree{Kind: "pair", Children: []dslkit.Node{
		leaf("number", "1"),
		leaf("number", "2"),
	}}
	if value := v.Visit(nil, tree); value != 2 {
		t.Errorf("expected the last child's result, got %v", value)
	}
}

func TestCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.visitor")
	defer teardown()
	//
	called := false
	v := New()
	v.On("number", func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		return 7
	})
	v.On("expr", Collapse(func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		called = true
		return nil
	}))
	unit := &dslkit.ParseTree{Kind: "expr", Children: []dslkit.Node{leaf("number", "7")}}
	if value := v.Visit(nil, unit); value != 7 {
		t.Errorf("expected the unit production to delegate to its child, got %v", value)
	}
	if called {
		t.Error("expected the wrapped handler not to run for a single child")
	}
}

// The arithmetic end-to-end scenario: parse and evaluate left-associatively.
func TestEvaluateExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.visitor")
	defer teardown()
	//
	lx, err := lexer.New(
		lexer.Terminal{Type: "number", Pattern: `[0-9]+`},
		lexer.Terminal{Type: "add", Pattern: `[+\-]`},
		lexer.Terminal{Type: "mul", Pattern: `[*/]`},
		lexer.Terminal{Type: dslkit.TypeWhitespace, Pattern: `\s+`},
	)
	if err != nil {
		t.Fatal(err)
	}
	p, err := slr.NewParser(lr.RuleSet{
		"root":    {{"addExpr"}},
		"addExpr": {{"addExpr", "add", "mulExpr"}, {"mulExpr"}},
		"mulExpr": {{"mulExpr", "mul", "number"}, {"number"}},
	}, "root")
	if err != nil {
		t.Fatal(err)
	}
	tree, err := p.Parse(lx, lx.Split("3 + 2 * 1", nil))
	if err != nil {
		t.Fatal(err)
	}
	v := New()
	v.On("number", func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		n, _ := strconv.Atoi(node.(*dslkit.LexTree).Text())
		return n
	})
	binop := Collapse(func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		children := node.(*dslkit.ParseTree).Children
		left := v.Visit(state, children[0]).(int)
		right := v.Visit(state, children[2]).(int)
		switch children[1].(*dslkit.LexTree).Text() {
		case "+":
			return left + right
		case "-":
			return left - right
		case "*":
			return left * right
		}
		return left / right
	})
	v.On("addExpr", binop)
	v.On("mulExpr", binop)
	if value := v.Visit(nil, tree); value != 5 {
		t.Errorf("3 + 2 * 1 = %v, expected 5", value)
	}
}
