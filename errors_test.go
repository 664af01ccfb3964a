package dslkit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "testing"

func TestParseErrorPosition(t *testing.T) {
	err := NewParseError(ErrParseNoAction, "unexpected token", 2, 7)
	if err.Error() != "unexpected token at line 3:8" {
		t.Errorf("expected 1-based position rendering, got %q", err.Error())
	}
}

func TestParseErrorWithoutPosition(t *testing.T) {
	err := NewGrammarError(ErrGrammarEmptyRule, "non-terminal %q has no productions", "expr")
	if err.Error() != `non-terminal "expr" has no productions` {
		t.Errorf("expected message without position, got %q", err.Error())
	}
	if err.Code != ErrGrammarEmptyRule {
		t.Errorf("expected code GRAMMAR_EMPTY_RULE, got %s", err.Code)
	}
}

func TestParseErrorFromTree(t *testing.T) {
	leaf := &LexTree{Kind: "number", Match: []string{"42"}, Index: 4, Line: 1}
	tree := &ParseTree{Kind: "sum", Children: []Node{
		&ParseTree{Kind: "term", Children: []Node{leaf}},
		&LexTree{Kind: "+", Match: []string{"+"}, Index: 7, Line: 1},
	}}
	err := ParseErrorFromTree(ErrParseNoAction, "unexpected sum", tree)
	if err.Line != 1 || err.Index != 4 {
		t.Errorf("expected position of leftmost leaf (1,4), got (%d,%d)", err.Line, err.Index)
	}
}

func TestTreePosition(t *testing.T) {
	leaf := &LexTree{Kind: "x", Match: []string{"x"}, Index: 3, Line: 0}
	line, index := leaf.Position()
	if line != 0 || index != 3 {
		t.Errorf("leaf position = (%d,%d)", line, index)
	}
	empty := &ParseTree{Kind: "empty"}
	if l, i := empty.Position(); l != 0 || i != 0 {
		t.Errorf("childless node position = (%d,%d)", l, i)
	}
}
