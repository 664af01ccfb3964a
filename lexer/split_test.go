package lexer

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"regexp"
	"testing"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lexer")
	defer teardown()
	//
	lx := makeLexer(t, Terminal{Type: "ident", Pattern: `[a-z]+`})
	tokens := lx.Split("ab\n# comment\ncd", regexp.MustCompile(`^#`))
	if len(tokens) != 3 {
		t.Fatalf("expected 2 line tokens plus '$', got %d tokens", len(tokens))
	}
	if tokens[0].Kind != dslkit.TypeUnknown || tokens[0].Text() != "ab" || tokens[0].Line != 0 {
		t.Errorf("line token #0 = %v", tokens[0])
	}
	if tokens[1].Kind != dslkit.TypeUnknown || tokens[1].Text() != "cd" || tokens[1].Line != 2 {
		t.Errorf("expected comment line to be dropped but counted, got %v", tokens[1])
	}
	if tokens[2].Kind != dslkit.TypeEOF || tokens[2].Line != 2 || tokens[2].Index != 2 {
		t.Errorf("'$' token = %v", tokens[2])
	}
}

func TestSplitOffside(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lexer")
	defer teardown()
	//
	lx := makeLexer(t, Terminal{Type: "ident", Pattern: `[a-z]+`})
	tokens, err := lx.SplitOffside("a\n  b\n  c\nd", nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		kind string
		text string
	}{
		{dslkit.TypeUnknown, "a"},
		{dslkit.TypeIndent, ""},
		{dslkit.TypeUnknown, "  b"},
		{dslkit.TypeUnknown, "  c"},
		{dslkit.TypeDedent, ""},
		{dslkit.TypeUnknown, "d"},
		{dslkit.TypeEOF, ""},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp.kind || tokens[i].Text() != exp.text {
			t.Errorf("token #%d = %s %q, expected %s %q", i,
				tokens[i].Kind, tokens[i].Text(), exp.kind, exp.text)
		}
	}
}

func TestSplitOffsideBlankLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lexer")
	defer teardown()
	//
	lx := makeLexer(t, Terminal{Type: "ident", Pattern: `[a-z]+`})
	tokens, err := lx.SplitOffside("a\n\n  b\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]string, len(tokens))
	for i, token := range tokens {
		kinds[i] = token.Kind
	}
	expected := []string{dslkit.TypeUnknown, dslkit.TypeIndent, dslkit.TypeUnknown,
		dslkit.TypeDedent, dslkit.TypeEOF}
	if len(kinds) != len(expected) {
		t.Fatalf("token kinds = %v", kinds)
	}
	for i, kind := range expected {
		if kinds[i] != kind {
			t.Fatalf("token kinds = %v, expected %v", kinds, expected)
		}
	}
}

func TestSplitOffsideIndentMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lexer")
	defer teardown()
	//
	lx := makeLexer(t, Terminal{Type: "ident", Pattern: `[a-z]+`})
	_, err := lx.SplitOffside("a\n    b\n  c", nil)
	perr, ok := err.(*dslkit.ParseError)
	if !ok || perr.Code != dslkit.ErrLexIndent {
		t.Fatalf("expected LEX_INDENT, got %v", err)
	}
	if perr.Line != 2 || perr.Index != 2 {
		t.Errorf("expected error at (2,2), got (%d,%d)", perr.Line, perr.Index)
	}
}
