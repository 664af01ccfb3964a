/*
Package lexer implements a pattern-matching tokenizer for small DSLs.

A Lexer is constructed from an ordered list of Terminals, each a named
regular pattern. Patterns are matched anchored at the current input
position; declaration order is the tie-break when more than one terminal
matches. Besides straight tokenizing (Lex), the package supports deferred
lexing: Split and SplitOffside cut the input into raw line tokens which a
parser lexes on demand, passing back the set of terminal types it can
actually consume in its current state (ActiveSet). SplitOffside
additionally emits indent/dedent markers for indentation-sensitive
languages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dslkit.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("dslkit.lexer")
}

// Terminal is a named token pattern. Pattern is a regular expression in Go
// (RE2) syntax; the Lexer anchors it internally, so it matches at a given
// position only.
type Terminal struct {
	Type    string
	Pattern string
}

// Literal creates a terminal matching the given text verbatim. The terminal
// is named after its text. This is how undeclared grammar symbols are
// promoted to terminals.
func Literal(text string) Terminal {
	return Terminal{Type: text, Pattern: regexp.QuoteMeta(text)}
}

// ActiveSet restricts which terminal types a Lexer attempts to match.
// Parsers pass their current state's symbol set through this interface,
// letting the lexer skip terminals the grammar cannot consume at that
// point. Whitespace is always eligible.
type ActiveSet interface {
	Eligible(typ string) bool
}

// Lexer is a tokenizer over an ordered terminal list. It is immutable after
// construction and safe for concurrent reads.
type Lexer struct {
	terminals []Terminal
	patterns  []*regexp.Regexp
	types     map[string]bool
}

// New creates a Lexer from an ordered list of terminals. Each pattern is
// compiled anchored; an invalid pattern fails construction.
func New(terminals ...Terminal) (*Lexer, error) {
	lx := &Lexer{
		terminals: terminals,
		patterns:  make([]*regexp.Regexp, len(terminals)),
		types:     make(map[string]bool, len(terminals)),
	}
	for i, t := range terminals {
		if t.Type == dslkit.TypeEOF {
			return nil, fmt.Errorf("terminal type %q is reserved for end of input", t.Type)
		}
		re, err := regexp.Compile(`\A(?:` + t.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("terminal %q: invalid pattern: %v", t.Type, err)
		}
		lx.patterns[i] = re
		lx.types[t.Type] = true
	}
	return lx, nil
}

// Has reports whether a terminal type is declared in this Lexer.
func (lx *Lexer) Has(typ string) bool {
	return lx.types[typ]
}

// Extend returns a derived Lexer with additional terminals appended after
// the declared ones. Terminals whose type is already declared are skipped.
// The receiver is left untouched.
func (lx *Lexer) Extend(extra ...Terminal) (*Lexer, error) {
	terminals := append([]Terminal{}, lx.terminals...)
	for _, t := range extra {
		if lx.types[t.Type] {
			continue
		}
		terminals = append(terminals, t)
	}
	if len(terminals) == len(lx.terminals) {
		return lx, nil
	}
	return New(terminals...)
}

// Next scans the terminals in declaration order and returns the first whose
// pattern matches input at index. The token's position is (line, index). If
// active is non-nil, only terminals whose type is eligible are attempted;
// whitespace is attempted regardless. At end of input a synthetic '$' token
// is returned. If no terminal matches, or a terminal matches zero
// characters, Next fails with LEX_UNRECOGNIZED.
func (lx *Lexer) Next(input string, index, line int, active ActiveSet) (*dslkit.LexTree, error) {
	return lx.nextAt(input, index, line, index, active)
}

// nextAt matches at byte position pos, stamping the produced token with
// (line, col). Next and Lex diverge only in how they account columns.
func (lx *Lexer) nextAt(input string, pos, line, col int, active ActiveSet) (*dslkit.LexTree, error) {
	if pos >= len(input) {
		return &dslkit.LexTree{
			Kind:  dslkit.TypeEOF,
			Match: []string{""},
			Index: col,
			Line:  line,
		}, nil
	}
	rest := input[pos:]
	for i, t := range lx.terminals {
		if active != nil && t.Type != dslkit.TypeWhitespace && !active.Eligible(t.Type) {
			continue
		}
		m := lx.patterns[i].FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		if len(m[0]) == 0 {
			return nil, dslkit.NewParseError(dslkit.ErrLexUnrecognized,
				fmt.Sprintf("terminal %q matched zero characters", t.Type), line, col)
		}
		tracer().Debugf("lexed %s %q at %d:%d", t.Type, m[0], line, col)
		return &dslkit.LexTree{
			Kind:  t.Type,
			Match: m,
			Index: col,
			Line:  line,
		}, nil
	}
	return nil, dslkit.NewParseError(dslkit.ErrLexUnrecognized,
		fmt.Sprintf("unrecognized input %q", abbrev(rest)), line, col)
}

// Lex tokenizes the complete input, advancing over each match and tracking
// line/column positions across newlines. It terminates with the synthetic
// '$' token included as the last element.
func (lx *Lexer) Lex(input string) ([]*dslkit.LexTree, error) {
	var tokens []*dslkit.LexTree
	pos, line, col := 0, 0, 0
	for {
		token, err := lx.nextAt(input, pos, line, col, nil)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Kind == dslkit.TypeEOF {
			return tokens, nil
		}
		text := token.Match[0]
		pos += len(text)
		for _, ch := range text {
			if ch == '\n' {
				line++
				col = 0
			} else {
				col++
			}
		}
	}
}

func abbrev(s string) string {
	if len(s) > 10 {
		return s[:10] + "…"
	}
	return s
}
