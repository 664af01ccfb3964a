/*
Package lexmach is a lexmachine adapter for batch tokenizing.

It produces the same token shape as lexer.Lex, but matches with a compiled
DFA instead of trying anchored patterns one by one. This makes it a better
fit for token streams that do not need per-state active-terminal feedback,
e.g. when the whole input is lexed up front.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

import (
	"strings"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'dslkit.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("dslkit.lexer")
}

// Adapter wraps a compiled lexmachine DFA.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// New creates a lexmachine adapter. init registers the patterns for named
// terminals (using MakeToken and Skip as actions); literals are added
// afterwards with their text escaped, each producing a token named after
// its text.
//
// New will return an error if compiling the DFA failed.
func New(init func(*lexmachine.Lexer), literals []string) (*Adapter, error) {
	adapter := &Adapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Lex tokenizes the complete input, terminating with the synthetic '$'
// token. Unmatchable input fails with LEX_UNRECOGNIZED.
func (lm *Adapter) Lex(input string) ([]*dslkit.LexTree, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []*dslkit.LexTree
	line, col := 0, 0
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, dslkit.NewParseError(dslkit.ErrLexUnrecognized,
					"unrecognized input", ui.FailLine-1, ui.FailColumn-1)
			}
			return nil, err
		}
		if tok != nil { // nil for skipped matches
			token := tok.(*dslkit.LexTree)
			tracer().Debugf("lexed %s %q at %d:%d", token.Kind, token.Text(), token.Line, token.Index)
			tokens = append(tokens, token)
			line, col = token.Line, token.Index+len(token.Text())
		}
		tok, err, eof = s.Next()
	}
	tokens = append(tokens, &dslkit.LexTree{
		Kind:  dslkit.TypeEOF,
		Match: []string{""},
		Index: col,
		Line:  line,
	})
	return tokens, nil
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a
// token of the given type. Positions are converted to 0-based.
func MakeToken(typ string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return &dslkit.LexTree{
			Kind:  typ,
			Match: []string{string(m.Bytes)},
			Index: m.StartColumn - 1,
			Line:  m.StartLine - 1,
		}, nil
	}
}
