/*
Package slr provides the table-driven shift/reduce parser runtime. Clients
construct a Parser from a rule set and a start symbol; grammar analysis and
action-table construction from package lr happen under the hood.

This parser is intended for small to moderate grammars, e.g. for
configuration input or small domain-specific languages. It is *not*
intended for full-fledged programming languages (there are superb other
tools around for these kinds of usages, usually creating LALR(1)-parsers,
which are able to recognize a super-set of the languages handled here).

The main focus for this implementation is adaptability and on-the-fly
usage. Clients are able to construct a parser from a grammar and use it
directly, without a code-generation or compile step. If you want, you can
create a grammar from user input and use a parser for it in a couple of
lines of code.

Usage

Clients define terminals and rules, then parse:

	lx, err := lexer.New(
		lexer.Terminal{Type: "number", Pattern: `[0-9]+`},
		lexer.Terminal{Type: "whitespace", Pattern: `\s+`},
	)
	p, err := slr.NewParser(lr.RuleSet{
		"sum": {{"sum", "+", "number"}, {"number"}},
	}, "sum")
	tree, err := p.Parse(lx, lx.Split("1 + 2", nil))

Two couplings with the lexer are worth noting. First, input lines arrive
as raw 'unknown' tokens (from Split or SplitOffside) and are lexed on
demand; the parser passes the symbol set of its current state to the
lexer, so terminals the state can consume are attempted first. A line
the restricted set cannot match is re-lexed against all terminals, and
the resulting token then fails the action lookup with its position.
Second, each shift action carries a 'came from' map along
which the parser counts the symbols read under each rule, so reductions
of rules with quantified elements pop exactly the number of symbols that
were matched.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"fmt"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/dslkit/lexer"
	"github.com/npillmayer/dslkit/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dslkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("dslkit.lr")
}

// Parser is a table-driven shift/reduce parser. Create and initialize one
// with slr.NewParser. A Parser is immutable after construction; the state
// of a parse is local to one Parse call, so a failed parse leaves the
// Parser usable and instances may be reused.
type Parser struct {
	g       *lr.Grammar
	table   lr.Table
	version string
}

// Option configures a Parser during construction.
type Option func(*Parser)

// TableVersion enables action-table persistence under a version tag. On
// construction the table is rehydrated from dsl-parser_v<version>.json in
// the working directory if present, otherwise built and persisted there.
func TableVersion(version string) Option {
	return func(p *Parser) {
		p.version = version
	}
}

// NewParser creates a parser for a rule set and start symbol. The grammar
// is validated and analysed and the action table is built (or loaded, see
// TableVersion); construction fails with GRAMMAR_EMPTY_RULE or LR_CONFLICT
// diagnostics.
func NewParser(rules lr.RuleSet, start string, opts ...Option) (*Parser, error) {
	g, err := lr.NewGrammar(rules, start)
	if err != nil {
		return nil, err
	}
	p := &Parser{g: g}
	for _, opt := range opts {
		opt(p)
	}
	if p.version != "" {
		table, found, err := lr.LoadTable(p.version)
		if err != nil {
			return nil, err
		}
		if found {
			p.table = table
			return p, nil
		}
	}
	g.Dump()
	if p.table, err = lr.NewTableGenerator(lr.Analyze(g)).BuildTable(); err != nil {
		return nil, err
	}
	if p.version != "" {
		if err = lr.SaveTable(p.table, p.version); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Table returns the parser's action table.
func (p *Parser) Table() lr.Table {
	return p.table
}

// activeRow passes an action-table row to the lexer as an opaque set of
// eligible symbol types.
type activeRow lr.Row

func (row activeRow) Eligible(typ string) bool {
	_, ok := row[typ]
	return ok
}

// promote derives a lexer which additionally matches the grammar terminals
// the given lexer does not declare, each as a verbatim literal. The given
// lexer is left untouched.
func (p *Parser) promote(lx *lexer.Lexer) (*lexer.Lexer, error) {
	var extra []lexer.Terminal
	for _, t := range p.g.Terminals() {
		switch t {
		case dslkit.TypeEOF, dslkit.TypeIndent, dslkit.TypeDedent:
			continue // never lexed from line text
		}
		if !lx.Has(t) {
			extra = append(extra, lexer.Literal(t))
		}
	}
	return lx.Extend(extra...)
}

// Parse consumes a token stream, as produced by Split or SplitOffside
// (raw 'unknown' line tokens interleaved with any pre-emitted indent,
// dedent and '$' markers), and returns the parse tree of the start symbol.
// Tokens of type 'unknown' are lexed on demand with lx, restricted to the
// terminals acceptable in the parser's current state; if the restricted
// attempt matches nothing, the line is re-lexed against all terminals.
// Whitespace tokens are discarded. Parse fails with PARSE_NO_ACTION,
// carrying the offending token's position, when the action table has no
// entry for the current (state, lookahead) pair, and with
// LEX_UNRECOGNIZED when the input matches no terminal at all.
func (p *Parser) Parse(lx *lexer.Lexer, tokens []*dslkit.LexTree) (*dslkit.ParseTree, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	elx, err := p.promote(lx)
	if err != nil {
		return nil, err
	}
	symbols := make([]dslkit.Node, 0, 64) // tree nodes seen so far
	states := append(make([]int, 0, 64), 0)
	reads := append(make([]map[int]int, 0, 64), map[int]int{})
	i := 0     // cursor into the line-token sequence
	index := 0 // column within the current 'unknown' line
	var lexToken *dslkit.LexTree
	consume := func() {
		if lexToken != nil {
			lexToken = nil
		} else {
			i++
		}
	}
	for {
		if i >= len(tokens) {
			return nil, fmt.Errorf("token stream exhausted without end-of-input marker")
		}
		token := lexToken
		if token == nil {
			token = tokens[i]
		}
		if token.Kind == dslkit.TypeUnknown {
			row := p.table[states[len(states)-1]]
			inner, err := elx.Next(token.Text(), index, token.Line, activeRow(row))
			if perr, ok := err.(*dslkit.ParseError); ok && perr.Code == dslkit.ErrLexUnrecognized {
				// The restricted set matched nothing; retry against all
				// terminals. A well-formed token the state cannot consume
				// must reach the action-table lookup below.
				if inner, err = elx.Next(token.Text(), index, token.Line, nil); err != nil {
					return nil, perr
				}
			} else if err != nil {
				return nil, err
			}
			if inner.Kind == dslkit.TypeEOF { // line is exhausted
				i++
				lexToken = nil
				index = 0
				continue
			}
			index += len(inner.Text())
			lexToken = inner
			token = inner
		}
		if token.Kind == dslkit.TypeWhitespace {
			consume()
			continue
		}
		row := p.table[states[len(states)-1]]
		action, ok := row[token.Kind]
		if !ok {
			return nil, dslkit.ParseErrorFromTree(dslkit.ErrParseNoAction,
				fmt.Sprintf("unexpected %s %q", token.Kind, token.Text()), token)
		}
		tracer().Debugf("action(%d,%s) = %s", states[len(states)-1], token.Kind, action.Op)
		if action.Op == lr.AcceptAction {
			return acceptResult(action.Key, symbols), nil
		}
		if action.Op == lr.ShiftAction {
			symbols = append(symbols, token)
			consume()
		}
		for action.Op == lr.ReduceAction {
			n := reads[len(reads)-1][action.Rule] // symbols read under the completed item
			tracer().Debugf("reduce %s, popping %d symbols", action.Key, n)
			children := make([]dslkit.Node, n)
			copy(children, symbols[len(symbols)-n:])
			symbols = symbols[:len(symbols)-n]
			states = states[:len(states)-n]
			reads = reads[:len(reads)-n]
			parent := &dslkit.ParseTree{Kind: action.Key, Children: children}
			symbols = append(symbols, parent)
			next, ok := p.table[states[len(states)-1]][parent.Kind]
			if !ok || next.Op != lr.ReduceAction && next.Op != lr.ShiftAction {
				return nil, dslkit.ParseErrorFromTree(dslkit.ErrParseNoAction,
					fmt.Sprintf("unexpected %s", parent.Kind), token)
			}
			action = next // the goto for the reduced non-terminal
		}
		prev := reads[len(reads)-1]
		entry := make(map[int]int, len(action.CameFrom))
		for r, from := range action.CameFrom {
			entry[r] = prev[from] + 1
		}
		states = append(states, action.Goto)
		reads = append(reads, entry)
	}
}

// acceptResult returns the top symbol-stack element as the start node. An
// element that already is a node of the start symbol is returned as is;
// any other element is wrapped in a new start node.
func acceptResult(key string, symbols []dslkit.Node) *dslkit.ParseTree {
	node := symbols[len(symbols)-1]
	if tree, ok := node.(*dslkit.ParseTree); ok && tree.Kind == key {
		return tree
	}
	return &dslkit.ParseTree{Kind: key, Children: []dslkit.Node{node}}
}
