package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/dslkit"
)

// Rule is one alternative right-hand side for a non-terminal: an ordered,
// non-empty list of element names. An element is a non-terminal key of the
// RuleSet, a terminal type, or a literal (promoted to a terminal at parse
// time). A trailing '?', '*' or '+' quantifies the element's base name.
type Rule []string

// RuleSet maps non-terminal names to their productions.
type RuleSet map[string][]Rule

// Base strips a trailing quantifier from an element name.
func Base(el string) string {
	if len(el) > 1 {
		switch el[len(el)-1] {
		case '?', '*', '+':
			return el[:len(el)-1]
		}
	}
	return el
}

// CanOmit reports whether an element may match zero symbols ('?' or '*').
func CanOmit(el string) bool {
	if len(el) > 1 {
		return el[len(el)-1] == '?' || el[len(el)-1] == '*'
	}
	return false
}

// CanRepeat reports whether an element may match more than one consecutive
// symbol ('*' or '+').
func CanRepeat(el string) bool {
	if len(el) > 1 {
		return el[len(el)-1] == '*' || el[len(el)-1] == '+'
	}
	return false
}

// Grammar is a validated rule set with a start symbol. It is immutable
// after construction.
type Grammar struct {
	rules     RuleSet
	start     string
	nonterms  []string // sorted non-terminal names
	terminals []string // sorted terminal symbols occurring in rules
}

// NewGrammar validates a rule set and classifies its symbols. Every element
// base which is not a key of the rule set counts as a terminal. Validation
// fails with GRAMMAR_EMPTY_RULE for a non-terminal without productions, a
// production without elements, or an element without a base name, and for a
// start symbol not defined in the rule set.
func NewGrammar(rules RuleSet, start string) (*Grammar, error) {
	if _, ok := rules[start]; !ok {
		return nil, dslkit.NewGrammarError(dslkit.ErrGrammarEmptyRule,
			"start symbol %q has no productions", start)
	}
	g := &Grammar{rules: rules, start: start}
	termset := map[string]bool{}
	for key, productions := range rules {
		if len(productions) == 0 {
			return nil, dslkit.NewGrammarError(dslkit.ErrGrammarEmptyRule,
				"non-terminal %q has no productions", key)
		}
		for _, rule := range productions {
			if len(rule) == 0 {
				return nil, dslkit.NewGrammarError(dslkit.ErrGrammarEmptyRule,
					"non-terminal %q has an empty rule", key)
			}
			for _, el := range rule {
				b := Base(el)
				if b == "" {
					return nil, dslkit.NewGrammarError(dslkit.ErrGrammarEmptyRule,
						"rule %q → %v has an element without a name", key, rule)
				}
				if _, isNonterm := rules[b]; !isNonterm {
					termset[b] = true
				}
			}
		}
		g.nonterms = append(g.nonterms, key)
	}
	sort.Strings(g.nonterms)
	for t := range termset {
		g.terminals = append(g.terminals, t)
	}
	sort.Strings(g.terminals)
	return g, nil
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// IsTerminal reports whether a symbol is a terminal of this grammar, i.e.
// not defined as a non-terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	_, isNonterm := g.rules[sym]
	return !isNonterm
}

// Terminals returns the terminal symbols occurring in the rules, sorted.
func (g *Grammar) Terminals() []string {
	return g.terminals
}

// Nonterminals returns the defined non-terminal names, sorted.
func (g *Grammar) Nonterminals() []string {
	return g.nonterms
}

// Productions returns the alternatives for a non-terminal, in declaration
// order.
func (g *Grammar) Productions(key string) []Rule {
	return g.rules[key]
}

// Dump logs the grammar through the tracer, for debugging.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar with start symbol %q:", g.start)
	n := 0
	for _, key := range g.nonterms {
		for _, rule := range g.rules[key] {
			tracer().Debugf("%3d: [%s] ::= [%s]", n, key, strings.Join(rule, " "))
			n++
		}
	}
}
