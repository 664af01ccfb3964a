/*
Package lr implements prerequisites for LR parsing of small DSL grammars.

Building a Grammar

Grammars are given as a RuleSet: a mapping from non-terminal names to
alternative productions, where each production is an ordered list of
element names. An element name ending in '?', '*' or '+' applies that
quantifier to its base name. Elements which are neither defined as
non-terminals nor declared as terminals of a lexer are promoted to
string-literal terminals, matched verbatim.

Example:

    rules := lr.RuleSet{
        "list": {{"[", "item*", "]"}},
        "item": {{"a"}},
    }
    g, err := lr.NewGrammar(rules, "list")

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an Analysis object, which computes FIRST and
FOLLOW sets, with the quantifier semantics folded in (an optional element
does not terminate a FIRST scan, a repeatable element may be followed by
itself).

    ga := lr.Analyze(g)
    ga.First("list")    // => ["["]
    ga.Follow("item")   // => ["]", "a"]

Parser Table Construction

Using grammar analysis as input, the action table for a bottom-up parser
is constructed. Closure and goto of LR(0) item sets integrate the
quantifier semantics directly: nullability of '?' and '*' is folded into
the item sets (skipping omissible elements), and repeatable elements loop
by producing a goto successor with the dot left in place. Each shift
action carries a 'came from' map linking successor items to their
predecessors, from which the parse runtime derives the variable width of
quantified reductions.

    table, err := lr.NewTableGenerator(ga).BuildTable()

Construction fails with an LR_CONFLICT error if the grammar is not
deterministic under SLR(1)-style FOLLOW reductions. The resulting table
may be persisted to disk and rehydrated on subsequent constructions, see
SaveTable and LoadTable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dslkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("dslkit.lr")
}
