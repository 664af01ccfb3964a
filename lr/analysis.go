package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/dslkit"
)

// Analysis holds the FIRST and FOLLOW sets of a grammar. Create one with
// Analyze. Although the sets are mainly intended for internal use during
// table construction, First and Follow are public.
type Analysis struct {
	g      *Grammar
	first  map[string]*treeset.Set
	follow map[string]*treeset.Set
}

// Analyze computes FIRST and FOLLOW sets for a grammar, iterating to a
// fixpoint. Quantifier semantics are folded in: an omissible element does
// not terminate a FIRST scan, and a repeatable element may be followed by
// another instance of itself.
func Analyze(g *Grammar) *Analysis {
	ga := &Analysis{
		g:      g,
		first:  make(map[string]*treeset.Set),
		follow: make(map[string]*treeset.Set),
	}
	ga.computeFirst()
	ga.computeFollow()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(sym) as a sorted slice: the terminals which can begin
// a derivation of sym. For a terminal this is the terminal itself.
func (ga *Analysis) First(sym string) []string {
	return symbols(ga.first[sym])
}

// Follow returns FOLLOW(sym) as a sorted slice: the terminals which can
// appear immediately after sym in some derivation.
func (ga *Analysis) Follow(sym string) []string {
	return symbols(ga.follow[sym])
}

func (ga *Analysis) computeFirst() {
	for _, t := range ga.g.Terminals() {
		ga.first[t] = treeset.NewWithStringComparator(t)
	}
	for _, key := range ga.g.Nonterminals() {
		ga.first[key] = treeset.NewWithStringComparator()
	}
	for changed := true; changed; {
		changed = false
		for _, key := range ga.g.Nonterminals() {
			for _, rule := range ga.g.Productions(key) {
				for _, el := range rule {
					if union(ga.first[key], ga.first[Base(el)]) {
						changed = true
					}
					if !CanOmit(el) {
						break
					}
				}
			}
		}
	}
}

func (ga *Analysis) computeFollow() {
	for _, key := range ga.g.Nonterminals() {
		ga.follow[key] = treeset.NewWithStringComparator()
	}
	ga.follow[ga.g.Start()].Add(dslkit.TypeEOF)
	for changed := true; changed; {
		changed = false
		for _, key := range ga.g.Nonterminals() {
			for _, rule := range ga.g.Productions(key) {
				for i, el := range rule {
					b := Base(el)
					if ga.g.IsTerminal(b) {
						continue
					}
					if CanRepeat(el) {
						if union(ga.follow[b], ga.first[b]) {
							changed = true
						}
					}
					rest := rule[i+1:]
					j := 0
					for ; j < len(rest); j++ {
						if union(ga.follow[b], ga.first[Base(rest[j])]) {
							changed = true
						}
						if !CanOmit(rest[j]) {
							break
						}
					}
					if j == len(rest) { // scan fell past the end of the rule
						if union(ga.follow[b], ga.follow[key]) {
							changed = true
						}
					}
				}
			}
		}
	}
}

// union adds all members of src to dst, reporting whether dst grew.
func union(dst, src *treeset.Set) bool {
	if src == nil {
		return false
	}
	before := dst.Size()
	for _, v := range src.Values() {
		dst.Add(v)
	}
	return dst.Size() > before
}

func symbols(set *treeset.Set) []string {
	if set == nil {
		return nil
	}
	values := set.Values()
	syms := make([]string, len(values))
	for i, v := range values {
		syms[i] = v.(string)
	}
	return syms
}
