package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/dslkit"
)

// item is a dotted rule: a production with a cursor position indicating how
// much of it has been recognized. Two items are equal when all three fields
// are structurally equal.
type item struct {
	Key      string
	Children Rule
	Dot      int
}

func (it item) complete() bool {
	return it.Dot >= len(it.Children)
}

// peek returns the (possibly quantified) element at the dot.
func (it item) peek() string {
	return it.Children[it.Dot]
}

func (it item) String() string {
	rhs := append([]string{}, it.Children[:it.Dot]...)
	rhs = append(rhs, "•")
	rhs = append(rhs, it.Children[it.Dot:]...)
	return fmt.Sprintf("%s → %s", it.Key, strings.Join(rhs, " "))
}

// itemHash interns an item by structural content.
func itemHash(it item) string {
	return fmt.Sprintf("%x", structhash.Md5(it, 1))
}

// skipOmit emits the item itself plus one additional item per consecutive
// omissible element at the dot, with the dot advanced past each. This folds
// the nullability of '?' and '*' directly into the item sets, so no
// separate epsilon handling is needed downstream.
func skipOmit(it item) []item {
	items := []item{it}
	for d := it.Dot; d < len(it.Children); d++ {
		if !CanOmit(it.Children[d]) {
			break
		}
		items = append(items, item{Key: it.Key, Children: it.Children, Dot: d + 1})
	}
	return items
}

// --- Item sets --------------------------------------------------------------

// state is an ordered list of items, treated as a set by structural
// equality. Item order defines the item indices which reduce actions and
// 'came from' maps refer to.
type state struct {
	items  []item
	hashes []string
	lookup map[string]int
	sig    string
}

func newState() *state {
	return &state{lookup: make(map[string]int)}
}

// add appends an item unless it is already present, returning its index and
// whether it was added.
func (s *state) add(it item) (int, bool) {
	h := itemHash(it)
	if idx, ok := s.lookup[h]; ok {
		return idx, false
	}
	idx := len(s.items)
	s.items = append(s.items, it)
	s.hashes = append(s.hashes, h)
	s.lookup[h] = idx
	s.sig = ""
	return idx, true
}

// signature interns the state by its item set, ignoring item order.
func (s *state) signature() string {
	if s.sig == "" {
		sorted := append([]string{}, s.hashes...)
		sort.Strings(sorted)
		s.sig = fmt.Sprintf("%x", structhash.Md5(sorted, 1))
	}
	return s.sig
}

func (s *state) dump() {
	for i, it := range s.items {
		tracer().Debugf("  [%d] %v", i, it)
	}
}

// --- Closure and goto-set operations ----------------------------------------

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc,
// Jr., Section 6.2.1 LR(0) Parsing. Quantifier semantics are integrated
// directly into closure and goto instead of rewriting the grammar.

// closure computes the item-set closure of the seed items, breadth-first.
// The resulting order defines the item indices used by reduce actions.
func (g *Grammar) closure(seed ...item) *state {
	s := newState()
	for _, it := range seed {
		for _, d := range skipOmit(it) {
			s.add(d)
		}
	}
	g.expandClosure(s)
	return s
}

// expandClosure adds, for every item with a non-terminal A at the dot, the
// skipOmit chain of every production of A at dot zero.
func (g *Grammar) expandClosure(s *state) {
	for i := 0; i < len(s.items); i++ {
		it := s.items[i]
		if it.complete() {
			continue
		}
		a := Base(it.peek())
		if g.IsTerminal(a) {
			continue
		}
		for _, rule := range g.Productions(a) {
			for _, d := range skipOmit(item{Key: a, Children: rule, Dot: 0}) {
				s.add(d)
			}
		}
	}
}

// gotoSet computes the successor item set of src under the symbol el,
// together with the 'came from' map of the transition: for each produced
// item which is a direct successor of a source item (a member of the
// skipOmit chain of the advanced item, not merely introduced by closure),
// cameFrom maps its index in the produced state to the index of the source
// item in src. A repeatable element at the dot additionally produces the
// item with the dot left in place, after the advanced one, which is how
// '*' and '+' loop in the automaton.
//
// Two distinct source items mapping to the same produced item cannot share
// a repetition counter; this is reported as a reduce/reduce conflict.
func (g *Grammar) gotoSet(src *state, el string) (*state, map[int]int, error) {
	dst := newState()
	cameFrom := make(map[int]int)
	for si, it := range src.items {
		if it.complete() || Base(it.peek()) != el {
			continue
		}
		successors := []item{{Key: it.Key, Children: it.Children, Dot: it.Dot + 1}}
		if CanRepeat(it.peek()) {
			successors = append(successors, it) // stay on the repeated element
		}
		for _, succ := range successors {
			for _, d := range skipOmit(succ) {
				idx, _ := dst.add(d)
				if prev, ok := cameFrom[idx]; ok && prev != si {
					return nil, nil, dslkit.NewGrammarError(dslkit.ErrLRConflict,
						"reduce/reduce conflict for rule %q → %v: "+
							"item %v reached from two items of one state", it.Key, it.Children, d)
				}
				cameFrom[idx] = si
			}
		}
	}
	g.expandClosure(dst)
	return dst, cameFrom, nil
}
