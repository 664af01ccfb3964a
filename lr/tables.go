package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/dslkit"
)

// acceptKey is the key of the synthetic start rule seeding the canonical
// collection. Its single child is the user-supplied start symbol.
const acceptKey = "$accept"

// ActionOp discriminates the parser actions of a table cell.
type ActionOp string

// The three parser actions.
const (
	ShiftAction  ActionOp = "shift"
	ReduceAction ActionOp = "reduce"
	AcceptAction ActionOp = "accept"
)

// Action is one parser action.
//
// A shift carries the successor state and the 'came from' map of the
// transition: for each item index of the successor state which continues an
// item of the current state, the index of that predecessor item. The parse
// runtime increments a repetition counter along this chain, which yields the
// exact number of stack entries belonging to a rule at reduction time; a
// fixed rule length cannot express this once quantifiers are in play.
//
// A reduce names the non-terminal to reduce to and the index of the
// completed item within its state. An accept names the start symbol.
type Action struct {
	Op       ActionOp    `json:"op"`
	Goto     int         `json:"goto,omitempty"`
	CameFrom map[int]int `json:"cameFrom,omitempty"`
	Key      string      `json:"key,omitempty"`
	Rule     int         `json:"rule,omitempty"`
}

// Row maps a lookahead symbol name (terminal type or non-terminal) to the
// single action of a state for that symbol.
type Row map[string]Action

// Table is an action/goto table, indexed by state, then by lookahead
// symbol. It is immutable after construction and is also the exact form
// persisted to disk.
type Table []Row

// TableGenerator constructs the action table for an analysed grammar.
// Clients usually create a Grammar, an Analysis for it, and then a table
// generator; BuildTable computes the canonical LR(0) collection and emits
// the table.
type TableGenerator struct {
	g      *Grammar
	ga     *Analysis
	states *arraylist.List // of *state, in order of discovery
	signs  map[string]int  // state signature → state index
}

// NewTableGenerator creates a table generator for a previously analysed
// grammar.
func NewTableGenerator(ga *Analysis) *TableGenerator {
	return &TableGenerator{
		g:      ga.Grammar(),
		ga:     ga,
		states: arraylist.New(),
		signs:  make(map[string]int),
	}
}

// intern dedupes an item set against the canonical collection, adding it if
// new, and returns its state index together with the canonical state.
func (tg *TableGenerator) intern(s *state) (int, *state) {
	if idx, ok := tg.signs[s.signature()]; ok {
		v, _ := tg.states.Get(idx)
		return idx, v.(*state)
	}
	idx := tg.states.Size()
	tg.states.Add(s)
	tg.signs[s.signature()] = idx
	return idx, s
}

func (tg *TableGenerator) stateAt(i int) *state {
	v, _ := tg.states.Get(i)
	return v.(*state)
}

// BuildTable computes the canonical collection of item sets, seeded with
// the closure of the synthetic start item, and emits one action per
// (state, symbol) pair. Reduce actions are emitted for every terminal in
// FOLLOW of the completed rule's non-terminal. Construction fails with
// LR_CONFLICT naming the offending rule and both action kinds if a cell
// would hold two actions.
func (tg *TableGenerator) BuildTable() (Table, error) {
	tracer().Debugf("=== build action table ===========================================")
	s0 := tg.g.closure(item{Key: acceptKey, Children: Rule{tg.g.Start()}, Dot: 0})
	tg.intern(s0)
	var table Table
	for i := 0; i < tg.states.Size(); i++ {
		s := tg.stateAt(i)
		tracer().Debugf("--- state %03d ---------------------------", i)
		s.dump()
		row := Row{}
		table = append(table, row)
		for itemIdx, it := range s.items {
			if it.complete() {
				if err := tg.emitReduce(row, it, itemIdx); err != nil {
					return nil, err
				}
				continue
			}
			el := Base(it.peek())
			if prior, exists := row[el]; exists {
				if prior.Op != ShiftAction {
					return nil, conflict(it, prior.Op, ShiftAction)
				}
				continue // goto under el covers all items of this state
			}
			dst, cameFrom, err := tg.g.gotoSet(s, el)
			if err != nil {
				return nil, err
			}
			idx, canon := tg.intern(dst)
			row[el] = Action{
				Op:       ShiftAction,
				Goto:     idx,
				CameFrom: remap(cameFrom, dst, canon),
			}
			tracer().Debugf("action(%d,%s) = shift %d", i, el, idx)
		}
	}
	tracer().Debugf("table has %d states", tg.states.Size())
	return table, nil
}

// emitReduce emits the actions for a completed item: accept for the
// synthetic start rule, otherwise a reduce for every terminal in FOLLOW of
// the rule's non-terminal.
func (tg *TableGenerator) emitReduce(row Row, it item, itemIdx int) error {
	if it.Key == acceptKey {
		if prior, exists := row[dslkit.TypeEOF]; exists {
			return conflict(it, prior.Op, AcceptAction)
		}
		row[dslkit.TypeEOF] = Action{Op: AcceptAction, Key: tg.g.Start()}
		return nil
	}
	for _, la := range tg.ga.Follow(it.Key) {
		if prior, exists := row[la]; exists {
			return conflict(it, prior.Op, ReduceAction)
		}
		row[la] = Action{Op: ReduceAction, Key: it.Key, Rule: itemIdx}
	}
	return nil
}

// remap translates the produced-state item indices of a cameFrom map to the
// indices of the canonical state the produced state was deduped against.
func remap(cameFrom map[int]int, produced, canon *state) map[int]int {
	if produced == canon || len(cameFrom) == 0 {
		return cameFrom
	}
	mapped := make(map[int]int, len(cameFrom))
	for k, v := range cameFrom {
		mapped[canon.lookup[produced.hashes[k]]] = v
	}
	return mapped
}

func conflict(it item, prior, second ActionOp) error {
	return dslkit.NewGrammarError(dslkit.ErrLRConflict,
		"%s/%s conflict for rule %q → %v", prior, second, it.Key, it.Children)
}
