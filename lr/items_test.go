package lr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSkipOmit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	it := item{Key: "list", Children: Rule{"[", "item*", "]"}, Dot: 1}
	items := skipOmit(it)
	if len(items) != 2 {
		t.Fatalf("expected the item plus one dot advance, got %d items", len(items))
	}
	if items[1].Dot != 2 {
		t.Errorf("expected dot advanced past the omissible element, got %d", items[1].Dot)
	}
	// a '+' element is not omissible
	it = item{Key: "list", Children: Rule{"[", "item+", "]"}, Dot: 1}
	if items = skipOmit(it); len(items) != 1 {
		t.Errorf("expected no dot advance over 'item+', got %d items", len(items))
	}
}

func TestStateSignatureIgnoresOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	a := item{Key: "s", Children: Rule{"x", "y"}, Dot: 0}
	b := item{Key: "s", Children: Rule{"x", "y"}, Dot: 1}
	s1, s2 := newState(), newState()
	s1.add(a)
	s1.add(b)
	s2.add(b)
	s2.add(a)
	if s1.signature() != s2.signature() {
		t.Error("expected item order not to affect the state signature")
	}
	s2.add(item{Key: "s", Children: Rule{"x", "y"}, Dot: 2})
	if s1.signature() == s2.signature() {
		t.Error("expected different item sets to have different signatures")
	}
}

func TestClosureOfStartItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	g, err := NewGrammar(exprRules(), "root")
	if err != nil {
		t.Fatal(err)
	}
	s := g.closure(item{Key: acceptKey, Children: Rule{"root"}, Dot: 0})
	// $accept → •root, root → •addExpr, two addExpr and two mulExpr rules
	if len(s.items) != 6 {
		t.Errorf("closure has %d items, expected 6", len(s.items))
	}
	if s.items[0].Key != acceptKey {
		t.Errorf("expected the seed item first, got %v", s.items[0])
	}
}

func TestGotoSetRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dslkit.lr")
	defer teardown()
	//
	g, err := NewGrammar(RuleSet{"list": {{"[", "item*", "]"}}, "item": {{"a"}}}, "list")
	if err != nil {
		t.Fatal(err)
	}
	src := g.closure(item{Key: "list", Children: Rule{"[", "item*", "]"}, Dot: 1})
	dst, cameFrom, err := g.gotoSet(src, "item")
	if err != nil {
		t.Fatal(err)
	}
	// the advanced item comes first, the stay-in-place item after it
	if dst.items[0].Dot != 2 {
		t.Errorf("expected the advanced item first, got %v", dst.items[0])
	}
	stay := item{Key: "list", Children: Rule{"[", "item*", "]"}, Dot: 1}
	if _, ok := dst.lookup[itemHash(stay)]; !ok {
		t.Error("expected the repeatable element to keep its item in the successor state")
	}
	if len(cameFrom) == 0 {
		t.Error("expected a non-empty 'came from' map for the transition")
	}
}
