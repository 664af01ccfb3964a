/*
Package visitor walks parse trees by node type. Clients register one
function per node type they care about and let everything else fall
through to the children:

	v := visitor.New()
	v.On("number", func(v *visitor.Visitor, state interface{}, node dslkit.Node) interface{} {
		n, _ := strconv.Atoi(node.(*dslkit.LexTree).Text())
		return n
	})
	value := v.Visit(nil, tree)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package visitor

import (
	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dslkit.visitor'.
func tracer() tracing.Trace {
	return tracing.Select("dslkit.visitor")
}

// Func handles one node during a tree walk. It receives the visitor it is
// registered with, the client state threaded through the walk, and the node
// itself. The returned value is propagated to the parent's handler.
type Func func(v *Visitor, state interface{}, node dslkit.Node) interface{}

// Visitor dispatches on node type. The zero Visitor is not usable; create
// one with New. Registration is not safe for concurrent use, but a fully
// registered Visitor may be shared between walks.
type Visitor struct {
	handlers map[string]Func
}

// New creates an empty visitor.
func New() *Visitor {
	return &Visitor{handlers: make(map[string]Func)}
}

// On registers fn as the handler for nodes of the given type, replacing any
// previous handler. It returns the visitor for chaining.
func (v *Visitor) On(typ string, fn Func) *Visitor {
	v.handlers[typ] = fn
	return v
}

// Visit dispatches a node to the handler registered for its type. A node
// without a handler falls through to VisitChildren; a leaf without a
// handler yields nil.
func (v *Visitor) Visit(state interface{}, node dslkit.Node) interface{} {
	if fn, ok := v.handlers[node.Type()]; ok {
		tracer().Debugf("visit %s", node.Type())
		return fn(v, state, node)
	}
	if tree, ok := node.(*dslkit.ParseTree); ok {
		return v.VisitChildren(state, tree)
	}
	return nil
}

// VisitChildren visits every child of a tree node in source order and
// returns the result of the last one, nil for a node without children.
func (v *Visitor) VisitChildren(state interface{}, tree *dslkit.ParseTree) interface{} {
	var value interface{}
	for _, ch := range tree.Children {
		value = v.Visit(state, ch)
	}
	return value
}

// Collapse wraps a handler for a node type with unit productions: when the
// node has exactly one child, the child is dispatched instead of fn. This
// keeps handlers for expression-grammar chains like expr → term → factor
// free of pass-through boilerplate.
func Collapse(fn Func) Func {
	return func(v *Visitor, state interface{}, node dslkit.Node) interface{} {
		if tree, ok := node.(*dslkit.ParseTree); ok && len(tree.Children) == 1 {
			return v.Visit(state, tree.Children[0])
		}
		return fn(v, state, node)
	}
}
