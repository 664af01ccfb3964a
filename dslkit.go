package dslkit

import (
	"fmt"
	"strings"
)

// --- Tree nodes -------------------------------------------------------------

// Reserved token type names. Clients must not declare terminals with these
// names, except for TypeWhitespace, which marks tokens the parser discards.
const (
	TypeEOF        = "$"          // end of input
	TypeWhitespace = "whitespace" // discarded by the parse runtime
	TypeUnknown    = "unknown"    // an unlexed input line, lexed on demand
	TypeIndent     = "indent"     // offside mode: indentation level opened
	TypeDedent     = "dedent"     // offside mode: indentation level closed
)

// Node is the common interface of lexed and parsed tree nodes. A parse tree
// is a tree of ParseTree nodes with LexTree leaves.
type Node interface {
	Type() string
	Position() (line, index int) // 0-based line and column of the leftmost leaf
}

// LexTree is a leaf node, produced by a Lexer. Match[0] holds the full
// matched text, followed by the pattern's capture groups. Index is the
// 0-based column within the line, Line the 0-based line number.
type LexTree struct {
	Kind  string
	Match []string
	Index int
	Line  int
}

var _ Node = (*LexTree)(nil)

// Type returns the terminal type of the token.
func (t *LexTree) Type() string {
	return t.Kind
}

// Position returns the 0-based (line, column) of the token.
func (t *LexTree) Position() (int, int) {
	return t.Line, t.Index
}

// Text returns the full matched text of the token.
func (t *LexTree) Text() string {
	if len(t.Match) == 0 {
		return ""
	}
	return t.Match[0]
}

func (t *LexTree) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text())
}

// ParseTree is an internal node, produced by a parser reduction. Children
// are in source order.
type ParseTree struct {
	Kind     string
	Children []Node
}

var _ Node = (*ParseTree)(nil)

// Type returns the non-terminal this node was reduced to.
func (t *ParseTree) Type() string {
	return t.Kind
}

// Position returns the 0-based (line, column) of the leftmost leaf beneath
// this node. A childless node reports (0, 0).
func (t *ParseTree) Position() (int, int) {
	if len(t.Children) == 0 {
		return 0, 0
	}
	return t.Children[0].Position()
}

func (t *ParseTree) String() string {
	var b strings.Builder
	b.WriteString(t.Kind)
	b.WriteString("[")
	for i, ch := range t.Children {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", ch)
	}
	b.WriteString("]")
	return b.String()
}
