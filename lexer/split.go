package lexer

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/dslkit"
)

var lineSplitter = regexp.MustCompile(`\r?\n`)

// Split cuts the input into raw line tokens of type 'unknown', deferring
// actual lexing until a parser can supply active-terminal context. Lines
// matching the optional comment pattern are dropped; line numbering still
// counts them. A synthetic '$' token is appended at the final position.
func (lx *Lexer) Split(input string, comment *regexp.Regexp) []*dslkit.LexTree {
	lines := lineSplitter.Split(input, -1)
	tokens := make([]*dslkit.LexTree, 0, len(lines)+1)
	for n, line := range lines {
		if comment != nil && comment.MatchString(line) {
			continue
		}
		tokens = append(tokens, &dslkit.LexTree{
			Kind:  dslkit.TypeUnknown,
			Match: []string{line},
			Index: 0,
			Line:  n,
		})
	}
	last := len(lines) - 1
	tokens = append(tokens, &dslkit.LexTree{
		Kind:  dslkit.TypeEOF,
		Match: []string{""},
		Index: len(lines[last]),
		Line:  last,
	})
	return tokens
}

// SplitOffside splits the input like Split, but additionally tracks a stack
// of indentation columns and interleaves 'indent' and 'dedent' marker
// tokens, implementing the offside rule. Blank lines and dropped comment
// lines produce no tokens and do not affect indentation. A line whose
// indentation shrinks to a column matching no open level fails with
// LEX_INDENT. At end of input every open level is closed with a 'dedent'
// before the final '$'.
func (lx *Lexer) SplitOffside(input string, comment *regexp.Regexp) ([]*dslkit.LexTree, error) {
	lines := lineSplitter.Split(input, -1)
	tokens := make([]*dslkit.LexTree, 0, len(lines)+1)
	levels := []int{0}
	for n, line := range lines {
		if comment != nil && comment.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c := indentColumn(line)
		if c > levels[len(levels)-1] {
			levels = append(levels, c)
			tokens = append(tokens, marker(dslkit.TypeIndent, n, c))
		} else {
			for c < levels[len(levels)-1] {
				levels = levels[:len(levels)-1]
				tokens = append(tokens, marker(dslkit.TypeDedent, n, c))
			}
			if c != levels[len(levels)-1] {
				return nil, dslkit.NewParseError(dslkit.ErrLexIndent,
					fmt.Sprintf("indentation of %d matches no open level", c), n, c)
			}
		}
		tokens = append(tokens, &dslkit.LexTree{
			Kind:  dslkit.TypeUnknown,
			Match: []string{line},
			Index: 0,
			Line:  n,
		})
	}
	last := len(lines) - 1
	end := len(lines[last])
	for levels[len(levels)-1] > 0 {
		levels = levels[:len(levels)-1]
		tokens = append(tokens, marker(dslkit.TypeDedent, last, end))
	}
	tokens = append(tokens, &dslkit.LexTree{
		Kind:  dslkit.TypeEOF,
		Match: []string{""},
		Index: end,
		Line:  last,
	})
	return tokens, nil
}

func marker(kind string, line, col int) *dslkit.LexTree {
	return &dslkit.LexTree{
		Kind:  kind,
		Match: []string{""},
		Index: col,
		Line:  line,
	}
}

// indentColumn returns the column of the first non-whitespace character.
// Tab stops are not expanded; a tab counts as one column.
func indentColumn(line string) int {
	for i, ch := range line {
		if ch != ' ' && ch != '\t' {
			return i
		}
	}
	return len(line)
}
