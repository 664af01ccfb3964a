/*
dslkit is a small sandbox CLI for the dslkit parsing toolkit. It carries a
built-in arithmetic expression grammar and offers an interactive REPL plus
an action-table inspector for it. It is intended for experiments during
grammar development, not as an end-user tool.

	S      ➞ sum $
	sum    ➞ sum sumop term  |  term
	term   ➞ term mulop factor  |  factor
	factor ➞ number  |  ( sum )
	sumop  ➞ +  |  -
	mulop  ➞ *  |  /

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/dslkit"
	"github.com/npillmayer/dslkit/lexer"
	"github.com/npillmayer/dslkit/lr"
	"github.com/npillmayer/dslkit/lr/slr"
	"github.com/npillmayer/dslkit/visitor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracer traces with key 'dslkit.cli'.
func tracer() tracing.Trace {
	return tracing.Select("dslkit.cli")
}

var rootCmd = &cobra.Command{
	Use:   "dslkit",
	Short: "Sandbox for the dslkit parsing toolkit",
	Long: `dslkit is a sandbox around a built-in arithmetic expression grammar.
It parses input expressions with a table-driven shift/reduce parser and
evaluates the resulting parse trees.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.SyntaxTracer = gologadapter.New()
		level := tracing.TraceLevelFromString(viper.GetString("trace"))
		for _, key := range []string{"dslkit.lexer", "dslkit.lr", "dslkit.visitor", "dslkit.cli"} {
			tracing.Select(key).SetTraceLevel(level)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().String("table-version", "", "enable action-table persistence under a version tag")
	viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	viper.BindPFlag("table-version", rootCmd.PersistentFlags().Lookup("table-version"))
	viper.SetEnvPrefix("DSLKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- Demo grammar -----------------------------------------------------------

func demoRules() lr.RuleSet {
	return lr.RuleSet{
		"sum":    {{"sum", "sumop", "term"}, {"term"}},
		"term":   {{"term", "mulop", "factor"}, {"factor"}},
		"factor": {{"number"}, {"(", "sum", ")"}},
		"sumop":  {{"+"}, {"-"}},
		"mulop":  {{"*"}, {"/"}},
	}
}

func demoLexer() (*lexer.Lexer, error) {
	return lexer.New(
		lexer.Terminal{Type: "number", Pattern: `[0-9]+`},
		lexer.Terminal{Type: dslkit.TypeWhitespace, Pattern: `\s+`},
	)
}

func demoParser() (*slr.Parser, error) {
	var opts []slr.Option
	if version := viper.GetString("table-version"); version != "" {
		opts = append(opts, slr.TableVersion(version))
	}
	return slr.NewParser(demoRules(), "sum", opts...)
}

// demoEvaluator builds the visitor which reduces a demo parse tree to its
// numeric value.
func demoEvaluator() *visitor.Visitor {
	v := visitor.New()
	v.On("number", func(v *visitor.Visitor, state interface{}, node dslkit.Node) interface{} {
		n, err := strconv.Atoi(node.(*dslkit.LexTree).Text())
		if err != nil {
			return 0
		}
		return n
	})
	binop := visitor.Collapse(func(v *visitor.Visitor, state interface{}, node dslkit.Node) interface{} {
		tree := node.(*dslkit.ParseTree)
		left := v.Visit(state, tree.Children[0]).(int)
		right := v.Visit(state, tree.Children[2]).(int)
		switch opText(tree.Children[1]) {
		case "+":
			return left + right
		case "-":
			return left - right
		case "*":
			return left * right
		}
		return left / right
	})
	v.On("sum", binop)
	v.On("term", binop)
	v.On("factor", visitor.Collapse(func(v *visitor.Visitor, state interface{}, node dslkit.Node) interface{} {
		// parenthesized: ( sum )
		return v.Visit(state, node.(*dslkit.ParseTree).Children[1])
	}))
	return v
}

// opText returns the text of the operator leaf below a sumop/mulop node.
func opText(node dslkit.Node) string {
	for {
		tree, ok := node.(*dslkit.ParseTree)
		if !ok {
			return node.(*dslkit.LexTree).Text()
		}
		node = tree.Children[0]
	}
}

// --- Tree display -----------------------------------------------------------

// renderTree prints a parse tree with pterm, one node per line, indented by
// level.
func renderTree(tree *dslkit.ParseTree) {
	ll := leveledNode(tree, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledNode(node dslkit.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := node.Type()
	if leaf, ok := node.(*dslkit.LexTree); ok {
		text = pterm.Sprintf("%s %q", leaf.Kind, leaf.Text())
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	if tree, ok := node.(*dslkit.ParseTree); ok {
		for _, ch := range tree.Children {
			ll = leveledNode(ch, ll, level+1)
		}
	}
	return ll
}
