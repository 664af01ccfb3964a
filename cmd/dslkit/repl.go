package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse and evaluate arithmetic expressions",
	Long: `repl reads expressions line by line, parses each with the built-in
grammar and prints the parse tree together with its numeric value.
Quit with <ctrl>D.`,
	RunE: doRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func doRepl(cmd *cobra.Command, args []string) error {
	initDisplay()
	lx, err := demoLexer()
	if err != nil {
		return err
	}
	p, err := demoParser()
	if err != nil {
		return err
	}
	eval := demoEvaluator()
	rl, err := readline.New("dslkit> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to dslkit. Enter an expression, e.g. 3 + 2 * 1")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		tree, err := p.Parse(lx, lx.Split(line, nil))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		renderTree(tree)
		pterm.Info.Printf("= %v\n", eval.Visit(nil, tree))
	}
	println("Good bye!")
	return nil
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
