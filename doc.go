/*
Package dslkit is a toolkit for building small domain-specific languages.

DSLkit strives to be a smart and lightweight tool to generate
interpreters for DSLs, without a code-generation or compile step.
Clients supply a list of terminal definitions (each a named regular
pattern), a grammar of production rules, and optional visitors consuming
the resulting parse tree. Package structure is as follows:

■ lexer: Package lexer implements a pattern-matching tokenizer with an
offside (indent/dedent) mode and on-demand lexing driven by parser feedback.

■ lr: Package lr implements grammar analysis and construction of LR parse
tables for grammars with quantified rule elements.

■ lr/slr: Package slr implements the table-driven shift/reduce runtime.

■ visitor: Package visitor implements a type-dispatched parse-tree walk.

The base package contains the tree-node data types and the error carrier,
which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dslkit
