package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var YdcLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Preprocessor directives run to end of line
		{"Preprocessor", `#[^\n]*`, nil},

		// Comments
		{"Comment", `//[^\n]*`, nil},

		// Keywords and Identifiers (order matters)
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Integer literals
		{"Integer", `[0-9]+`, nil},

		// String literals with escapes
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Comparison operators
		{"Operator", `(==|!=|<=|>=|[<>])`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[(){};,=]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
