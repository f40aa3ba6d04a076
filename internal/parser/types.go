package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	UNKNOWN TokenType = iota
	EOF

	// Words and literals. IDENTIFIER is deliberately overloaded: it also
	// covers string literals and the comparison operators (==, !=, >=, <=,
	// >, <), so the translator can pass operand material through uniformly.
	KEYWORD
	IDENTIFIER
	NUMBER

	// Delimiters
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	EQUALS
	SEMICOLON
	COMMA

	// A whole '#' line, newline excluded
	PREPROCESSOR
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
