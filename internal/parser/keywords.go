package parser

var KEYWORDS = map[string]bool{
	"int":    true,
	"void":   true,
	"char":   true,
	"for":    true,
	"while":  true,
	"if":     true,
	"else":   true,
	"return": true,
}
