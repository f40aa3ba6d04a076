package parser

import (
	"fmt"
	"strings"
)

// Parser translates a reversed-dialect token sequence directly into
// forward-order C text. Parsing and code generation are fused: recognized
// constructs are appended to the output buffer as they are consumed, and
// there is no intermediate tree. The first unmet expectation is fatal.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	out      strings.Builder
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

// Transpile consumes the token sequence and returns the emitted C program.
// On failure the partial output is discarded and ok is false; the offending
// expectation is available through Errors.
func (p *Parser) Transpile() (output string, ok bool) {
	for !p.isAtEnd() {
		switch {
		case p.check(PREPROCESSOR):
			tok := p.advance()
			p.out.WriteString(tok.Lexeme)
			p.out.WriteByte('\n')
		case p.check(LPAREN):
			if !p.parseFunction() {
				return "", false
			}
		default:
			p.errorAtCurrent(fmt.Sprintf(
				"Only preprocessor directives or function definitions allowed at top level. Found '%s'.",
				p.peek().Lexeme))
			return "", false
		}
	}
	return p.out.String(), true
}

// parseFunction translates a reversed function definition:
//
//	( <arg-name> <arg-type>, ... ) <name> <return-type> { <body> }
//
// into a forward-order C function header and body.
func (p *Parser) parseFunction() bool {
	if !p.consume(LPAREN, "Expected '(' before function arguments") {
		return false
	}

	var args strings.Builder
	for !p.check(RPAREN) && !p.isAtEnd() {
		if args.Len() > 0 {
			args.WriteString(", ")
		}
		argName := p.peek()
		if !p.consume(IDENTIFIER, "Expected argument name") {
			return false
		}
		argType := p.peek()
		if !p.consume(KEYWORD, "Expected argument type") {
			return false
		}
		args.WriteString(argType.Lexeme)
		args.WriteByte(' ')
		args.WriteString(argName.Lexeme)

		if p.check(COMMA) {
			p.advance()
		} else if !p.check(RPAREN) {
			p.errorAtCurrent("Expected ',' or ')' in argument list.")
			return false
		}
	}
	if !p.consume(RPAREN, "Expected ')' after function arguments") {
		return false
	}

	funcName := p.peek()
	if !p.consume(IDENTIFIER, "Expected function name") {
		return false
	}
	returnType := p.peek()
	if !p.consume(KEYWORD, "Expected function return type") {
		return false
	}

	fmt.Fprintf(&p.out, "%s %s(%s) {\n", returnType.Lexeme, funcName.Lexeme, args.String())

	if !p.consume(LBRACE, "Expected '{' before function body") {
		return false
	}
	for !p.check(RBRACE) && !p.isAtEnd() {
		if !p.parseStatement() {
			return false
		}
	}
	if !p.consume(RBRACE, "Expected '}' after function body") {
		return false
	}
	p.out.WriteString("}\n\n")
	return true
}
