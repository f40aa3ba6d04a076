package parser

import (
	"fmt"
	"strings"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.tokens[p.current-1]
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

// consume either advances past a token of the expected type, or records a
// fatal parse error naming the expectation and the offending lexeme.
func (p *Parser) consume(tt TokenType, message string) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	p.errorAtCurrent(fmt.Sprintf("%s. Got '%s' instead.", message, p.peek().Lexeme))
	return false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

// peekAt returns the token at a relative offset from the cursor; queries past
// the end return the trailing EOF sentinel.
func (p *Parser) peekAt(offset int) Token {
	if p.current+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+offset]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(message string) {
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: p.peek().Position,
	})
}

// offsetAfterParen returns the relative offset of the first token after the
// parenthesized group starting at the cursor, tracking nested parentheses.
// The cursor itself must sit on LPAREN.
func (p *Parser) offsetAfterParen() int {
	if !p.check(LPAREN) {
		return 0
	}
	level := 1
	offset := 1
	for level > 0 && p.current+offset < len(p.tokens) {
		switch p.peekAt(offset).Type {
		case LPAREN:
			level++
		case RPAREN:
			level--
		}
		offset++
	}
	return offset
}

// slurpUntil consumes tokens up to (not including) the terminator and joins
// their lexemes with single spaces. The terminator only counts at parenthesis
// level zero, so nested groups pass through intact.
func (p *Parser) slurpUntil(end TokenType) string {
	var b strings.Builder
	level := 0
	for !p.isAtEnd() {
		tok := p.peek()
		if tok.Type == end && level == 0 {
			break
		}
		switch tok.Type {
		case LPAREN:
			level++
		case RPAREN:
			level--
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Lexeme)
		p.advance()
	}
	return b.String()
}

// joinArgs renders a call-argument token run: lexemes separated by single
// spaces, except that no space is emitted before ',' or ')'.
func joinArgs(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && tok.Type != COMMA && tok.Type != RPAREN {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Lexeme)
	}
	return b.String()
}
