package parser

import "fmt"

// parseStatement dispatches on the first token of a body statement:
//
//   - NUMBER starts a reversed variable declaration
//   - LPAREN starts either a reversed control head or a reversed call,
//     decided by looking past the matching ')'
//   - KEYWORD or IDENTIFIER starts a passthrough statement
func (p *Parser) parseStatement() bool {
	if p.check(NUMBER) {
		return p.parseVariableDeclaration()
	}

	if p.check(LPAREN) {
		offset := p.offsetAfterParen()
		after := p.peekAt(offset)

		if after.Type == KEYWORD {
			switch after.Lexeme {
			case "for":
				return p.parseForLoop()
			case "while":
				return p.parseWhileLoop()
			case "if":
				return p.parseIfStatement()
			}
		}
		if after.Type == IDENTIFIER && p.peekAt(offset+1).Type == SEMICOLON {
			return p.parseReversedCall()
		}
	}

	if p.check(KEYWORD) || p.check(IDENTIFIER) {
		line := p.slurpUntil(SEMICOLON)
		if !p.consume(SEMICOLON, "Expected ';' after statement") {
			return false
		}
		p.out.WriteString("    ")
		p.out.WriteString(line)
		p.out.WriteString(";\n")
		return true
	}

	p.errorAtCurrent(fmt.Sprintf("Unrecognized statement starting with '%s'", p.peek().Lexeme))
	return false
}

// parseVariableDeclaration translates `<number> = <name> <type> ;` into
// `<type> <name> = <number>;`. Only a single number literal is supported on
// the value side.
func (p *Parser) parseVariableDeclaration() bool {
	value := p.advance()
	if !p.consume(EQUALS, "Expected '=' after value in declaration") {
		return false
	}
	name := p.peek()
	if !p.consume(IDENTIFIER, "Expected identifier name for variable") {
		return false
	}
	varType := p.peek()
	if !p.consume(KEYWORD, "Expected type keyword for variable") {
		return false
	}
	if !p.consume(SEMICOLON, "Expected ';' after variable declaration") {
		return false
	}

	fmt.Fprintf(&p.out, "    %s %s = %s;\n", varType.Lexeme, name.Lexeme, value.Lexeme)
	return true
}

// parseReversedCall translates `( <args> ) <name> ;` into `<name>(<args>);`.
// The argument run is read out by absolute token index between the matching
// parentheses, so nested parenthesized arguments stay intact.
func (p *Parser) parseReversedCall() bool {
	if !p.consume(LPAREN, "Expected '(' for function call") {
		return false
	}

	start := p.current
	level := 1
	for level > 0 && !p.isAtEnd() {
		switch p.peek().Type {
		case LPAREN:
			level++
		case RPAREN:
			level--
		}
		if level > 0 {
			p.advance()
		}
	}
	args := joinArgs(p.tokens[start:p.current])

	if !p.consume(RPAREN, "Expected ')' to end function call arguments") {
		return false
	}
	funcName := p.peek()
	if !p.consume(IDENTIFIER, "Expected function name") {
		return false
	}
	if !p.consume(SEMICOLON, "Expected ';' after function call") {
		return false
	}

	fmt.Fprintf(&p.out, "    %s(%s);\n", funcName.Lexeme, args)
	return true
}

func (p *Parser) parseForLoop() bool {
	if !p.consume(LPAREN, "Expected '(' before for loop condition") {
		return false
	}
	condition := p.slurpUntil(RPAREN)
	if !p.consume(RPAREN, "Expected ')' after for loop condition") {
		return false
	}
	if !p.consume(KEYWORD, "Expected 'for' keyword after condition") {
		return false
	}

	fmt.Fprintf(&p.out, "    for (%s) {\n", condition)
	return p.parseBody("for loop")
}

func (p *Parser) parseWhileLoop() bool {
	if !p.consume(LPAREN, "Expected '(' before while loop condition") {
		return false
	}
	condition := p.slurpUntil(RPAREN)
	if !p.consume(RPAREN, "Expected ')' after while loop condition") {
		return false
	}
	if !p.consume(KEYWORD, "Expected 'while' keyword after condition") {
		return false
	}

	fmt.Fprintf(&p.out, "    while (%s) {\n", condition)
	return p.parseBody("while loop")
}

// parseIfStatement translates a reversed if head. The optional else branch is
// written in forward order (`else { ... }`) and accepted right after the
// closing brace of the if body.
func (p *Parser) parseIfStatement() bool {
	if !p.consume(LPAREN, "Expected '(' before if condition") {
		return false
	}
	condition := p.slurpUntil(RPAREN)
	if !p.consume(RPAREN, "Expected ')' after if condition") {
		return false
	}
	if !p.consume(KEYWORD, "Expected 'if' keyword after condition") {
		return false
	}

	fmt.Fprintf(&p.out, "    if (%s) {\n", condition)
	if !p.parseBody("if") {
		return false
	}

	if p.check(KEYWORD) && p.peek().Lexeme == "else" {
		p.advance()
		p.out.WriteString("    else {\n")
		if !p.parseBody("else") {
			return false
		}
	}
	return true
}

// parseBody translates a braced statement sequence and emits the indented
// closing brace.
func (p *Parser) parseBody(construct string) bool {
	if !p.consume(LBRACE, "Expected '{' before "+construct+" body") {
		return false
	}
	for !p.check(RBRACE) && !p.isAtEnd() {
		if !p.parseStatement() {
			return false
		}
	}
	if !p.consume(RBRACE, "Expected '}' after "+construct+" body") {
		return false
	}
	p.out.WriteString("    }\n")
	return true
}
