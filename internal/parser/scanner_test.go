package parser

import (
	"strings"
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "int void char for while if else return counter _tmp x9"
	expected := []TokenType{
		KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD,
		KEYWORD, IDENTIFIER, IDENTIFIER, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345"
	expected := []string{"42", "0", "12345"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected NUMBER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp, tokens[i].Lexeme)
		}
	}
}

func TestDelimiters(t *testing.T) {
	input := "( ) { } ; , ="
	expected := []TokenType{LPAREN, RPAREN, LBRACE, RBRACE, SEMICOLON, COMMA, EQUALS}
	expectedLexemes := []string{"(", ")", "{", "}", ";", ",", "="}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestComparisonOperatorsLexAsIdentifiers(t *testing.T) {
	input := "== != >= <= > <"
	expectedLexemes := []string{"==", "!=", ">=", "<=", ">", "<"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expectedLexemes {
		if tokens[i].Type != IDENTIFIER {
			t.Errorf("token %d: expected IDENTIFIER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp, tokens[i].Lexeme)
		}
	}
}

func TestBareEqualsIsNotAnOperatorToken(t *testing.T) {
	input := "= =="
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != EQUALS {
		t.Errorf("expected EQUALS, got %s", tokens[0].Type)
	}
	if tokens[1].Type != IDENTIFIER || tokens[1].Lexeme != "==" {
		t.Errorf("expected IDENTIFIER '==', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestBareBangIsUnknown(t *testing.T) {
	input := "!"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != UNKNOWN {
		t.Errorf("expected UNKNOWN, got %s", tokens[0].Type)
	}
	if len(scanner.errors) != 1 {
		t.Fatalf("expected one scan error, got %d", len(scanner.errors))
	}
	if scanner.errors[0].Message != "Unknown character '!'" {
		t.Errorf("unexpected message %q", scanner.errors[0].Message)
	}
}

func TestStringLiteralsLexAsIdentifiers(t *testing.T) {
	input := `"hello" "a \" quote"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != IDENTIFIER || tokens[0].Lexeme != `"hello"` {
		t.Errorf("expected IDENTIFIER %q, got %s %q", `"hello"`, tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != IDENTIFIER || tokens[1].Lexeme != `"a \" quote"` {
		t.Errorf("expected escaped string preserved, got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestUnterminatedStringClosesAtEOF(t *testing.T) {
	input := `"unterminated`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != IDENTIFIER || tokens[0].Lexeme != `"unterminated` {
		t.Errorf("expected silently closed string, got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if len(scanner.errors) != 0 {
		t.Errorf("expected no scan errors, got %d", len(scanner.errors))
	}
}

func TestPreprocessorLine(t *testing.T) {
	input := "#include <stdio.h>\n() main int { }"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != PREPROCESSOR {
		t.Fatalf("expected PREPROCESSOR, got %s", tokens[0].Type)
	}
	if tokens[0].Lexeme != "#include <stdio.h>" {
		t.Errorf("expected newline excluded, got %q", tokens[0].Lexeme)
	}
	if tokens[1].Type != LPAREN {
		t.Errorf("expected LPAREN after preprocessor line, got %s", tokens[1].Type)
	}
}

func TestCommentsAndWhitespaceAreDropped(t *testing.T) {
	input := "x // trailing comment\n  y"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) != 3 {
		t.Fatalf("expected x, y, EOF, got %d tokens", len(tokens))
	}
	if tokens[0].Lexeme != "x" || tokens[1].Lexeme != "y" {
		t.Errorf("unexpected lexemes %q, %q", tokens[0].Lexeme, tokens[1].Lexeme)
	}
}

func TestUnknownCharacter(t *testing.T) {
	input := "x @ y"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[1].Type != UNKNOWN || tokens[1].Lexeme != "@" {
		t.Errorf("expected UNKNOWN '@', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
	if len(scanner.errors) != 1 {
		t.Fatalf("expected one scan error, got %d", len(scanner.errors))
	}
	if scanner.errors[0].Message != "Unknown character '@'" {
		t.Errorf("unexpected message %q", scanner.errors[0].Message)
	}
}

func TestEOFSentinel(t *testing.T) {
	for _, input := range []string{"", "x", "() main int { }"} {
		scanner := NewScanner(input)
		tokens := scanner.ScanTokens()

		eofCount := 0
		for _, tok := range tokens {
			if tok.Type == EOF {
				eofCount++
			}
		}
		if eofCount != 1 {
			t.Errorf("input %q: expected exactly one EOF token, got %d", input, eofCount)
		}
		last := tokens[len(tokens)-1]
		if last.Type != EOF || last.Lexeme != "EOF" {
			t.Errorf("input %q: expected trailing EOF sentinel with lexeme \"EOF\", got %s %q",
				input, last.Type, last.Lexeme)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "42\n  main ("
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []struct {
		typ    TokenType
		lexeme string
		line   int
		column int
	}{
		{NUMBER, "42", 1, 1},
		{IDENTIFIER, "main", 2, 3},
		{LPAREN, "(", 2, 8},
	}

	for i, exp := range expected {
		tok := tokens[i]
		if tok.Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tok.Lexeme)
		}
		if tok.Position.Line != exp.line || tok.Position.Column != exp.column {
			t.Errorf("token %d: expected %d:%d, got %d:%d",
				i, exp.line, exp.column, tok.Position.Line, tok.Position.Column)
		}
	}
}

// Re-lexing the space-joined lexemes reproduces the same kind sequence.
func TestLexingIdempotence(t *testing.T) {
	input := "(x int) f int {\n  41 = x int ;\n  (x == 1) if { return x ; }\n}"

	scanner := NewScanner(input)
	first := scanner.ScanTokens()

	var lexemes []string
	for _, tok := range first[:len(first)-1] {
		lexemes = append(lexemes, tok.Lexeme)
	}
	rejoined := strings.Join(lexemes, " ")

	second := NewScanner(rejoined).ScanTokens()
	if len(second) != len(first) {
		t.Fatalf("expected %d tokens after re-lexing, got %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Type != second[i].Type {
			t.Errorf("token %d: kind changed from %s to %s", i, first[i].Type, second[i].Type)
		}
	}
}
