package parser

import (
	"fmt"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position
	Length   int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens tokenizes the whole input and always appends a trailing EOF
// token with the literal lexeme "EOF" so lookahead past the end stays safe.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{
		Type:     EOF,
		Lexeme:   "EOF",
		Position: Position{Line: s.line, Column: s.column, Offset: s.current},
	})
	return s.tokens
}

func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(LPAREN)
	case ')':
		s.addToken(RPAREN)
	case '{':
		s.addToken(LBRACE)
	case '}':
		s.addToken(RBRACE)
	case ';':
		s.addToken(SEMICOLON)
	case ',':
		s.addToken(COMMA)

	case '#':
		s.scanPreprocessorLine()

	// The comparison operators become IDENTIFIER tokens so the translator
	// can pass them through like any other operand material.
	case '>', '<':
		s.matchNext('=')
		s.addToken(IDENTIFIER)
	case '=':
		if s.matchNext('=') {
			s.addToken(IDENTIFIER)
		} else {
			s.addToken(EQUALS)
		}
	case '!':
		if s.matchNext('=') {
			s.addToken(IDENTIFIER)
		} else {
			// A bare '!' has no production in the dialect.
			s.reportError("Unknown character '!'")
			s.addToken(UNKNOWN)
		}

	case '/':
		if s.matchNext('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.reportError("Unknown character '/'")
			s.addToken(UNKNOWN)
		}

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

// scanPreprocessorLine captures a whole '#' line, newline excluded.
func (s *Scanner) scanPreprocessorLine() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	s.addToken(PREPROCESSOR)
}

// scanString consumes through the closing quote, treating backslash plus any
// character as a two-character escape. The whole run including both quotes
// becomes an IDENTIFIER. An unterminated string is silently closed at EOF.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\\' {
			s.advance()
			if s.isAtEnd() {
				break
			}
		}
		s.advance()
	}
	if !s.isAtEnd() {
		s.advance()
	}
	s.addToken(IDENTIFIER)
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanWord()
	} else {
		s.reportError(fmt.Sprintf("Unknown character '%c'", c))
		s.addToken(UNKNOWN)
	}
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanWord() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	if KEYWORDS[s.source[s.start:s.current]] {
		s.addToken(KEYWORD)
	} else {
		s.addToken(IDENTIFIER)
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}
