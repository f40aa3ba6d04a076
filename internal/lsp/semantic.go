package lsp

import (
	"strings"

	"ydc/internal/parser"
)

// Indices into SemanticTokenTypes
const (
	semanticKeyword = iota
	semanticFunction
	semanticVariable
	semanticNumber
	semanticString
	semanticOperator
	semanticMacro
)

type semanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

var operatorLexemes = map[string]bool{
	"==": true, "!=": true, "<=": true, ">=": true, "<": true, ">": true,
}

// collectSemanticTokens classifies the tokenizer's output for highlighting.
// The dialect folds strings and comparison operators into IDENTIFIER, so the
// classification splits them back apart by lexeme shape. An identifier right
// after ')' is a head position, which is where function names live.
func collectSemanticTokens(tokens []parser.Token) []semanticToken {
	var result []semanticToken

	for i, tok := range tokens {
		if strings.Contains(tok.Lexeme, "\n") {
			continue
		}

		var tokenType uint32
		switch tok.Type {
		case parser.KEYWORD:
			tokenType = semanticKeyword
		case parser.NUMBER:
			tokenType = semanticNumber
		case parser.PREPROCESSOR:
			tokenType = semanticMacro
		case parser.IDENTIFIER:
			switch {
			case strings.HasPrefix(tok.Lexeme, `"`):
				tokenType = semanticString
			case operatorLexemes[tok.Lexeme]:
				tokenType = semanticOperator
			case i > 0 && tokens[i-1].Type == parser.RPAREN:
				tokenType = semanticFunction
			default:
				tokenType = semanticVariable
			}
		default:
			continue
		}

		result = append(result, semanticToken{
			Line:      uint32(tok.Position.Line - 1),
			StartChar: uint32(tok.Position.Column - 1),
			Length:    uint32(len(tok.Lexeme)),
			TokenType: tokenType,
		})
	}

	return result
}

// encodeSemanticTokens packs tokens into the LSP wire format
// (delta-line, delta-start compression).
func encodeSemanticTokens(tokens []semanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, token.TokenType, token.TokenModifiers)

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
