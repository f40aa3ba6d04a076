package parser

// TranspileSource tokenizes and translates a whole reversed-dialect source
// file. On parse failure the output is empty; scan errors alone do not abort,
// the parser fails later if an UNKNOWN token lands where it cannot be
// accepted.
func TranspileSource(path string, source string) (string, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	output, ok := parser.Transpile()
	if !ok {
		output = ""
	}

	return output, parser.errors, scanner.errors
}

// TranspileStatement translates a single body statement, for interactive use.
func TranspileStatement(source string) (string, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser("repl", tokens)
	if !parser.parseStatement() {
		return "", parser.errors, scanner.errors
	}
	return parser.out.String(), parser.errors, scanner.errors
}
