package errors

// Error codes for the ydc transpiler, used in diagnostics so that errors can
// be identified consistently across the CLI and the language server.
//
// Error code ranges:
// E0001-E0099: Tokenizer errors
// E0100-E0199: Parser errors
// E0200-E0299: Driver/IO errors
// E0800-E0899: Warning codes

const (
	// E0001: Character outside the dialect's alphabet
	ErrorUnknownCharacter = "E0001"

	// E0100: Unexpected token where a specific token was required
	ErrorUnexpectedToken = "E0100"

	// E0101: Statement that matches no reversed form
	ErrorUnrecognizedStatement = "E0101"

	// E0102: Token other than a preprocessor directive or '(' at top level
	ErrorInvalidTopLevel = "E0102"

	// E0200: Source file could not be opened or read
	ErrorUnreadableFile = "E0200"

	// E0201: C compiler invocation failed
	ErrorCompilerFailed = "E0201"

	// W0001: Unterminated string literal closed at end of input
	WarningUnterminatedString = "W0001"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnknownCharacter:
		return "Character is not part of the dialect's alphabet"
	case ErrorUnexpectedToken:
		return "A required token was missing at this point"
	case ErrorUnrecognizedStatement:
		return "Statement does not match any reversed form"
	case ErrorInvalidTopLevel:
		return "Only preprocessor directives and function definitions may appear at top level"
	case ErrorUnreadableFile:
		return "Source file could not be opened or read"
	case ErrorCompilerFailed:
		return "The C compiler reported an error on the generated output"
	case WarningUnterminatedString:
		return "String literal ran to end of input without a closing quote"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the code represents a warning rather than an error
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Tokenizer"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Driver"
	case len(code) > 0 && code[0] == 'W':
		return "Warning"
	default:
		return "Unknown"
	}
}
