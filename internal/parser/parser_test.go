package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalFunction(t *testing.T) {
	output, parseErrors, scanErrors := TranspileSource("test.ydc", "() main int { }")
	assert.Empty(t, parseErrors, "Should have no parse errors")
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Equal(t, "int main() {\n}\n\n", output)
}

func TestEmptyParameterList(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "( ) f void { }")
	assert.Empty(t, parseErrors)
	assert.Equal(t, "void f() {\n}\n\n", output)
}

func TestReversedParameterList(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "(a int, b char) f int { }")
	assert.Empty(t, parseErrors)
	assert.Equal(t, "int f(int a, char b) {\n}\n\n", output)
}

func TestVariableDeclaration(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  42 = x int ;\n}")
	assert.Empty(t, parseErrors)
	assert.Equal(t, "int main() {\n    int x = 42;\n}\n\n", output)
}

func TestReversedCallAndPassthroughReturn(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "(x int) f int {\n  (x) g ;\n  return x ;\n}")
	assert.Empty(t, parseErrors)
	assert.Equal(t, "int f(int x) {\n    g(x);\n    return x;\n}\n\n", output)
}

func TestReversedCallArgumentJoin(t *testing.T) {
	// No space before ',' in the rejoined argument run.
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  (a, b, c) f ;\n}")
	assert.Empty(t, parseErrors)
	assert.Contains(t, output, "    f(a, b, c);\n")
}

func TestReversedCallWithNestedParentheses(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  ((a), b) f ;\n}")
	assert.Empty(t, parseErrors)
	// The join suppresses spaces before ',' and ')' but not after '(',
	// so the inner group keeps its opening paren tight.
	assert.Contains(t, output, "    f(( a), b);\n")
}

func TestIfElse(t *testing.T) {
	source := "() main int {\n  (x == 0) if { 1 = y int ; } else { 2 = y int ; }\n}"
	output, parseErrors, _ := TranspileSource("test.ydc", source)
	assert.Empty(t, parseErrors)
	assert.Equal(t,
		"int main() {\n    if (x == 0) {\n    int y = 1;\n    }\n    else {\n    int y = 2;\n    }\n}\n\n",
		output)
}

func TestIfWithoutElse(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  (x > 1) if { return x ; }\n}")
	assert.Empty(t, parseErrors)
	assert.Equal(t, "int main() {\n    if (x > 1) {\n    return x;\n    }\n}\n\n", output)
	assert.NotContains(t, output, "else")
}

func TestWhileLoop(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  (x < 10) while { x = x ; }\n}")
	assert.Empty(t, parseErrors)
	assert.Contains(t, output, "    while (x < 10) {\n")
	assert.Contains(t, output, "    x = x;\n")
}

func TestForLoop(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  (i = 0 ; i < 3 ; i = i) for { (i) f ; }\n}")
	assert.Empty(t, parseErrors)
	assert.Contains(t, output, "    for (i = 0 ; i < 3 ; i = i) {\n")
	assert.Contains(t, output, "    f(i);\n")
}

func TestNestedParenthesesInCondition(t *testing.T) {
	output, parseErrors, scanErrors := TranspileSource("test.ydc", "() main int {\n  ((a == b) && c) if { return a ; }\n}")
	// Each '&' lexes as UNKNOWN with a diagnostic, but the condition slurp
	// passes the tokens through and the inner parentheses stay intact.
	assert.Empty(t, parseErrors)
	assert.Len(t, scanErrors, 2)
	assert.Contains(t, output, "    if (( a == b ) & & c) {\n")
}

func TestPreprocessorPassthrough(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "#include <stdio.h>\n() main int { }")
	assert.Empty(t, parseErrors)
	assert.True(t, strings.HasPrefix(output, "#include <stdio.h>\nint main() {\n}\n\n"))
}

func TestMissingTypeKeyword(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "() main int { 42 = x ; }")
	assert.Empty(t, output, "Failed parse discards the output buffer")
	require.Len(t, parseErrors, 1)
	assert.Equal(t, "Expected type keyword for variable. Got ';' instead.", parseErrors[0].Message)
}

func TestTopLevelRejectsLooseTokens(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "x = 1 ;")
	assert.Empty(t, output)
	require.Len(t, parseErrors, 1)
	assert.Equal(t,
		"Only preprocessor directives or function definitions allowed at top level. Found 'x'.",
		parseErrors[0].Message)
}

func TestMalformedArgumentList(t *testing.T) {
	output, parseErrors, _ := TranspileSource("test.ydc", "(a int b char) f int { }")
	assert.Empty(t, output)
	require.Len(t, parseErrors, 1)
	assert.Equal(t, "Expected ',' or ')' in argument list.", parseErrors[0].Message)
}

func TestUnknownTokenFailsAtStatementPosition(t *testing.T) {
	output, parseErrors, scanErrors := TranspileSource("test.ydc", "() main int { @ }")
	assert.Empty(t, output)
	require.Len(t, scanErrors, 1)
	require.Len(t, parseErrors, 1)
	assert.Equal(t, "Unrecognized statement starting with '@'", parseErrors[0].Message)
}

func TestFirstErrorIsFatal(t *testing.T) {
	// Both declarations are broken; only the first is reported.
	_, parseErrors, _ := TranspileSource("test.ydc", "() main int { 1 = x ; 2 = y ; }")
	assert.Len(t, parseErrors, 1)
}

func TestErrorPositionPointsAtOffendingToken(t *testing.T) {
	_, parseErrors, _ := TranspileSource("test.ydc", "() main int {\n  42 = x ;\n}")
	require.Len(t, parseErrors, 1)
	assert.Equal(t, 2, parseErrors[0].Position.Line)
	assert.Equal(t, 10, parseErrors[0].Position.Column)
}

func TestTranspileIsDeterministic(t *testing.T) {
	source := "#include <stdio.h>\n(x int) f int {\n  1 = y int ;\n  (y, x) g ;\n  return y ;\n}"
	first, parseErrors, _ := TranspileSource("test.ydc", source)
	require.Empty(t, parseErrors)
	second, _, _ := TranspileSource("test.ydc", source)
	assert.Equal(t, first, second)
}

func TestTranspileStatement(t *testing.T) {
	output, parseErrors, _ := TranspileStatement("42 = x int ;")
	assert.Empty(t, parseErrors)
	assert.Equal(t, "    int x = 42;\n", output)
}
