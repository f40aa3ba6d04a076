// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	ydcerrors "ydc/internal/errors"
	"ydc/internal/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s <filename.ydc>\n", os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]
	source := readSourceFile(path)

	fmt.Println("--- Tokenizing ---")
	scanner := parser.NewScanner(source)
	tokens := scanner.ScanTokens()
	for _, scanErr := range scanner.Errors() {
		fmt.Printf("Tokenizer Error: %s\n", scanErr.Message)
	}

	fmt.Println("\n--- Parsing & Transpiling ---")
	p := parser.NewParser(path, tokens)
	cCode, ok := p.Transpile()
	if !ok {
		reporter := ydcerrors.NewErrorReporter(path, source)
		for _, parseErr := range p.Errors() {
			fmt.Printf("Parser Error: %s\n", parseErr.Message)
			fmt.Fprint(os.Stderr, reporter.FormatError(toDiagnostic(parseErr)))
		}
		fmt.Println("Failed to transpile due to parsing errors.")
		os.Exit(1)
	}

	fmt.Printf("Transpiled C code:\n---\n%s---\n", cCode)

	fmt.Println("\n--- Compiling with GCC ---")
	if err := os.WriteFile("output.c", []byte(cCode), 0644); err != nil {
		fmt.Println("Error: could not create output.c")
		os.Exit(1)
	}

	cmd := exec.Command("gcc", "-o", "output", "output.c")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		color.Red("\nGCC compilation failed.")
	} else {
		color.Green("\nSuccess! Compiled to './output' executable.")
	}
}

// readSourceFile terminates with exit code 74 on input errors, the usual
// convention for unreadable input data.
func readSourceFile(path string) string {
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			fmt.Fprintf(os.Stderr, "Could not open file \"%s\".\n", path)
		} else if _, ok := err.(*fs.PathError); ok {
			fmt.Fprintf(os.Stderr, "Could not read file \"%s\".\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Not enough memory to read \"%s\".\n", path)
		}
		os.Exit(74)
	}
	return string(source)
}

func toDiagnostic(parseErr parser.ParseError) ydcerrors.TranspilerError {
	code := ydcerrors.ErrorUnexpectedToken
	switch {
	case strings.HasPrefix(parseErr.Message, "Unrecognized statement"):
		code = ydcerrors.ErrorUnrecognizedStatement
	case strings.HasPrefix(parseErr.Message, "Only preprocessor"):
		code = ydcerrors.ErrorInvalidTopLevel
	}

	return ydcerrors.TranspilerError{
		Level:   ydcerrors.Error,
		Code:    code,
		Message: parseErr.Message,
		Position: ydcerrors.Position{
			Line:   parseErr.Position.Line,
			Column: parseErr.Position.Column,
			Offset: parseErr.Position.Offset,
		},
	}
}
