// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"ydc/internal/parser"
)

const PROMPT = ">> "

// Start reads one reversed-dialect statement per line and prints its
// forward C translation. EOF ends the session.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		output, parseErrors, scanErrors := parser.TranspileStatement(line)
		for _, scanErr := range scanErrors {
			fmt.Printf("Tokenizer Error: %s\n", scanErr.Message)
		}
		if len(parseErrors) > 0 {
			for _, parseErr := range parseErrors {
				fmt.Printf("Parser Error: %s\n", parseErr.Message)
			}
			continue
		}

		fmt.Print(output)
	}
}
