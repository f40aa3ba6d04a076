// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"ydc/grammar"
)

// ydc-fmt rewrites a reversed-dialect source file into its canonical form:
// four-space indentation, single spaces between tokens, and tight commas.
// With -w the file is rewritten in place, otherwise the result goes to
// standard output.
func main() {
	args := os.Args[1:]

	write := false
	if len(args) > 0 && args[0] == "-w" {
		write = true
		args = args[1:]
	}

	if len(args) != 1 {
		fmt.Println("Usage: ydc-fmt [-w] <filename.ydc>")
		os.Exit(1)
	}

	path := args[0]
	program, err := grammar.ParseFile(path)
	if err != nil {
		// ParseFile already printed a caret-style diagnostic
		os.Exit(1)
	}

	formatted := program.String()
	if write {
		if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(formatted)
}
