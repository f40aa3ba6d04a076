// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"ydc/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the ydc REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter one reversed statement per line, Ctrl-D to exit.")
	repl.Start(os.Stdin)
}
