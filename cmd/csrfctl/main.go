// Command csrfctl creates CSRF secrets and tokens and verifies tokens, for
// debugging clients and scripting smoke tests.
//
// Usage:
//
//	csrfctl secret [--length 18]
//	csrfctl token --secret <secret> [--salt-length 8]
//	csrfctl verify --secret <secret> --token <token> [--salt-length 8]
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/csrfkit/internal/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
