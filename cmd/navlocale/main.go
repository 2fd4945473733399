// Command navlocale prints the user's preferred locale as seen by the host,
// or as computed from a fixed set of signals.
package main

import (
	"os"

	"golang.org/x/term"

	"github.com/napalu/navlocale/env"
)

var version = "dev"

func main() {
	isTerminal := func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}

	os.Exit(run(os.Args, env.OSResolver{}, os.Stdout, os.Stderr, isTerminal))
}
