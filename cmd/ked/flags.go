// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -quit, -keycodes, -debug, -version

package main

import (
	"flag"
	"fmt"
)

type cliArgs struct {
	quit     string
	keycodes bool
	debug    bool
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.quit, "quit", "q", "Letter whose Ctrl chord exits the editor")
	flag.BoolVar(&args.keycodes, "keycodes", false, "Print the code of each key instead of drawing the screen")
	flag.BoolVar(&args.debug, "debug", false, "Log debug diagnostics to stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// quitByte validates the -quit flag down to a single lowercase ASCII
// letter, the form the ctrl mask is defined on.
func (a cliArgs) quitByte() (byte, error) {
	if len(a.quit) != 1 {
		return 0, fmt.Errorf("-quit must be a single letter, got %q", a.quit)
	}
	b := a.quit[0]
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if b < 'a' || b > 'z' {
		return 0, fmt.Errorf("-quit must be a letter, got %q", a.quit)
	}
	return b, nil
}
