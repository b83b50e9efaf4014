// ABOUTME: CLI entry point for ked: terminal session setup, refresh/dispatch loop, exit codes.
// ABOUTME: The session is closed via defer so the terminal is restored on every exit path.

package main

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"

	"ked/internal/editor"
	kedlog "ked/internal/log"
	"ked/internal/term"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("ked %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.debug {
		kedlog.SetLevel(kedlog.LevelDebug)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "ked: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) (err error) {
	quitKey, err := args.quitByte()
	if err != nil {
		return err
	}
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("standard input is not a terminal")
	}

	s := editor.NewSession(term.NewProcessTty(), editor.Options{
		QuitKey:  quitKey,
		Keycodes: args.keycodes,
	})

	// Close must run on every exit path, error paths included, or the
	// terminal is left in raw mode. A restore failure is itself fatal.
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := s.Init(); err != nil {
		return err
	}
	g := s.Geometry()
	kedlog.Debug("session: %dx%d, quit chord ctrl-%c", g.Rows, g.Cols, quitKey)

	for {
		if !args.keycodes {
			if err := s.Refresh(); err != nil {
				return err
			}
		}
		quit, err := s.ProcessKeypress()
		if err != nil {
			return err
		}
		if quit {
			kedlog.Debug("quit chord received")
			return nil
		}
	}
}
