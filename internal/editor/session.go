// ABOUTME: Session owns the terminal for the life of the program: raw mode, geometry, refresh, dispatch.
// ABOUTME: Close clears the screen and restores the terminal exactly once, on every exit path.

package editor

import (
	"fmt"

	"ked/internal/screen"
	"ked/internal/term"
)

// DefaultQuitKey is the letter whose control chord ends the session.
const DefaultQuitKey = 'q'

// Options configures a Session.
type Options struct {
	// QuitKey is the letter whose ctrl-masked form quits. Zero means
	// DefaultQuitKey.
	QuitKey byte

	// Keycodes switches the dispatcher into the diagnostic mode that
	// prints the code of every key instead of routing it.
	Keycodes bool
}

// Session drives one terminal for the program's lifetime. It is created
// once, initialized once, and closed exactly once; geometry is sampled
// at Init and never again.
type Session struct {
	tty      term.Tty
	geom     term.Geometry
	quitKey  byte
	keycodes bool
	closed   bool
}

// NewSession returns an uninitialized Session on the given terminal.
func NewSession(t term.Tty, opts Options) *Session {
	qk := opts.QuitKey
	if qk == 0 {
		qk = DefaultQuitKey
	}
	return &Session{tty: t, quitKey: qk, keycodes: opts.Keycodes}
}

// Init enters raw mode and probes the screen geometry, in that order:
// the probe's fallback path needs raw-mode byte reads. Any failure is
// fatal to the caller.
func (s *Session) Init() error {
	if err := s.tty.EnterRawMode(); err != nil {
		return err
	}
	g, err := term.Probe(s.tty)
	if err != nil {
		return err
	}
	s.geom = g
	return nil
}

// Geometry returns the screen size sampled at Init.
func (s *Session) Geometry() term.Geometry {
	return s.geom
}

// Refresh draws one full frame.
func (s *Session) Refresh() error {
	return screen.Render(s.tty, s.geom.Rows, s.geom.Cols)
}

// readKey blocks until a byte arrives. Read timeouts with no data are
// expected under the raw-mode VTIME setting and are retried silently;
// any real read failure is fatal.
func (s *Session) readKey() (byte, error) {
	for {
		b, ok, err := s.tty.ReadByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}

// ProcessKeypress reads one key and dispatches it. The ctrl-masked quit
// key reports quit=true; every other byte is a no-op placeholder for
// command routing, unless keycodes mode is on.
func (s *Session) ProcessKeypress() (quit bool, err error) {
	b, err := s.readKey()
	if err != nil {
		return false, err
	}
	if b == ctrl(s.quitKey) {
		return true, nil
	}
	if s.keycodes {
		if err := s.reportKey(b); err != nil {
			return false, err
		}
	}
	return false, nil
}

// reportKey prints the decimal code of b, with the glyph when printable.
// Output bypasses frame batching; OPOST is off, so lines end in CRLF.
func (s *Session) reportKey(b byte) error {
	var line string
	if b < 0x20 || b == 0x7f {
		line = fmt.Sprintf("%d\r\n", b)
	} else {
		line = fmt.Sprintf("%d ('%c')\r\n", b, b)
	}
	if _, err := s.tty.Write([]byte(line)); err != nil {
		return err
	}
	return nil
}

// Close clears the screen and restores the terminal attributes. It runs
// its work at most once; later calls are no-ops. The clear is written
// directly, not through a frame buffer: the program is ending and there
// is nothing to batch.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	_, werr := s.tty.Write([]byte(screen.ClearScreen + screen.CursorHome))
	if err := s.tty.ExitRawMode(); err != nil {
		return err
	}
	if werr != nil {
		return fmt.Errorf("clearing screen: %w", werr)
	}
	return nil
}

// ctrl returns the control-chord byte for a letter: the upper three
// bits cleared, as the terminal encodes ctrl+letter.
func ctrl(b byte) byte {
	return b & 0x1f
}
