// ABOUTME: Defines the Tty interface for raw mode, byte input, output, and size queries.
// ABOUTME: Abstracts the terminal device so callers can target a real TTY or a scripted fake.

package term

// Tty abstracts the terminal device: raw-mode transitions, timed
// single-byte reads, output writes, and the direct window-size query.
//
// The program is single-threaded; implementations are not required to
// be safe for concurrent use.
type Tty interface {
	// EnterRawMode captures the current terminal attributes and applies
	// the raw attribute set. It must be called before any other terminal
	// I/O.
	EnterRawMode() error

	// ExitRawMode restores the attributes captured by EnterRawMode.
	// Calling it without a prior EnterRawMode is a no-op.
	ExitRawMode() error

	// ReadByte reads one byte. ok is false when the read timed out with
	// no data available; err is non-nil only for real read failures.
	ReadByte() (b byte, ok bool, err error)

	// Write sends bytes to the terminal output stream.
	Write(p []byte) (n int, err error)

	// WindowSize queries the terminal driver for the screen dimensions.
	WindowSize() (rows, cols int, err error)
}
