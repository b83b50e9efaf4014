// ABOUTME: ProcessTty implements Tty against the real controlling terminal via golang.org/x/sys.
// ABOUTME: Handles termios raw mode with a 100ms read timeout, winsize ioctl, and raw byte reads.

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// compile-time check: ProcessTty must satisfy Tty.
var _ Tty = (*ProcessTty)(nil)

// ProcessTty is the real terminal, backed by os.Stdin/os.Stdout.
type ProcessTty struct {
	in   *os.File
	out  *os.File
	orig *unix.Termios
}

// NewProcessTty returns a ProcessTty bound to the process's standard
// input and output.
func NewProcessTty() *ProcessTty {
	return &ProcessTty{in: os.Stdin, out: os.Stdout}
}

// EnterRawMode captures the current attributes, then applies a raw set:
// no echo, no canonical buffering, no signal or flow-control characters,
// no input/output translation, 8-bit characters, and a read that returns
// after at most 100ms when no byte is available.
func (t *ProcessTty) EnterRawMode() error {
	fd := int(t.in.Fd())

	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("reading terminal attributes: %w", err)
	}
	t.orig = orig

	raw := *orig
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1 // tenths of a second

	// TCSETSF drains output and discards unread input before applying.
	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &raw); err != nil {
		return fmt.Errorf("applying raw mode: %w", err)
	}
	return nil
}

// ExitRawMode restores the attributes captured by EnterRawMode, again
// discarding any unread input.
func (t *ProcessTty) ExitRawMode() error {
	if t.orig == nil {
		return nil
	}
	fd := int(t.in.Fd())
	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, t.orig); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	t.orig = nil
	return nil
}

// ReadByte reads a single byte from the terminal. With VMIN=0/VTIME=1
// the underlying read returns 0 after the timeout when no byte arrived;
// that case reports ok=false with no error.
func (t *ProcessTty) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(int(t.in.Fd()), buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err == nil || err == unix.EAGAIN || err == unix.EINTR {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("reading key: %w", err)
}

// Write sends bytes to the terminal output stream.
func (t *ProcessTty) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// WindowSize queries the terminal driver for the screen dimensions.
func (t *ProcessTty) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("querying window size: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}
