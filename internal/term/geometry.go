// ABOUTME: Geometry type and terminal size probing with a cursor-report fallback.
// ABOUTME: Parses the VT100 cursor position report with distinct errors per failure mode.

package term

import (
	"errors"
	"fmt"
)

// Geometry is the drawable screen size. Both dimensions are at least 1
// on any successful probe.
type Geometry struct {
	Rows int
	Cols int
}

// Probe failure modes, distinguishable with errors.Is.
var (
	ErrNoResponse = errors.New("no cursor position response")
	ErrBadPrefix  = errors.New("malformed cursor position response")
	ErrBadNumbers = errors.New("unparsable cursor position numbers")
)

// maxReportLen bounds the cursor report payload read before the
// terminating 'R' must have been seen.
const maxReportLen = 31

// Probe determines the terminal geometry. It prefers the driver's
// window-size query; if that fails or reports zero columns it falls
// back to pushing the cursor to the bottom-right extreme and asking
// the terminal where it landed. A failed probe is not retried.
func Probe(t Tty) (Geometry, error) {
	rows, cols, err := t.WindowSize()
	if err == nil && cols > 0 {
		return Geometry{Rows: rows, Cols: cols}, nil
	}
	return probeCursor(t)
}

func probeCursor(t Tty) (Geometry, error) {
	// 999 exceeds any real screen; the terminal clamps the cursor to
	// the bottom-right corner.
	if _, err := t.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return Geometry{}, fmt.Errorf("positioning cursor for size probe: %w", err)
	}
	if _, err := t.Write([]byte("\x1b[6n")); err != nil {
		return Geometry{}, fmt.Errorf("requesting cursor position: %w", err)
	}

	report, err := readCursorReport(t)
	if err != nil {
		return Geometry{}, fmt.Errorf("probing cursor position: %w", err)
	}
	g, err := parseCursorReport(report)
	if err != nil {
		return Geometry{}, fmt.Errorf("probing cursor position: %w", err)
	}
	return g, nil
}

// readCursorReport reads the terminal's reply byte by byte, up to but
// not including the terminating 'R'. A read timeout or an overlong
// reply means the terminal is not answering usefully.
func readCursorReport(t Tty) ([]byte, error) {
	buf := make([]byte, 0, maxReportLen)
	for {
		b, ok, err := t.ReadByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNoResponse
		}
		if b == 'R' {
			return buf, nil
		}
		if len(buf) == maxReportLen {
			return nil, ErrNoResponse
		}
		buf = append(buf, b)
	}
}

// parseCursorReport validates a reply of the form ESC [ rows ; cols
// (the caller has already consumed the trailing 'R').
func parseCursorReport(report []byte) (Geometry, error) {
	if len(report) < 2 || report[0] != 0x1b || report[1] != '[' {
		return Geometry{}, ErrBadPrefix
	}
	var rows, cols int
	if n, err := fmt.Sscanf(string(report[2:]), "%d;%d", &rows, &cols); err != nil || n != 2 {
		return Geometry{}, ErrBadNumbers
	}
	if rows < 1 || cols < 1 {
		return Geometry{}, ErrBadNumbers
	}
	return Geometry{Rows: rows, Cols: cols}, nil
}
