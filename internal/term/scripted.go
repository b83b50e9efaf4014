// ABOUTME: ScriptedTty implements Tty for testing without a real terminal device.
// ABOUTME: Plays back queued read events, records writes, and tracks attribute state.

package term

import (
	"bytes"
	"errors"
)

// ErrScriptExhausted is returned by ScriptedTty.ReadByte when the test
// script queued fewer read events than the code under test consumed.
var ErrScriptExhausted = errors.New("scripted tty: no more read events")

// attribute states for the fake attribute store
const (
	attrsCanonical = "canonical"
	attrsRaw       = "raw"
)

// compile-time check: ScriptedTty must satisfy Tty.
var _ Tty = (*ScriptedTty)(nil)

type readEvent struct {
	b       byte
	timeout bool
	err     error
}

// ScriptedTty is a fake Tty for unit tests. Reads play back a queued
// script of bytes, timeouts, and errors; writes are recorded with their
// call boundaries preserved; the attribute store is a marker string so
// tests can verify the enable/disable round trip.
type ScriptedTty struct {
	rows    int
	cols    int
	sizeErr error

	reads     []readEvent
	readCalls int
	writes    [][]byte

	attrs      string
	savedAttrs string
	enterCount int
	exitCount  int
	enterErr   error
}

// NewScriptedTty returns a ScriptedTty whose WindowSize reports the
// given dimensions and whose attributes start out canonical.
func NewScriptedTty(rows, cols int) *ScriptedTty {
	return &ScriptedTty{rows: rows, cols: cols, attrs: attrsCanonical}
}

// EnterRawMode saves the current attribute marker and switches to raw.
func (s *ScriptedTty) EnterRawMode() error {
	if s.enterErr != nil {
		return s.enterErr
	}
	s.savedAttrs = s.attrs
	s.attrs = attrsRaw
	s.enterCount++
	return nil
}

// ExitRawMode restores the attribute marker saved at EnterRawMode.
func (s *ScriptedTty) ExitRawMode() error {
	if s.enterCount == 0 {
		return nil
	}
	s.attrs = s.savedAttrs
	s.exitCount++
	return nil
}

// ReadByte pops the next scripted read event.
func (s *ScriptedTty) ReadByte() (byte, bool, error) {
	s.readCalls++
	if len(s.reads) == 0 {
		return 0, false, ErrScriptExhausted
	}
	ev := s.reads[0]
	s.reads = s.reads[1:]
	if ev.err != nil {
		return 0, false, ev.err
	}
	if ev.timeout {
		return 0, false, nil
	}
	return ev.b, true, nil
}

// Write records the written bytes, preserving call boundaries.
func (s *ScriptedTty) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	s.writes = append(s.writes, cp)
	return len(p), nil
}

// WindowSize reports the configured dimensions or the injected error.
func (s *ScriptedTty) WindowSize() (rows, cols int, err error) {
	if s.sizeErr != nil {
		return 0, 0, s.sizeErr
	}
	return s.rows, s.cols, nil
}

// --- Script setup ---

// QueueByte scripts a successful one-byte read.
func (s *ScriptedTty) QueueByte(b byte) {
	s.reads = append(s.reads, readEvent{b: b})
}

// QueueString scripts a successful read for each byte of str.
func (s *ScriptedTty) QueueString(str string) {
	for i := 0; i < len(str); i++ {
		s.QueueByte(str[i])
	}
}

// QueueTimeout scripts a timed-out read with no data.
func (s *ScriptedTty) QueueTimeout() {
	s.reads = append(s.reads, readEvent{timeout: true})
}

// QueueReadError scripts a failing read.
func (s *ScriptedTty) QueueReadError(err error) {
	s.reads = append(s.reads, readEvent{err: err})
}

// SetSizeError makes WindowSize fail, forcing the probe fallback.
func (s *ScriptedTty) SetSizeError(err error) {
	s.sizeErr = err
}

// SetEnterError makes EnterRawMode fail.
func (s *ScriptedTty) SetEnterError(err error) {
	s.enterErr = err
}

// --- Inspection ---

// Writes returns each recorded Write call's bytes, in order.
func (s *ScriptedTty) Writes() [][]byte {
	return s.writes
}

// Output returns all written bytes concatenated.
func (s *ScriptedTty) Output() []byte {
	return bytes.Join(s.writes, nil)
}

// ReadCalls returns how many times ReadByte was called.
func (s *ScriptedTty) ReadCalls() int {
	return s.readCalls
}

// Attrs returns the current attribute marker.
func (s *ScriptedTty) Attrs() string {
	return s.attrs
}

// EnterCount returns how many times EnterRawMode succeeded.
func (s *ScriptedTty) EnterCount() int {
	return s.enterCount
}

// ExitCount returns how many times ExitRawMode restored attributes.
func (s *ScriptedTty) ExitCount() int {
	return s.exitCount
}
