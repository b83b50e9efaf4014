// ABOUTME: AppendBuffer accumulates one frame of terminal output for a single batched write.
// ABOUTME: Grows exactly to fit each append and is released by Flush; one instance per frame.

package screen

import (
	"fmt"
	"io"
)

// AppendBuffer is an append-only byte buffer. The zero value is ready
// to use. Each append grows the backing store to exactly the required
// size; nothing is reserved ahead of need. A buffer lives for one frame:
// created empty, appended to, flushed once, gone.
type AppendBuffer struct {
	buf []byte
}

// Append adds p after the existing contents.
func (b *AppendBuffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	grown := make([]byte, len(b.buf)+len(p))
	copy(grown, b.buf)
	copy(grown[len(b.buf):], p)
	b.buf = grown
}

// AppendString adds s after the existing contents.
func (b *AppendBuffer) AppendString(s string) {
	b.Append([]byte(s))
}

// Len returns the number of buffered bytes.
func (b *AppendBuffer) Len() int {
	return len(b.buf)
}

// Bytes returns the buffered contents.
func (b *AppendBuffer) Bytes() []byte {
	return b.buf
}

// Flush writes the entire contents to w in a single Write call and
// releases the buffer, successful or not. A short write is reported to
// the caller and never retried. Flushing an empty buffer writes nothing.
func (b *AppendBuffer) Flush(w io.Writer) error {
	buf := b.buf
	b.buf = nil
	if len(buf) == 0 {
		return nil
	}
	n, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	if n < len(buf) {
		return fmt.Errorf("flushing frame: %w", io.ErrShortWrite)
	}
	return nil
}
