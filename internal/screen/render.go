// ABOUTME: Frame renderer: composes one full-screen redraw into an AppendBuffer and flushes it.
// ABOUTME: The cursor is hidden for the duration of the redraw and homed afterward.

package screen

import "io"

// Render draws one complete frame to w: hide the cursor, home it, draw
// every row, home it again, show it, then issue the single batched
// write. Each row is the placeholder marker followed by clear-to-end-
// of-line; rows are separated by CRLF with none after the last row, so
// the frame never scrolls the screen.
func Render(w io.Writer, rows, cols int) error {
	var b AppendBuffer
	b.AppendString(HideCursor)
	b.AppendString(CursorHome)
	drawRows(&b, rows, cols)
	b.AppendString(CursorHome)
	b.AppendString(ShowCursor)
	return b.Flush(w)
}

// drawRows appends the per-row content. cols is unused while rows carry
// only the placeholder marker; real row content will truncate to it.
func drawRows(b *AppendBuffer, rows, cols int) {
	for y := 0; y < rows; y++ {
		b.AppendString(RowMarker)
		b.AppendString(ClearLine)
		if y < rows-1 {
			b.AppendString("\r\n")
		}
	}
}
