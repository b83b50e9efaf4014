// ABOUTME: VT100 escape sequences used by the frame renderer and shutdown path.
// ABOUTME: These byte strings are part of the wire contract and must stay bit-exact.

package screen

const (
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
	CursorHome  = "\x1b[H"
	ClearScreen = "\x1b[2J"
	ClearLine   = "\x1b[K"
)

// RowMarker is the single-column placeholder drawn on every row until
// real row content exists.
const RowMarker = "~"
