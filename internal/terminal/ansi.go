package terminal

import "strconv"

// Control sequences written by the prompts and the spinner.
const (
	// Reset clears the screen and scrollback.
	Reset = "\x1bc"
	// EraseLine erases the whole current line.
	EraseLine = "\x1b[2K"
	// EraseToEndOfLine erases from the cursor to the end of the line.
	EraseToEndOfLine = "\x1b[K"
	// EraseDown erases from the cursor to the end of the screen.
	EraseDown = "\x1b[J"
	// HideCursor hides the cursor.
	HideCursor = "\x1b[?25l"
	// ShowCursor shows the cursor.
	ShowCursor = "\x1b[?25h"
)

// CursorUp moves the cursor n lines up.
func CursorUp(n int) string {
	return "\x1b[" + strconv.Itoa(n) + "A"
}
