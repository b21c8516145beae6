// Package terminal holds small helpers for interactive prompts.
package terminal

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases a prompt and the user's answer after Enter was
// pressed. textLength is the combined length of both; wrapping is computed
// from the current terminal width (80 when unknown).
func ClearPreviousLines(w io.Writer, textLength int) {
	width := 80
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		width = cols
	}

	lines := int(math.Ceil(float64(textLength) / float64(width)))
	if lines < 1 {
		lines = 1
	}
	// +1 for the empty line the cursor sits on after Enter.
	lines++

	for i := 0; i < lines; i++ {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < lines-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
