// Package termio provides the small terminal checks the client needs
// before handing control to the Bubble Tea event loop: confirming stdin
// is an interactive terminal and reading its current size.
package termio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// MinWidth and MinHeight are the smallest terminal dimensions the
// renderer can draw a usable puzzle grid into.
const (
	MinWidth  = 40
	MinHeight = 10
)

// RequireInteractive fails fast with a clear message if stdin isn't an
// interactive terminal, since the Bubble Tea program has nothing useful
// to draw to a pipe or redirected file.
func RequireInteractive() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("unquote: stdin is not an interactive terminal")
	}
	return nil
}

// Size returns the current terminal width and height in columns/rows.
func Size() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TooSmall reports whether width/height fall below the minimum the
// renderer can usefully draw into.
func TooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}
