// Package termwidth resolves the terminal column budget for rendering.
package termwidth

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used when no terminal size can be determined.
const DefaultWidth = 120

// Width returns the column count for f: the COLUMNS environment variable
// when it parses as a positive integer, otherwise the size of the attached
// terminal, otherwise DefaultWidth.
func Width(f *os.File) int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n >= 1 {
			return n
		}
	}

	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w >= 1 {
			return w
		}
	}

	return DefaultWidth
}
