package ui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// NewProgressPrinter returns a progress sink for pipeline status lines.
// Lines are dimmed on color-capable terminals and plain everywhere else, so
// redirected output stays free of escape codes.
func NewProgressPrinter(w io.Writer) func(string) {
	styled := termenv.NewOutput(w).Profile != termenv.Ascii
	return func(line string) {
		if styled {
			fmt.Fprintln(w, ProgressStyle.Render(line))
			return
		}
		fmt.Fprintln(w, line)
	}
}
