package tui

import (
	"fmt"
	"io"
)

// ConsoleProgress implements application.ProgressReporter. On a terminal it
// rewrites a single line; otherwise every distinct percentage gets its own
// line.
type ConsoleProgress struct {
	w         io.Writer
	overwrite bool
	last      int
}

func NewConsoleProgress(w io.Writer, overwrite bool) *ConsoleProgress {
	return &ConsoleProgress{w: w, overwrite: overwrite, last: -1}
}

func (p *ConsoleProgress) Progress(percent int) {
	if p.overwrite {
		fmt.Fprintf(p.w, "\rProgress: %d%%", percent)
	} else if percent != p.last {
		fmt.Fprintf(p.w, "Progress: %d%%\n", percent)
	}
	p.last = percent
}

func (p *ConsoleProgress) Done() {
	if p.overwrite {
		fmt.Fprint(p.w, "\rProgress: 100%\n")
	} else if p.last != 100 {
		fmt.Fprint(p.w, "Progress: 100%\n")
	}
	p.last = -1
}
