package tui

import (
	"io"
	"os"

	"github.com/aretw0/togglewalk/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Colorizer decorates answers by outcome kind.
type Colorizer struct {
	out *termenv.Output
}

// NewColorizer builds a colorizer for w. Writers that are not terminals get
// plain text.
func NewColorizer(w io.Writer) *Colorizer {
	profile := termenv.Ascii
	if IsTerminal(w) {
		profile = termenv.EnvColorProfile()
	}
	return &Colorizer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Colorize renders text in the color of the outcome.
func (c *Colorizer) Colorize(outcome domain.Outcome, text string) string {
	var hex string
	switch outcome.Kind {
	case domain.ReachedTarget:
		hex = "#4ade80"
	case domain.CycleDetected:
		hex = "#facc15"
	default:
		hex = "#f87171"
	}
	return c.out.String(text).Foreground(c.out.Color(hex)).String()
}
