package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the togglewalk banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct{ text, color string }{
		{" _                   _                 _ _   ", "#818cf8"},
		{"| |_ ___   __ _  __ _| | _____      ____ _| | | __", "#a78bfa"},
		{"| __/ _ \\ / _` |/ _` | |/ _ \\ \\ /\\ / / _` | | |/ /", "#c084fc"},
		{"| || (_) | (_| | (_| | |  __/\\ V  V / (_| | |   < ", "#e879f9"},
		{" \\__\\___/ \\__, |\\__, |_|\\___| \\_/\\_/ \\__,_|_|_|\\_\\", "#f472b6"},
		{"          |___/ |___/                              ", "#fb7185"},
	}
	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
