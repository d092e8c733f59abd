package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program banner to w, shaded for the given color profile.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	lines := []struct {
		text string
		hex  string
	}{
		{"     _                          ", "#60a5fa"},
		{"  __| | ___ _ __  ___  ___ __ _ ", "#818cf8"},
		{" / _` |/ _ \\ '_ \\/ __|/ __/ _` |", "#a78bfa"},
		{"| (_| |  __/ | | \\__ \\ (_| (_| |", "#c084fc"},
		{" \\__,_|\\___|_| |_|___/\\___\\__,_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.hex)))
	}
	fmt.Fprintf(w, "  sequential density classification, v%s\n\n", version)
}
