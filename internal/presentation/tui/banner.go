package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"        _       _               _    _ _   ", "#818cf8"},
	{"   ___ (_)_ __ | |__   ___ _ __| | _(_) |_ ", "#a78bfa"},
	{"  / __|| | '_ \\| '_ \\ / _ \\ '__| |/ / | __|", "#c084fc"},
	{" | (__ | | |_) | | | |  __/ |  |   <| | |_ ", "#e879f9"},
	{"  \\___||_| .__/|_| |_|\\___|_|  |_|\\_\\_|\\__|", "#f472b6"},
	{"         |_|                               ", "#fb7185"},
}

// PrintBanner writes the cipherkit ASCII art banner to w using profile p.
func PrintBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
