// Package output binds the shared styles to the stream being written.
// Reports on stdout and logs on stderr each get the profile of their own
// stream, so `reach unused | grep` stays plain while logs keep color.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/reach/internal/ui/style"
)

// Profile returns the color profile for writing to w.
// NO_COLOR forces Ascii. A writer that is not a terminal is Ascii unless
// CLICOLOR_FORCE is set.
func Profile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// Renderer returns a lipgloss renderer for w with Profile(w).
// A nil writer means stderr.
func Renderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stderr
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(Profile(w))
	return r
}

// Palette returns the report palette for w.
func Palette(w io.Writer) style.Palette {
	return style.NewPalette(Renderer(w))
}

// LogPalette returns the log palette for w.
func LogPalette(w io.Writer) style.LogPalette {
	return style.NewLogPalette(Renderer(w))
}
