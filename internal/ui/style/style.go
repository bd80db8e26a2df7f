// Package style holds the colors, icons and lipgloss styles shared by the
// report renderer and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Accent  = lipgloss.Color("#8B5CF6")
	Muted   = lipgloss.Color("#667085")
	Success = lipgloss.Color("#22A06B")
	Failure = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	// Reached marks a reachable type.
	Reached = "●"
	// Unreached marks a declared type no root reaches.
	Unreached = "○"
	Check     = "✓"
	Cross     = "✗"
	Warning   = "!"
)

// Palette is the set of styles used to print a report.
type Palette struct {
	Heading   lipgloss.Style
	Count     lipgloss.Style
	Reached   lipgloss.Style
	Unreached lipgloss.Style
}

// NewPalette builds a Palette bound to r, so styles follow r's color profile.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Heading:   r.NewStyle().Bold(true).Foreground(Accent),
		Count:     r.NewStyle().Foreground(Muted),
		Reached:   r.NewStyle().Foreground(Success),
		Unreached: r.NewStyle().Foreground(Failure),
	}
}

// LogPalette is the set of styles used to print log records.
type LogPalette struct {
	Error lipgloss.Style
	Warn  lipgloss.Style
	Info  lipgloss.Style
	Key   lipgloss.Style
}

// NewLogPalette builds a LogPalette bound to r.
func NewLogPalette(r *lipgloss.Renderer) LogPalette {
	return LogPalette{
		Error: r.NewStyle().Foreground(Failure),
		Warn:  r.NewStyle().Foreground(Caution),
		Info:  r.NewStyle().Foreground(Muted),
		Key:   r.NewStyle().Foreground(Accent),
	}
}
