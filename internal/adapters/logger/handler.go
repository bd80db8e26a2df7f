package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/reach/internal/ui/output"
	"go.trai.ch/reach/internal/ui/style"
)

// ConsoleHandler is a slog.Handler for terminals. Each record is written as
// a level marker, the message and its attributes as key=value pairs.
// Info records carry no marker so progress lines read like plain output.
type ConsoleHandler struct {
	mu      *sync.Mutex
	w       io.Writer
	level   slog.Leveler
	palette style.LogPalette

	// prefix holds the open groups, each followed by a dot.
	prefix string
	// attrs are rendered once by WithAttrs.
	attrs []string
}

// NewConsoleHandler creates a ConsoleHandler writing to w, which defaults
// to stderr. Records below level are dropped.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		mu:      &sync.Mutex{},
		w:       w,
		level:   level,
		palette: output.LogPalette(w),
	}
}

// Enabled reports whether records at level are written.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as one entry. A multi-line message keeps its line breaks.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	tone := h.palette.Info
	switch {
	case r.Level >= slog.LevelError:
		tone = h.palette.Error
		b.WriteString(tone.Render(style.Cross) + " ")
	case r.Level >= slog.LevelWarn:
		tone = h.palette.Warn
		b.WriteString(tone.Render(style.Warning) + " ")
	}
	b.WriteString(paintLines(tone, r.Message))

	parts := h.attrs
	r.Attrs(func(a slog.Attr) bool {
		parts = h.appendAttr(parts, h.prefix, a)
		return true
	})
	for _, part := range parts {
		b.WriteString(" " + part)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a handler that writes attrs after every message.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = h.appendAttr(clone.attrs, h.prefix, a)
	}
	return &clone
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *ConsoleHandler) appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			parts = h.appendAttr(parts, prefix, member)
		}
		return parts
	}

	return append(parts, h.palette.Key.Render(prefix+a.Key+"=")+quote(a.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// paintLines styles each line on its own so lipgloss does not pad the
// lines of a multi-line message to a common width.
func paintLines(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
