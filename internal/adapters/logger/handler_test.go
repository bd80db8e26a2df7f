package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reach/internal/adapters/logger"
)

func newConsole(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewConsoleHandler(buf, slog.LevelInfo)), buf
}

func TestConsoleHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newConsole(t)
			lg.Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleHandler_Groups(t *testing.T) {
	lg, buf := newConsole(t)

	lg.With("file", "a.graphql").WithGroup("walk").With("root", "Query").WithGroup("type").
		Info("visited", "name", "User", slog.Group("edges", "fields", 2))

	assert.Equal(t, "visited file=a.graphql walk.root=Query walk.type.name=User walk.type.edges.fields=2\n", buf.String())
}

func TestConsoleHandler_AttrValues(t *testing.T) {
	lg, buf := newConsole(t)

	lg.Info("loaded",
		"path", "schema dir/a.graphql",
		"empty", "",
		slog.Attr{},
		slog.Group("none"),
		slog.Group("", "inline", true),
	)

	assert.Equal(t, `loaded path="schema dir/a.graphql" empty="" inline=true`+"\n", buf.String())
}

func TestConsoleHandler_MultiLineMessage(t *testing.T) {
	lg, buf := newConsole(t)

	lg.Error("Error: failed\n\n  Caused by:\n    → cause")

	assert.Equal(t, "✗ Error: failed\n\n  Caused by:\n    → cause\n", buf.String())
}

func TestConsoleHandler_ForcedColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewConsoleHandler(buf, nil)).Warn("report store disabled")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "report store disabled")
}

func TestConsoleHandler_ConcurrentWritesStayWhole(t *testing.T) {
	lg, buf := newConsole(t)
	shared := lg.With("run", "watch")

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() { shared.Info("checked") })
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, "checked run=watch", line)
	}
}
