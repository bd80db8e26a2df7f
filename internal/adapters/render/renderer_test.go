package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reach/internal/adapters/render"
	"go.trai.ch/reach/internal/core/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Fingerprint: "00c0ffee00c0ffee",
		Reachable:   []string{"Book", "ID", "Query", "String", "User"},
		Unreachable: []string{"Orphan", "OrphanInput"},
		Total:       5,
	}
}

func newTextRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	r, err := render.NewRenderer(domain.FormatText)
	require.NoError(t, err)
	return r
}

func TestRenderer_Reachable_Text(t *testing.T) {
	r := newTextRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Reachable(&buf, sampleReport()))

	g := goldie.New(t)
	g.Assert(t, "reachable_text", buf.Bytes())
}

func TestRenderer_Unused_Text(t *testing.T) {
	r := newTextRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Unused(&buf, sampleReport()))

	g := goldie.New(t)
	g.Assert(t, "unused_text", buf.Bytes())
}

func TestRenderer_Unused_Text_AllReachable(t *testing.T) {
	r := newTextRenderer(t)

	report := sampleReport()
	report.Unreachable = []string{}

	var buf bytes.Buffer
	require.NoError(t, r.Unused(&buf, report))

	g := goldie.New(t)
	g.Assert(t, "unused_text_none", buf.Bytes())
}

func TestRenderer_JSON(t *testing.T) {
	r, err := render.NewRenderer(domain.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatJSON, r.Format())

	var buf bytes.Buffer
	require.NoError(t, r.Unused(&buf, sampleReport()))

	var got struct {
		Fingerprint string   `json:"fingerprint"`
		Unreachable []string `json:"unreachable"`
		Total       int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "00c0ffee00c0ffee", got.Fingerprint)
	assert.Equal(t, []string{"Orphan", "OrphanInput"}, got.Unreachable)
	assert.Equal(t, 5, got.Total)

	buf.Reset()
	require.NoError(t, r.Reachable(&buf, &domain.Report{Fingerprint: "x"}))
	assert.JSONEq(t, `{"fingerprint":"x","reachable":[]}`, buf.String())
}

func TestNewRenderer_Formats(t *testing.T) {
	r, err := render.NewRenderer("")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatText, r.Format())

	_, err = render.NewRenderer("xml")
	require.ErrorIs(t, err, domain.ErrUnknownFormat)

	factory, err := render.New("xml")
	require.Error(t, err)
	assert.Nil(t, factory)
}
