// Package render writes analysis reports as styled text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/reach/internal/ui/output"
	"go.trai.ch/reach/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for one output format.
type Renderer struct {
	format string
}

// NewRenderer creates a Renderer for format, which must be text or json.
// An empty format selects text.
func NewRenderer(format string) (*Renderer, error) {
	switch format {
	case "", domain.FormatText:
		return &Renderer{format: domain.FormatText}, nil
	case domain.FormatJSON:
		return &Renderer{format: domain.FormatJSON}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "failed to create renderer"), "format", format)
	}
}

// New is a ports.RendererFactory backed by NewRenderer.
func New(format string) (ports.Renderer, error) {
	r, err := NewRenderer(format)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Format returns the output format.
func (r *Renderer) Format() string {
	return r.format
}

type reachableJSON struct {
	Fingerprint string   `json:"fingerprint"`
	Reachable   []string `json:"reachable"`
}

type unusedJSON struct {
	Fingerprint string   `json:"fingerprint"`
	Unreachable []string `json:"unreachable"`
	Total       int      `json:"total"`
}

// Reachable writes the reached types.
func (r *Renderer) Reachable(w io.Writer, report *domain.Report) error {
	if r.format == domain.FormatJSON {
		return writeJSON(w, reachableJSON{
			Fingerprint: report.Fingerprint,
			Reachable:   nonNil(report.Reachable),
		})
	}

	p := output.Palette(w)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		p.Heading.Render("Reachable types"),
		p.Count.Render(fmt.Sprintf("(%d)", len(report.Reachable))))
	for _, name := range report.Reachable {
		fmt.Fprintf(&b, "  %s %s\n", p.Reached.Render(style.Reached), name)
	}
	return writeString(w, b.String())
}

// Unused writes the declared types that were not reached.
func (r *Renderer) Unused(w io.Writer, report *domain.Report) error {
	if r.format == domain.FormatJSON {
		return writeJSON(w, unusedJSON{
			Fingerprint: report.Fingerprint,
			Unreachable: nonNil(report.Unreachable),
			Total:       report.Total,
		})
	}

	p := output.Palette(w)
	var b strings.Builder
	if !report.HasUnreachable() {
		fmt.Fprintf(&b, "%s all %d types are reachable\n", p.Reached.Render(style.Check), report.Total)
		return writeString(w, b.String())
	}

	fmt.Fprintf(&b, "%s %s\n",
		p.Heading.Render("Unreachable types"),
		p.Count.Render(fmt.Sprintf("(%d of %d)", len(report.Unreachable), report.Total)))
	for _, name := range report.Unreachable {
		fmt.Fprintf(&b, "  %s %s\n", p.Unreached.Render(style.Unreached), name)
	}
	return writeString(w, b.String())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to write json output")
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return zerr.Wrap(err, "failed to write output")
	}
	return nil
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
