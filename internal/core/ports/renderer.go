package ports

import (
	"io"

	"go.trai.ch/reach/internal/core/domain"
)

// Renderer writes analysis results for the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Reachable writes the types reached from the schema roots.
	Reachable(w io.Writer, report *domain.Report) error
	// Unused writes the declared types that were not reached.
	Unused(w io.Writer, report *domain.Report) error
}

// RendererFactory creates a Renderer for an output format.
type RendererFactory func(format string) (Renderer, error)
