// Package gqlschema loads GraphQL SDL documents into the domain schema model
// and prints pruned schemas, using gqlparser.
package gqlschema

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.SchemaLoader = (*Loader)(nil)

// Loader implements ports.SchemaLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every file in paths concurrently and parses them as one schema.
func (l *Loader) Load(ctx context.Context, paths []string) (*domain.Schema, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoSchemaInputs
	}

	sources := make([]*ast.Source, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path) //nolint:gosec // path is resolved from user input
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read schema file"), "path", path)
			}
			sources[i] = &ast.Source{Name: path, Input: string(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	schema, err := Parse(sources...)
	if err != nil {
		return nil, err
	}

	if l.logger != nil {
		l.logger.Info("loaded schema from " + strconv.Itoa(len(paths)) + " file(s)")
	}
	return schema, nil
}

// Parse validates sources as one schema and converts it.
// The sources are recorded on the returned schema.
func Parse(sources ...*ast.Source) (*domain.Schema, error) {
	parsed, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, invalidSchema(err)
	}

	schema, err := Convert(parsed)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to convert schema")
	}

	for _, src := range sources {
		schema.AddSource(domain.SchemaSource{Name: src.Name, Input: src.Input})
	}
	return schema, nil
}

func invalidSchema(err error) error {
	wrapped := zerr.With(zerr.Wrap(domain.ErrSchemaInvalid, "failed to load schema"), "reason", err.Error())

	if gqlErr, ok := err.(*gqlerror.Error); ok {
		if file, ok := gqlErr.Extensions["file"].(string); ok {
			wrapped = zerr.With(wrapped, "file", file)
		}
		if len(gqlErr.Locations) > 0 {
			wrapped = zerr.With(wrapped, "line", gqlErr.Locations[0].Line)
		}
	}
	return wrapped
}
