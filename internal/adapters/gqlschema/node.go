package gqlschema

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reach/internal/adapters/logger"
	"go.trai.ch/reach/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the SchemaLoader Graft node.
	LoaderNodeID graft.ID = "adapter.gqlschema.loader"
	// PrinterNodeID is the unique identifier for the SchemaPrinter Graft node.
	PrinterNodeID graft.ID = "adapter.gqlschema.printer"
)

func init() {
	graft.Register(graft.Node[ports.SchemaLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SchemaLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.SchemaPrinter]{
		ID:        PrinterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemaPrinter, error) {
			return NewPrinter(), nil
		},
	})
}
