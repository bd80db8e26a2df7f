package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reach/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/gqlschema" //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reach/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			gqlschema.LoaderNodeID,
			gqlschema.PrinterNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			cas.NodeID,
			render.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	schemas, err := graft.Dep[ports.SchemaLoader](ctx)
	if err != nil {
		return nil, err
	}

	printer, err := graft.Dep[ports.SchemaPrinter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	openStore, err := graft.Dep[ports.ReportStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	newRenderer, err := graft.Dep[ports.RendererFactory](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, schemas, printer, hasher, log, tracer).
		WithStore(openStore).
		WithRenderer(newRenderer).
		WithWatcher(newWatcher), nil
}
