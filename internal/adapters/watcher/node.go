package watcher

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/grindlemire/graft"
	"go.trai.ch/reach/internal/adapters/config"
	"go.trai.ch/reach/internal/adapters/fs"
	"go.trai.ch/reach/internal/adapters/logger"
	"go.trai.ch/reach/internal/core/ports"
)

// NodeID is the unique identifier for the watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				w, err := NewWatcher(IsSchemaOrConfig, log)
				if err != nil {
					return nil, err
				}
				return w, nil
			}, nil
		},
	})
}

// IsSchemaOrConfig reports whether path is an SDL document or a config file.
func IsSchemaOrConfig(path string) bool {
	return slices.Contains(fs.SchemaExtensions, filepath.Ext(path)) ||
		slices.Contains(config.Filenames, filepath.Base(path))
}
