// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reach/internal/adapters/cas"
	_ "go.trai.ch/reach/internal/adapters/config"
	_ "go.trai.ch/reach/internal/adapters/fs"
	_ "go.trai.ch/reach/internal/adapters/gqlschema"
	_ "go.trai.ch/reach/internal/adapters/logger"
	_ "go.trai.ch/reach/internal/adapters/render"
	_ "go.trai.ch/reach/internal/adapters/telemetry"
	_ "go.trai.ch/reach/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/reach/internal/app"
)
