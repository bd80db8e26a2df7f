package ports

import "go.trai.ch/reach/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// A directory without a config file yields the default configuration.
	Load(cwd string) (*domain.Config, error)
	// LoadFile reads the configuration from an explicit file.
	LoadFile(path string) (*domain.Config, error)
}
