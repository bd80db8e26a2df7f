// Package config provides the configuration loader for reach.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filenames lists the config file names searched for, in priority order.
var Filenames = []string{"reach.yaml", "reach.yml", "reach.toml"}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
// It searches the working directory and its parents for a config file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load finds the nearest config file at or above cwd and reads it.
// Without a config file the default configuration rooted at cwd is returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, err := findConfig(cwd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := domain.DefaultConfig()
		cfg.Root = cwd
		cfg.Cache = filepath.Join(cwd, cfg.Cache)
		return cfg, nil
	}

	if l.logger != nil {
		l.logger.Info("using config " + path)
	}
	return Load(path)
}

// LoadFile reads the configuration file at path.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}
	return Load(abs)
}

// Load reads a configuration file from the given path.
// The file extension selects the decoder.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Reachfile
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	return toDomain(&file, filepath.Dir(path))
}

func toDomain(file *Reachfile, root string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.Root = root
	if file.Version != "" {
		cfg.Version = file.Version
	}
	cfg.Schema = compact(file.Schema)
	cfg.Retain = compact(file.Retain)
	cfg.Ignore = compact(file.Ignore)

	switch {
	case file.Cache == nil:
		cfg.Cache = filepath.Join(root, domain.DefaultCachePath)
	case *file.Cache == "":
		cfg.Cache = ""
	case filepath.IsAbs(*file.Cache):
		cfg.Cache = *file.Cache
	default:
		cfg.Cache = filepath.Join(root, *file.Cache)
	}

	if file.Format != "" {
		cfg.Format = file.Format
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateFormat checks that format is one the renderer understands.
func ValidateFormat(format string) error {
	if format != domain.FormatText && format != domain.FormatJSON {
		return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, "invalid format"), "format", format)
	}
	return nil
}

func findConfig(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		for _, name := range Filenames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return "", zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", candidate)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// compact sorts and deduplicates a list of patterns or names.
func compact(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
