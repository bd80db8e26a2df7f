// Package cas implements the report store, a flat JSON file of analysis
// reports keyed by schema fingerprint.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/reach/internal/core/domain"
	"go.trai.ch/reach/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Report
}

// NewStore creates a new ReportStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Report),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open is a ports.ReportStoreFactory backed by NewStore.
func Open(path string) (ports.ReportStore, error) {
	s, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read report store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal report store"), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for report store")
	}

	tmp, err := os.CreateTemp(dir, ".reports-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary report store")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write report store")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write report store")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.Wrap(err, "failed to replace report store")
	}

	return nil
}

// Get retrieves the report stored for a fingerprint.
func (s *Store) Get(fingerprint string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.cache[fingerprint]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

// Put stores the report under its fingerprint and persists the store.
func (s *Store) Put(report domain.Report) error {
	if report.Fingerprint == "" {
		return zerr.New("report has no fingerprint")
	}

	s.mu.Lock()
	s.cache[report.Fingerprint] = report
	s.mu.Unlock()

	return s.save()
}

// Clear removes the store file. A missing file is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cache = make(map[string]domain.Report)
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove report store"), "path", s.path)
	}
	return nil
}
