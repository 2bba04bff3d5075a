// Package store owns the dashboard configuration document on disk.
//
// The document is a single pretty-printed JSON file. Commits write to a
// temp file in the same directory and rename it over the target, so an
// interrupted write can never leave a truncated or invalid document.
// A per-store mutex serializes load+commit pairs; without it two racing
// mutations could both load the old document and silently clobber each
// other on the whole file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/logger"
)

// Store is the single source of truth for the DashboardConfig document.
type Store struct {
	path string
	log  logger.Logger

	mu sync.Mutex
}

// New returns a store bound to the given document path. Nothing is read
// until the first Load or Update.
func New(path string, log logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the document file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the document. A missing file is first-run
// bootstrap: an empty default document is persisted and returned.
func (s *Store) Load() (*domain.DashboardConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Commit serializes doc and atomically replaces the document file.
func (s *Store) Commit(doc *domain.DashboardConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn on the current document and commits the result, all
// inside one critical section. fn returning an error aborts the update
// with nothing written.
func (s *Store) Update(fn func(doc *domain.DashboardConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) load() (*domain.DashboardConfig, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := domain.NewDashboardConfig()
		if err := s.write(doc); err != nil {
			return nil, err
		}
		s.log.Info("bootstrapped empty dashboard config", logger.String("path", s.path))
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc domain.DashboardConfig
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if doc.Categories == nil {
		doc.Categories = []domain.Category{}
	}
	if doc.Services == nil {
		doc.Services = []domain.Service{}
	}
	return &doc, nil
}

func (s *Store) write(doc *domain.DashboardConfig) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod config file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}
