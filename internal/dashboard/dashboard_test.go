package dashboard

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crapshack/crapdash/internal/assets"
	"github.com/crapshack/crapdash/internal/domain"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/store"
	"github.com/crapshack/crapdash/internal/validate"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	log := logger.NewNop()
	st := store.New(filepath.Join(dir, "config.json"), log)
	icons, err := assets.NewManager(filepath.Join(dir, "icons"), log)
	if err != nil {
		t.Fatalf("failed to create asset manager: %v", err)
	}

	m := New(st, icons, log)
	m.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	seq := 0
	m.newID = func() string {
		seq++
		return fmt.Sprintf("generated-%d", seq)
	}
	return m
}

func mustCreateCategory(t *testing.T, m *Manager, id, name string) *domain.Category {
	t.Helper()
	cat, err := m.CreateCategory(validate.CategoryInput{ID: id, Name: name})
	if err != nil {
		t.Fatalf("CreateCategory(%s) error = %v", id, err)
	}
	return cat
}

func mustCreateService(t *testing.T, m *Manager, id, categoryID string) *domain.Service {
	t.Helper()
	svc, err := m.CreateService(validate.ServiceInput{
		ID:          id,
		Name:        id,
		Description: "x",
		URL:         "https://" + id + ".local",
		CategoryID:  categoryID,
	})
	if err != nil {
		t.Fatalf("CreateService(%s) error = %v", id, err)
	}
	return svc
}

func iconDirBasenames(t *testing.T, m *Manager, entityID string) []string {
	t.Helper()
	entries, err := os.ReadDir(m.icons.Dir())
	if err != nil {
		t.Fatal(err)
	}
	var matches []string
	for _, e := range entries {
		name := e.Name()
		if name[:len(name)-len(filepath.Ext(name))] == entityID {
			matches = append(matches, name)
		}
	}
	return matches
}
