// Package assets owns the on-disk directory of uploaded icon files.
//
// Writes go through a temp-file-then-rename sequence so a reader never
// observes a half-written icon. Deletions and stale-file cleanup are
// best-effort: failures are logged and swallowed because they must not
// block an otherwise successful mutation.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/validate"
)

// safeEntityIDRe rejects ids that could escape the icons directory.
var safeEntityIDRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Manager persists icon files under a flat directory, one file per
// owning entity, named "<entityID><ext>".
type Manager struct {
	dir string
	log logger.Logger
}

// NewManager creates the icons directory if needed and returns a
// manager bound to it.
func NewManager(dir string, log logger.Logger) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create icons directory: %w", err)
	}
	return &Manager{dir: dir, log: log}, nil
}

// Dir returns the managed directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// Store validates and persists an uploaded icon for entityID, returning
// the relative path ("icons/<file>") to record in the document.
//
// All validation failures are reported before any disk write. The final
// file appears atomically via rename; any pre-existing file sharing the
// basename but a different extension is then removed best-effort.
func (m *Manager) Store(entityID string, data []byte, declaredMIME, originalFilename string) (string, error) {
	var errs validate.Errors
	if !safeEntityIDRe.MatchString(entityID) {
		errs = append(errs, validate.FieldError{Field: "entityId", Message: "invalid entity id"})
	}
	if len(data) == 0 {
		errs = append(errs, validate.FieldError{Field: "file", Message: "no file provided"})
	}
	if len(data) > validate.MaxIconFileSize {
		errs = append(errs, validate.FieldError{Field: "file", Message: "file too large, maximum size is 2MiB"})
	}
	if !validate.IsAllowedImageMIME(declaredMIME) {
		errs = append(errs, validate.FieldError{Field: "file", Message: "invalid file type, only PNG, JPG, JPEG, SVG, WEBP and GIF are allowed"})
	}
	ext := validate.ImageExtension(originalFilename)
	if !validate.IsAllowedImageExtension(originalFilename) {
		errs = append(errs, validate.FieldError{Field: "file", Message: "invalid file extension"})
	}
	if len(errs) > 0 {
		return "", errs
	}

	// Declared type and extension both passed the allowlist; a content
	// mismatch is logged only, the declared type stays authoritative.
	if detected := mimetype.Detect(data); !detected.Is(declaredMIME) {
		m.log.Warn("icon content type does not match declared type",
			logger.String("entity", entityID),
			logger.String("declared", declaredMIME),
			logger.String("detected", detected.String()))
	}

	filename := entityID + ext
	finalPath := filepath.Join(m.dir, filename)

	tmp, err := os.CreateTemp(m.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp icon file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write icon file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close icon file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to chmod icon file: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("failed to rename icon file: %w", err)
	}

	m.removeStale(entityID, filename)

	m.log.Info("stored icon",
		logger.String("entity", entityID),
		logger.String("file", filename),
		logger.Int("bytes", len(data)))

	return "icons/" + filename, nil
}

// Delete removes every file whose basename equals entityID, whatever
// its extension. It never fails; problems are logged and swallowed.
func (m *Manager) Delete(entityID string) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.log.Warn("failed to scan icons directory", logger.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if basename(name) != entityID {
			continue
		}
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
			m.log.Warn("failed to delete icon",
				logger.String("file", name), logger.Error(err))
			continue
		}
		m.log.Info("deleted icon", logger.String("file", name))
	}
}

// PathFor returns the relative icon path for entityID when a file with
// that basename exists.
func (m *Manager) PathFor(entityID string) (string, bool) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if !entry.IsDir() && basename(entry.Name()) == entityID {
			return "icons/" + entry.Name(), true
		}
	}
	return "", false
}

// removeStale deletes files sharing the basename but not the freshly
// written name, e.g. a prior upload in a different format.
func (m *Manager) removeStale(entityID, keep string) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.log.Warn("failed to scan icons directory", logger.Error(err))
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == keep || basename(name) != entityID {
			continue
		}
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
			m.log.Warn("failed to delete stale icon",
				logger.String("file", name), logger.Error(err))
			continue
		}
		m.log.Debug("deleted stale icon", logger.String("file", name))
	}
}

func basename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
