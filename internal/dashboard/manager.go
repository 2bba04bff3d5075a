// Package dashboard implements the mutation operations of the
// configuration store. Every operation is the same fixed sequence:
// validate, load, check invariants, compute the new document, commit,
// then run any icon-file cleanup. Icon files are only deleted after a
// successful commit so a failed commit never loses an asset that the
// document still references.
package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/crapshack/crapdash/internal/assets"
	"github.com/crapshack/crapdash/internal/logger"
	"github.com/crapshack/crapdash/internal/store"
)

// Manager composes schema validation, the document store and the icon
// asset manager into all-or-nothing operations.
type Manager struct {
	store *store.Store
	icons *assets.Manager
	log   logger.Logger

	now   func() time.Time
	newID func() string
}

// New wires a manager over the given store and asset manager.
func New(st *store.Store, icons *assets.Manager, log logger.Logger) *Manager {
	return &Manager{
		store: st,
		icons: icons,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
