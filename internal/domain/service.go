package domain

import "time"

// Service is a bookmarked link rendered on the dashboard.
//
// Array position inside DashboardConfig.Services is the authoritative
// display order; only reorder operations and insert-at-end on creation
// may change it.
type Service struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier. It doubles as the
	// basename of any uploaded icon file for this service.
	ID string `json:"id"`

	// ─────────────────────────────
	// Mutable fields
	// ─────────────────────────────

	// Name is the display name, 1-100 characters.
	Name string `json:"name"`

	// Description is a short blurb, 1-500 characters.
	Description string `json:"description"`

	// URL is the absolute URL the card links to.
	// Example: https://jellyfin.domain.ext
	URL string `json:"url"`

	// CategoryID references an existing Category.ID.
	CategoryID string `json:"categoryId"`

	// Icon is optional and may be any icon kind.
	Icon *IconConfig `json:"icon,omitempty"`

	// Active hides the service from the dashboard when false
	// without deleting it. Defaults to true on creation.
	Active bool `json:"active"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is set once when the service is created.
	CreatedAt time.Time `json:"createdAt"`
}
