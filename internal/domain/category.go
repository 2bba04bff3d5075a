package domain

import "time"

// Category groups services on the dashboard.
type Category struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, used as a stable slug
	// and as the foreign key target for Service.CategoryID.
	ID string `json:"id"`

	// ─────────────────────────────
	// Mutable fields
	// ─────────────────────────────

	// Name is the display name, 1-100 characters.
	Name string `json:"name"`

	// Icon is optional and restricted to the icon and emoji kinds.
	// Image icons are not allowed on categories so a vanished file
	// can never break a category render.
	Icon *IconConfig `json:"icon,omitempty"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is set once when the category is created.
	CreatedAt time.Time `json:"createdAt"`
}
