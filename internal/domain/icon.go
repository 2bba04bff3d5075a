package domain

// IconType discriminates the kinds of icons an entity can carry.
type IconType string

const (
	// IconTypeImage references an uploaded file inside the icons
	// directory. Value is a relative path like "icons/plex.png".
	IconTypeImage IconType = "image"

	// IconTypeIcon references a symbolic icon by name.
	// Value is a canonical name from the built-in icon table.
	IconTypeIcon IconType = "icon"

	// IconTypeEmoji renders Value verbatim as a short text glyph.
	IconTypeEmoji IconType = "emoji"
)

// IconConfig is a tagged value: Type selects how Value is interpreted.
type IconConfig struct {
	Type  IconType `json:"type"`
	Value string   `json:"value"`
}

// IsImage reports whether ic is a non-nil image icon.
func (ic *IconConfig) IsImage() bool {
	return ic != nil && ic.Type == IconTypeImage
}
