package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Media", expected: "media"},
		{name: "spaces", input: "Media Servers", expected: "media-servers"},
		{name: "punctuation", input: "AdGuard Home!", expected: "adguard-home"},
		{name: "surrounding whitespace", input: "  Jellyfin  ", expected: "jellyfin"},
		{name: "consecutive separators", input: "a  -  b", expected: "a-b"},
		{name: "digits kept", input: "Tube2Go", expected: "tube2go"},
		{name: "only symbols", input: "!!!", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
