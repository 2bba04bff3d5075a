package validate

import (
	"path"
	"regexp"
	"strings"
)

// MaxIconFileSize is the upload cap for icon files.
const MaxIconFileSize = 2 * 1024 * 1024 // 2MiB

// extensionToMIME maps the allowed icon file extensions to their
// canonical MIME type.
var extensionToMIME = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// allowedMIMETypes is the set of declared MIME types accepted on upload.
// image/jpg is tolerated as a common non-standard alias.
var allowedMIMETypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/svg+xml": true,
	"image/webp":    true,
	"image/gif":     true,
}

// safeIconPathRe matches "icons/<safe-filename>": a flat path into the
// icons directory with no separators or traversal in the filename.
var safeIconPathRe = regexp.MustCompile(`^icons/[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ImageExtension extracts the lowercased extension of a filename or path.
func ImageExtension(name string) string {
	return strings.ToLower(path.Ext(name))
}

// IsAllowedImageExtension reports whether the filename carries one of
// the allowed icon extensions.
func IsAllowedImageExtension(name string) bool {
	_, ok := extensionToMIME[ImageExtension(name)]
	return ok
}

// IsAllowedImageMIME reports whether the declared MIME type is accepted.
func IsAllowedImageMIME(mime string) bool {
	return allowedMIMETypes[strings.ToLower(strings.TrimSpace(mime))]
}

// MIMEForExtension returns the canonical MIME type for a filename, or
// false when the extension is not an allowed image extension.
func MIMEForExtension(name string) (string, bool) {
	mime, ok := extensionToMIME[ImageExtension(name)]
	return mime, ok
}

// IsSafeIconPath reports whether value is a well-formed relative icon
// path ("icons/<safe-filename>") with an allowed extension.
func IsSafeIconPath(value string) bool {
	return safeIconPathRe.MatchString(value) && IsAllowedImageExtension(value)
}

// ImageExtensions returns the allowed extensions (with leading dot).
func ImageExtensions() []string {
	exts := make([]string, 0, len(extensionToMIME))
	for ext := range extensionToMIME {
		exts = append(exts, ext)
	}
	return exts
}
