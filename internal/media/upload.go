package media

import (
	"path/filepath"
	"regexp"
	"strings"
)

// allowedExtensions is the upload allow-list. Anything else is rejected with
// an explicit validation error rather than silently dropped.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"mp4":  true,
	"mov":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AllowedFile reports whether the filename carries an allow-listed extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return allowedExtensions[ext]
}

// IsImageExtension reports whether the filename's extension is an image type
// eligible for normalization (videos are stored as-is).
func IsImageExtension(filename string) bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "png", "jpg", "jpeg", "gif":
		return true
	default:
		return false
	}
}

// SanitizeFilename strips directory components and characters that are unsafe
// in a stored filename. Returns "" when nothing usable remains.
func SanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._-")
	if base == "" || base == "." || base == ".." {
		return ""
	}
	return base
}
