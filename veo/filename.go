package veo

import (
	"crypto/md5"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// GenerateFilename builds a default output filename of the form
// <timestamp>_<model>_<promptHash>.mp4, where the hash is the first
// eight hex characters of the prompt's md5 sum.
func GenerateFilename(prompt, model string) string {
	timestamp := time.Now().Format("20060102_150405")
	hash := fmt.Sprintf("%x", md5.Sum([]byte(prompt)))[:8]
	return fmt.Sprintf("%s_%s_%s.mp4", timestamp, cleanModelName(model), hash)
}

// cleanModelName strips the common prefixes and suffixes from a Veo
// model identifier so filenames stay short, e.g.
// "veo-3.1-generate-preview" becomes "3_1".
func cleanModelName(model string) string {
	name := model
	for _, cut := range []string{"veo-", "-generate", "-preview", "-001"} {
		name = strings.ReplaceAll(name, cut, "")
	}
	return strings.ReplaceAll(name, ".", "_")
}

// SanitizeFilename strips any directory components from a user-supplied
// filename to prevent path traversal outside the output directory.
func SanitizeFilename(filename string) string {
	return filepath.Base(filename)
}

// FormatFileSize renders a byte count in human-readable form,
// e.g. "10.5 MB".
func FormatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", value)
}
