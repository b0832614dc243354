// Package catalog is the static registry of known Veo model
// identifiers and their descriptive metadata. All lookups are pure
// functions over data fixed at compile time.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lumavid/veogen/veo"
)

// ErrNotFound is returned by Get and Recommend when no entry matches.
var ErrNotFound = errors.New("model not found")

// Entry describes one remote model variant.
type Entry struct {
	Name        string
	Description string
	Modalities  []string
	Resolution  string
	Duration    string
	Audio       bool
	Status      string
}

func (e Entry) String() string {
	audio := "No"
	if e.Audio {
		audio = "Yes"
	}
	return fmt.Sprintf(
		"Model: %s\n  Description: %s\n  Modalities: %s\n  Resolution: %s\n  Duration: %s\n  Audio: %s\n  Status: %s",
		e.Name, e.Description, strings.Join(e.Modalities, ", "),
		e.Resolution, e.Duration, audio, e.Status)
}

var entries = []Entry{
	{
		Name:        veo.ModelVeo31,
		Description: "Veo 3.1 Preview - State-of-the-art video generation with audio, supports video extension and reference images",
		Modalities:  []string{"Text-to-Video", "Image-to-Video", "Video-to-Video"},
		Resolution:  "720p & 1080p (8s only)",
		Duration:    "4s, 6s, 8s",
		Audio:       true,
		Status:      "Preview",
	},
	{
		Name:        veo.ModelVeo31Fast,
		Description: "Veo 3.1 Fast Preview - Optimized for speed while maintaining high quality, ideal for rapid content generation",
		Modalities:  []string{"Text-to-Video", "Image-to-Video", "Video-to-Video"},
		Resolution:  "720p & 1080p (8s only)",
		Duration:    "4s, 6s, 8s",
		Audio:       true,
		Status:      "Preview",
	},
	{
		Name:        veo.ModelVeo3,
		Description: "Veo 3 Stable - High-quality video generation with native audio support",
		Modalities:  []string{"Text-to-Video", "Image-to-Video"},
		Resolution:  "720p & 1080p (16:9 only)",
		Duration:    "4s, 6s, 8s",
		Audio:       true,
		Status:      "Stable",
	},
	{
		Name:        veo.ModelVeo3Fast,
		Description: "Veo 3 Fast Stable - Speed-optimized version for business use cases",
		Modalities:  []string{"Text-to-Video", "Image-to-Video"},
		Resolution:  "720p & 1080p (16:9 only)",
		Duration:    "4s, 6s, 8s",
		Audio:       true,
		Status:      "Stable",
	},
	{
		Name:        veo.ModelVeo2,
		Description: "Veo 2 Stable - Previous generation model, silent videos only",
		Modalities:  []string{"Text-to-Video", "Image-to-Video"},
		Resolution:  "720p",
		Duration:    "5s, 6s, 8s",
		Audio:       false,
		Status:      "Stable",
	},
}

// useCase maps a recommendation keyword to a model identifier.
type useCase struct {
	Keyword string
	Model   string
}

// Recommendation table, in display order.
var useCases = []useCase{
	{"general", veo.ModelVeo31},
	{"fast", veo.ModelVeo31Fast},
	{"quality", veo.ModelVeo31},
	{"extension", veo.ModelVeo31},
	{"stable", veo.ModelVeo3},
}

// List returns all catalog entries in a fixed order.
func List() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Get returns the entry for the given model identifier.
func Get(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Recommend returns the best-matching entry for a use-case keyword
// using case-insensitive substring matching against the fixed table,
// so "fastest" matches "fast".
func Recommend(keyword string) (Entry, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return Entry{}, fmt.Errorf("%w: empty keyword", ErrNotFound)
	}
	for _, uc := range useCases {
		if strings.Contains(needle, uc.Keyword) || strings.Contains(uc.Keyword, needle) {
			return Get(uc.Model)
		}
	}
	return Entry{}, fmt.Errorf("%w: no model matches use case %q", ErrNotFound, keyword)
}

// UseCases returns the recommendation keywords in display order.
func UseCases() []string {
	out := make([]string, len(useCases))
	for i, uc := range useCases {
		out[i] = uc.Keyword
	}
	return out
}
