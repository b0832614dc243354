package veo

import (
	"fmt"
	"net/http"
	"os"
)

// Resolution is the output resolution tier for a generated video.
type Resolution string

const (
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
)

// AspectRatio is the output aspect ratio for a generated video.
type AspectRatio string

const (
	AspectRatioWidescreen AspectRatio = "16:9"
	AspectRatioPortrait   AspectRatio = "9:16"
)

// Known Veo model identifiers.
const (
	ModelVeo31     = "veo-3.1-generate-preview"
	ModelVeo31Fast = "veo-3.1-fast-generate-preview"
	ModelVeo3      = "veo-3.0-generate-001"
	ModelVeo3Fast  = "veo-3.0-fast-generate-001"
	ModelVeo2      = "veo-2.0-generate-001"
)

// Defaults applied to unset request fields.
const (
	DefaultModel           = ModelVeo31
	DefaultAspectRatio     = AspectRatioWidescreen
	DefaultResolution      = Resolution720p
	DefaultDurationSeconds = 8
)

// Duration1080p is the only duration the vendor accepts at 1080p.
const Duration1080p = 8

var (
	// SupportedModels lists the known Veo model identifiers
	SupportedModels = []string{
		ModelVeo31,
		ModelVeo31Fast,
		ModelVeo3,
		ModelVeo3Fast,
		ModelVeo2,
	}

	// SupportedResolutions lists the accepted resolution tiers
	SupportedResolutions = []string{
		string(Resolution720p),
		string(Resolution1080p),
	}

	// SupportedAspectRatios lists the accepted aspect ratios
	SupportedAspectRatios = []string{
		string(AspectRatioWidescreen),
		string(AspectRatioPortrait),
	}

	// SupportedDurations lists the accepted durations in seconds
	SupportedDurations = []int{4, 6, 8}
)

// ImageInput is a reference image used as the first frame of an
// image-to-video generation.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// LoadImage reads an image file and detects its MIME type from the
// file contents.
func LoadImage(path string) (*ImageInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("image file not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("image path is not a file: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return &ImageInput{
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}, nil
}

// GenerationRequest describes a single video generation. Zero-valued
// fields are filled from the package defaults by ResolveRequest.
type GenerationRequest struct {
	// Prompt is the text description of the desired video (required)
	Prompt string

	// NegativePrompt lists elements to exclude from the video
	NegativePrompt string

	// Image is an optional reference image used as the first frame
	Image *ImageInput

	// Model is the Veo model identifier
	Model string

	// Resolution is the output resolution tier
	Resolution Resolution

	// AspectRatio is the output aspect ratio
	AspectRatio AspectRatio

	// DurationSeconds is the requested video length
	DurationSeconds int

	// Seed makes generation reproducible when set
	Seed *int32
}
