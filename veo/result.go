package veo

// GenerationResult describes a completed generation. It is immutable
// once returned.
type GenerationResult struct {
	// OutputPath is the local file the video was written to
	OutputPath string

	// OperationID is the vendor-assigned operation name (diagnostics only)
	OperationID string

	// Model, Resolution, AspectRatio and DurationSeconds record the
	// parameters actually used after defaulting
	Model           string
	Resolution      Resolution
	AspectRatio     AspectRatio
	DurationSeconds int

	// VideoURI is the vendor-side reference to the generated media
	VideoURI string

	// SizeBytes is the size of the written file
	SizeBytes int64
}
