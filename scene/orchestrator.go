package scene

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lumavid/veogen/slogger"
	"github.com/lumavid/veogen/veo"
)

// Generator is the subset of the veo client the orchestrator needs.
type Generator interface {
	GenerateClip(ctx context.Context, req veo.GenerationRequest, prior *veo.Video) (*veo.Clip, error)
	SaveVideo(ctx context.Context, video *veo.Video, path string) (int64, error)
	OutputDir() string
}

// Output records one scene's result within a manifest.
type Output struct {
	Index           int    `json:"index"`
	Prompt          string `json:"prompt"`
	OperationID     string `json:"operation_id"`
	VideoURI        string `json:"video_uri"`
	DurationSeconds int    `json:"duration_seconds"`
}

// Manifest describes a completed chain: per-scene outputs in
// submission order, the total requested duration, and the path of the
// final extended video.
type Manifest struct {
	Outputs              []Output `json:"outputs"`
	TotalDurationSeconds int      `json:"total_duration_seconds"`
	OutputPath           string   `json:"output_path"`
}

// SceneError wraps a generation failure with the index of the scene
// that failed. Scenes already generated are not rolled back.
type SceneError struct {
	Index int
	Err   error
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("scene %d: %v", e.Index+1, e.Err)
}

func (e *SceneError) Unwrap() error {
	return e.Err
}

// Orchestrator runs scene chains against a Generator.
type Orchestrator struct {
	generator Generator
	defaults  veo.GenerationRequest
	logger    slogger.Logger
}

// NewOrchestrator creates an Orchestrator. The defaults request
// supplies chain-wide parameter values that individual scenes may
// override; its Prompt field is ignored.
func NewOrchestrator(generator Generator, defaults veo.GenerationRequest, logger slogger.Logger) *Orchestrator {
	if logger == nil {
		logger = slogger.NewDevNullLogger()
	}
	return &Orchestrator{
		generator: generator,
		defaults:  defaults,
		logger:    logger,
	}
}

// Extend generates every scene in the chain strictly in order, each
// scene conditioned on the previous scene's video, then downloads the
// final extended video. The whole chain is validated, including each
// scene's merged parameters, before the first generation call. On a
// scene failure the remaining chain is aborted and the error carries
// the failing scene's index.
func (o *Orchestrator) Extend(ctx context.Context, chain *Chain, outputFilename string) (*Manifest, error) {
	if err := chain.Validate(); err != nil {
		return nil, err
	}

	requests := make([]veo.GenerationRequest, len(chain.Scenes))
	for i := range chain.Scenes {
		resolved, err := veo.ResolveRequest(chain.request(i, o.defaults))
		if err != nil {
			return nil, &SceneError{Index: i, Err: err}
		}
		requests[i] = resolved
	}

	o.logger.Info("starting scene-based video generation",
		"scenes", len(chain.Scenes),
		"estimated_duration_seconds", chain.EstimatedDuration())

	manifest := &Manifest{}
	var prior *veo.Video

	for i, req := range requests {
		o.logger.Info("processing scene",
			"scene", i+1,
			"total", len(requests),
			"prompt", truncatePrompt(req.Prompt))

		clip, err := o.generator.GenerateClip(ctx, req, prior)
		if err != nil {
			return nil, &SceneError{Index: i, Err: err}
		}

		manifest.Outputs = append(manifest.Outputs, Output{
			Index:           i,
			Prompt:          req.Prompt,
			OperationID:     clip.OperationID,
			VideoURI:        clip.Video.URI,
			DurationSeconds: clip.DurationSeconds,
		})
		manifest.TotalDurationSeconds += clip.DurationSeconds
		prior = clip.Video
	}

	// Each extension call returns the cumulative video, so the last
	// scene's output is the complete extended video.
	if outputFilename == "" {
		outputFilename = veo.GenerateFilename(
			"extended_"+chain.Scenes[0].Prompt, requests[0].Model)
	}
	outputPath := filepath.Join(o.generator.OutputDir(), veo.SanitizeFilename(outputFilename))

	size, err := o.generator.SaveVideo(ctx, prior, outputPath)
	if err != nil {
		return nil, &SceneError{Index: len(requests) - 1, Err: err}
	}
	manifest.OutputPath = outputPath

	o.logger.Info("all scenes processed",
		"scenes", len(requests),
		"path", outputPath,
		"size", veo.FormatFileSize(size))
	return manifest, nil
}

func truncatePrompt(prompt string) string {
	const limit = 100
	if len(prompt) <= limit {
		return prompt
	}
	return prompt[:limit] + "..."
}
