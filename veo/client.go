package veo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumavid/veogen/slogger"
)

// Clip is the output of one generation call, kept in vendor storage.
// Scene chains pass clips forward so each scene extends the last.
type Clip struct {
	Video           *Video
	OperationID     string
	DurationSeconds int
}

// Client submits generation requests and drives them to completion.
type Client struct {
	api       API
	poller    *Poller
	logger    slogger.Logger
	outputDir string
}

// ClientOptions configures a Client. API is required; the rest default
// to a real-time poller, a no-op logger and the "output" directory.
type ClientOptions struct {
	API       API
	Poller    *Poller
	Logger    slogger.Logger
	OutputDir string
}

// NewClient creates a Client from the given options.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.API == nil {
		return nil, fmt.Errorf("api is required")
	}
	if opts.Poller == nil {
		opts.Poller = NewPoller(DefaultPollInterval, DefaultMaxPollAttempts)
	}
	if opts.Logger == nil {
		opts.Logger = slogger.NewDevNullLogger()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	return &Client{
		api:       opts.API,
		poller:    opts.Poller,
		logger:    opts.Logger,
		outputDir: opts.OutputDir,
	}, nil
}

// Generate runs a single text-to-video or image-to-video generation:
// validate, submit, poll to completion, download, write to disk. When
// outputFilename is empty a name is derived from the prompt and model.
func (c *Client) Generate(ctx context.Context, req GenerationRequest, outputFilename string) (*GenerationResult, error) {
	resolved, err := ResolveRequest(req)
	if err != nil {
		return nil, err
	}

	clip, err := c.GenerateClip(ctx, resolved, nil)
	if err != nil {
		return nil, err
	}

	if outputFilename == "" {
		outputFilename = GenerateFilename(resolved.Prompt, resolved.Model)
	}
	outputPath := filepath.Join(c.outputDir, SanitizeFilename(outputFilename))

	size, err := c.SaveVideo(ctx, clip.Video, outputPath)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{
		OutputPath:      outputPath,
		OperationID:     clip.OperationID,
		Model:           resolved.Model,
		Resolution:      resolved.Resolution,
		AspectRatio:     resolved.AspectRatio,
		DurationSeconds: resolved.DurationSeconds,
		VideoURI:        clip.Video.URI,
		SizeBytes:       size,
	}
	c.logger.Info("video generation completed",
		"path", result.OutputPath,
		"size", FormatFileSize(result.SizeBytes),
		"operation", result.OperationID)
	return result, nil
}

// GenerateClip submits one generation call, optionally conditioned on a
// prior clip's video, and waits for its terminal state. The request
// must already be resolved and validated. The resulting video stays in
// vendor storage until saved.
func (c *Client) GenerateClip(ctx context.Context, req GenerationRequest, prior *Video) (*Clip, error) {
	if LimitedSupport(req) {
		c.logger.Warn("1080p with 9:16 aspect ratio may have limited support")
	}

	c.logger.Info("submitting video generation request",
		"model", req.Model,
		"resolution", string(req.Resolution),
		"aspect_ratio", string(req.AspectRatio),
		"duration_seconds", req.DurationSeconds)

	op, err := c.api.Generate(ctx, req, prior)
	if err != nil {
		return nil, err
	}

	op, state, err := c.poller.Wait(ctx, c.api, op)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("operation reached terminal state",
		"operation", op.Name, "state", string(state))

	if len(op.Videos) == 0 {
		return nil, &GenerationError{
			OperationID: op.Name,
			Detail:      "API did not return any generated videos",
		}
	}
	return &Clip{
		Video:           op.Videos[0],
		OperationID:     op.Name,
		DurationSeconds: req.DurationSeconds,
	}, nil
}

// SaveVideo downloads a generated video and writes it to path,
// creating parent directories as needed.
func (c *Client) SaveVideo(ctx context.Context, video *Video, path string) (int64, error) {
	c.logger.Info("downloading video", "path", path)

	data, err := c.api.Download(ctx, video)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write video file: %w", err)
	}
	return int64(len(data)), nil
}

// OutputDir returns the directory generated videos are written to.
func (c *Client) OutputDir() string {
	return c.outputDir
}
