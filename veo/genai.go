package veo

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiAPI implements the API interface against the Google GenAI SDK.
type genaiAPI struct {
	client *genai.Client
}

// NewAPI creates a vendor-backed API using the given key. The key must
// be resolved by the caller before any network attempt is made.
func NewAPI(ctx context.Context, apiKey string) (API, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &genaiAPI{client: client}, nil
}

func (a *genaiAPI) Generate(ctx context.Context, req GenerationRequest, prior *Video) (*Operation, error) {
	config := &genai.GenerateVideosConfig{
		AspectRatio:     string(req.AspectRatio),
		Resolution:      string(req.Resolution),
		DurationSeconds: genai.Ptr(int32(req.DurationSeconds)),
		NumberOfVideos:  1,
	}
	if req.NegativePrompt != "" {
		config.NegativePrompt = req.NegativePrompt
	}
	if req.Seed != nil {
		config.Seed = genai.Ptr(*req.Seed)
	}

	var (
		operation *genai.GenerateVideosOperation
		err       error
	)
	switch {
	case prior != nil:
		// Extension scenes condition on the prior scene's output.
		source := &genai.GenerateVideosSource{
			Prompt: req.Prompt,
			Video:  prior.raw,
		}
		operation, err = a.client.Models.GenerateVideosFromSource(ctx, req.Model, source, config)
	case req.Image != nil:
		image := &genai.Image{
			ImageBytes: req.Image.Data,
			MIMEType:   req.Image.MIMEType,
		}
		operation, err = a.client.Models.GenerateVideos(ctx, req.Model, req.Prompt, image, config)
	default:
		operation, err = a.client.Models.GenerateVideos(ctx, req.Model, req.Prompt, nil, config)
	}
	if err != nil {
		return nil, fmt.Errorf("error submitting video generation: %w", err)
	}
	return fromGenaiOperation(operation), nil
}

func (a *genaiAPI) Poll(ctx context.Context, op *Operation) (*Operation, error) {
	raw := op.raw
	if raw == nil {
		raw = &genai.GenerateVideosOperation{Name: op.Name}
	}
	updated, err := a.client.Operations.GetVideosOperation(ctx, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("error checking video operation: %w", err)
	}
	return fromGenaiOperation(updated), nil
}

func (a *genaiAPI) Download(ctx context.Context, video *Video) ([]byte, error) {
	if video.raw == nil {
		return nil, fmt.Errorf("video has no downloadable reference")
	}
	if len(video.raw.VideoBytes) > 0 {
		return video.raw.VideoBytes, nil
	}
	data, err := a.client.Files.Download(ctx, video.raw, nil)
	if err != nil {
		return nil, fmt.Errorf("video download failed: %w", err)
	}
	return data, nil
}

func fromGenaiOperation(operation *genai.GenerateVideosOperation) *Operation {
	op := &Operation{
		Name: operation.Name,
		Done: operation.Done,
		raw:  operation,
	}
	if len(operation.Error) > 0 {
		op.ErrorDetail = fmt.Sprintf("%v", operation.Error)
	}
	if operation.Response != nil {
		for _, generated := range operation.Response.GeneratedVideos {
			if generated.Video == nil {
				continue
			}
			op.Videos = append(op.Videos, &Video{
				URI:      generated.Video.URI,
				MIMEType: generated.Video.MIMEType,
				raw:      generated.Video,
			})
		}
	}
	return op
}
