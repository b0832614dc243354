package veo

import (
	"context"

	"google.golang.org/genai"
)

// Video is a reference to a generated video held by the vendor. The
// unexported handle is required for downloading and for conditioning
// extension scenes on a prior result.
type Video struct {
	URI      string
	MIMEType string

	raw *genai.Video
}

// Operation is a snapshot of the vendor's asynchronous job handle.
type Operation struct {
	Name        string
	Done        bool
	Videos      []*Video
	ErrorDetail string

	raw *genai.GenerateVideosOperation
}

// Failed reports whether the operation terminated with a vendor error.
func (o *Operation) Failed() bool {
	return o.Done && o.ErrorDetail != ""
}

// API abstracts the vendor SDK calls used by the Client so that the
// polling and orchestration logic can be tested without a network.
type API interface {
	// Generate submits a generation request, optionally conditioned on a
	// prior video (scene extension), and returns the operation handle.
	Generate(ctx context.Context, req GenerationRequest, prior *Video) (*Operation, error)

	// Poll fetches the latest status of an operation.
	Poll(ctx context.Context, op *Operation) (*Operation, error)

	// Download fetches the bytes of a generated video.
	Download(ctx context.Context, video *Video) ([]byte, error)
}
