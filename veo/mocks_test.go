package veo

import (
	"context"
	"fmt"
	"time"
)

// fakeClock records sleeps without waiting.
type fakeClock struct {
	sleeps []time.Duration
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	return nil
}

// fakeAPI simulates the vendor: an operation stays pending for
// pendingPolls status queries, then completes with the configured
// outcome.
type fakeAPI struct {
	pendingPolls int
	failDetail   string
	videoData    []byte
	noVideos     bool

	generateCalls int
	pollCalls     int
	downloadCalls int
	lastRequest   GenerationRequest
	lastPrior     *Video
}

func (a *fakeAPI) Generate(ctx context.Context, req GenerationRequest, prior *Video) (*Operation, error) {
	a.generateCalls++
	a.lastRequest = req
	a.lastPrior = prior
	return &Operation{Name: fmt.Sprintf("operations/fake-%d", a.generateCalls)}, nil
}

func (a *fakeAPI) Poll(ctx context.Context, op *Operation) (*Operation, error) {
	a.pollCalls++
	if a.pollCalls <= a.pendingPolls {
		return &Operation{Name: op.Name}, nil
	}
	done := &Operation{Name: op.Name, Done: true}
	if a.failDetail != "" {
		done.ErrorDetail = a.failDetail
		return done, nil
	}
	if !a.noVideos {
		done.Videos = []*Video{{
			URI:      "https://generativelanguage.googleapis.com/v1/files/fake",
			MIMEType: "video/mp4",
		}}
	}
	return done, nil
}

func (a *fakeAPI) Download(ctx context.Context, video *Video) ([]byte, error) {
	a.downloadCalls++
	if a.videoData == nil {
		return []byte("fake video bytes"), nil
	}
	return a.videoData, nil
}
