package veo

import (
	"context"
	"time"

	"github.com/lumavid/veogen/slogger"
)

// Default polling behavior: 180 attempts at 10 second intervals caps a
// generation at 30 minutes.
const (
	DefaultPollInterval    = 10 * time.Second
	DefaultMaxPollAttempts = 180
)

// State is the lifecycle state of a generation operation as observed
// by the poll loop.
type State string

const (
	StateSubmitted State = "submitted"
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateTimedOut  State = "timed_out"
)

// Terminal reports whether no further polling can change the state.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateTimedOut
}

// Clock abstracts sleeping between poll attempts so that timeout
// behavior is testable without wall-clock delays.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewClock returns a Clock backed by real time.
func NewClock() Clock {
	return realClock{}
}

// Poller drives a submitted operation to a terminal state by querying
// its status at a fixed interval, up to a maximum attempt count.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
	Clock       Clock
	Logger      slogger.Logger
}

// NewPoller returns a Poller with the given interval and attempt
// ceiling, using real time and no logging unless overridden.
func NewPoller(interval time.Duration, maxAttempts int) *Poller {
	return &Poller{
		Interval:    interval,
		MaxAttempts: maxAttempts,
		Clock:       realClock{},
		Logger:      slogger.NewDevNullLogger(),
	}
}

// Wait polls op until it reaches a terminal state. State transitions:
// submitted -> pending on the first status query, pending -> pending
// while the vendor reports the job incomplete, pending -> succeeded or
// failed on completion, pending -> timed_out when MaxAttempts is
// exhausted. On failure the returned error is a *GenerationError; on
// timeout a *TimeoutError.
func (p *Poller) Wait(ctx context.Context, api API, op *Operation) (*Operation, State, error) {
	logger := p.Logger
	if logger == nil {
		logger = slogger.NewDevNullLogger()
	}
	state := StateSubmitted
	attempts := 0

	for !op.Done {
		if attempts >= p.MaxAttempts {
			return op, StateTimedOut, &TimeoutError{
				OperationID: op.Name,
				Attempts:    attempts,
				Elapsed:     time.Duration(attempts) * p.Interval,
			}
		}

		logger.Info("waiting for video generation",
			"operation", op.Name,
			"attempt", attempts+1,
			"max_attempts", p.MaxAttempts)

		if err := p.Clock.Sleep(ctx, p.Interval); err != nil {
			return op, state, err
		}

		updated, err := api.Poll(ctx, op)
		if err != nil {
			return op, state, &GenerationError{
				OperationID: op.Name,
				Detail:      err.Error(),
			}
		}
		op = updated
		state = StatePending
		attempts++
	}

	if op.Failed() {
		return op, StateFailed, &GenerationError{
			OperationID: op.Name,
			Detail:      op.ErrorDetail,
		}
	}
	return op, StateSucceeded, nil
}
