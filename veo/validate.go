package veo

import (
	"fmt"
	"strings"
)

// ResolveRequest fills defaults into unset fields of req and validates
// the result. It is a pure function: the input is not modified and no
// I/O occurs. The returned request is safe to submit.
func ResolveRequest(req GenerationRequest) (GenerationRequest, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return GenerationRequest{}, &InvalidParameterError{
			Field:  "prompt",
			Reason: "must be a non-empty string",
		}
	}
	if req.Model == "" {
		req.Model = DefaultModel
	}
	if req.AspectRatio == "" {
		req.AspectRatio = DefaultAspectRatio
	}
	if req.Resolution == "" {
		req.Resolution = DefaultResolution
	}
	if req.DurationSeconds == 0 {
		req.DurationSeconds = DefaultDurationSeconds
	}
	if err := ValidateRequest(req); err != nil {
		return GenerationRequest{}, err
	}
	return req, nil
}

// ValidateRequest confirms that a fully populated request forms a legal
// parameter combination per the vendor's constraints.
func ValidateRequest(req GenerationRequest) error {
	if !contains(SupportedModels, req.Model) {
		return &UnknownEnumError{
			Field:   "model",
			Value:   req.Model,
			Allowed: SupportedModels,
		}
	}
	if !contains(SupportedAspectRatios, string(req.AspectRatio)) {
		return &UnknownEnumError{
			Field:   "aspect ratio",
			Value:   string(req.AspectRatio),
			Allowed: SupportedAspectRatios,
		}
	}
	if !contains(SupportedResolutions, string(req.Resolution)) {
		return &UnknownEnumError{
			Field:   "resolution",
			Value:   string(req.Resolution),
			Allowed: SupportedResolutions,
		}
	}
	if !containsInt(SupportedDurations, req.DurationSeconds) {
		return &InvalidParameterError{
			Field:  "duration",
			Reason: fmt.Sprintf("%d is not supported (must be one of: 4, 6, 8)", req.DurationSeconds),
		}
	}
	if req.Resolution == Resolution1080p && req.DurationSeconds != Duration1080p {
		return &InvalidParameterError{
			Field:  "resolution/duration",
			Reason: fmt.Sprintf("1080p only supports %d second duration, got %d", Duration1080p, req.DurationSeconds),
		}
	}
	return nil
}

// LimitedSupport reports whether the combination is accepted by the
// vendor but documented as having limited support. Callers log a
// warning rather than failing.
func LimitedSupport(req GenerationRequest) bool {
	return req.Resolution == Resolution1080p && req.AspectRatio == AspectRatioPortrait
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
