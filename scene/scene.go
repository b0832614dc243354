// Package scene implements multi-scene video extension: an ordered
// chain of prompts generated sequentially, each scene conditioned on
// the previous scene's output.
package scene

import (
	"fmt"
	"strings"

	"github.com/lumavid/veogen/veo"
)

// The vendor allows one initial scene plus up to 20 extensions. Each
// extension adds roughly 7 seconds to the final video.
const (
	MaxExtensions     = 20
	MaxScenes         = MaxExtensions + 1
	ExtensionDuration = 7
)

// Params is a partial parameter override for one scene. Zero-valued
// fields inherit from the chain-wide defaults.
type Params struct {
	Model           string          `yaml:"model,omitempty" json:"model,omitempty"`
	AspectRatio     veo.AspectRatio `yaml:"aspect_ratio,omitempty" json:"aspect_ratio,omitempty"`
	Resolution      veo.Resolution  `yaml:"resolution,omitempty" json:"resolution,omitempty"`
	DurationSeconds int             `yaml:"duration_seconds,omitempty" json:"duration_seconds,omitempty"`
	NegativePrompt  string          `yaml:"negative_prompt,omitempty" json:"negative_prompt,omitempty"`
	Seed            *int32          `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Scene is one prompt plus its parameter overrides within a chain.
type Scene struct {
	Prompt string `yaml:"prompt" json:"prompt"`
	Params Params `yaml:"params,omitempty" json:"params,omitempty"`
}

// Chain is the ordered sequence of scenes submitted as one logical
// extended video.
type Chain struct {
	Scenes []Scene `yaml:"scenes" json:"scenes"`
}

// ChainConstraintError indicates a chain that violates the extension
// rules. It is detected before any generation call is issued.
type ChainConstraintError struct {
	SceneIndex int // -1 when the whole chain is at fault
	Reason     string
}

func (e *ChainConstraintError) Error() string {
	if e.SceneIndex < 0 {
		return fmt.Sprintf("invalid scene chain: %s", e.Reason)
	}
	return fmt.Sprintf("invalid scene chain: scene %d: %s", e.SceneIndex+1, e.Reason)
}

// Validate checks the chain's structural constraints: at least one
// scene, at most MaxScenes, every scene has a prompt, and no scene
// past the first requests 1080p. Extension scenes are limited to 720p
// by the vendor.
func (c *Chain) Validate() error {
	if len(c.Scenes) == 0 {
		return &ChainConstraintError{SceneIndex: -1, Reason: "at least one scene is required"}
	}
	if len(c.Scenes) > MaxScenes {
		return &ChainConstraintError{
			SceneIndex: -1,
			Reason: fmt.Sprintf("maximum %d scenes allowed (1 initial + %d extensions), got %d",
				MaxScenes, MaxExtensions, len(c.Scenes)),
		}
	}
	for i, s := range c.Scenes {
		if strings.TrimSpace(s.Prompt) == "" {
			return &ChainConstraintError{SceneIndex: i, Reason: "missing prompt"}
		}
		if i > 0 && s.Params.Resolution == veo.Resolution1080p {
			return &ChainConstraintError{
				SceneIndex: i,
				Reason:     "extension scenes only support 720p resolution",
			}
		}
	}
	return nil
}

// EstimatedDuration returns the approximate final video length in
// seconds: the initial scene's duration plus ExtensionDuration for
// each extension.
func (c *Chain) EstimatedDuration() int {
	if len(c.Scenes) == 0 {
		return 0
	}
	initial := c.Scenes[0].Params.DurationSeconds
	if initial == 0 {
		initial = veo.DefaultDurationSeconds
	}
	return initial + (len(c.Scenes)-1)*ExtensionDuration
}

// request builds the full GenerationRequest for the scene at index i
// by merging the chain-wide defaults with the scene's overrides.
// Extension scenes (i >= 1) resolve to 720p and the vendor's fixed
// 8 second extension window.
func (c *Chain) request(i int, defaults veo.GenerationRequest) veo.GenerationRequest {
	s := c.Scenes[i]
	req := defaults
	req.Prompt = s.Prompt
	req.Image = nil

	if s.Params.Model != "" {
		req.Model = s.Params.Model
	}
	if s.Params.AspectRatio != "" {
		req.AspectRatio = s.Params.AspectRatio
	}
	if s.Params.Resolution != "" {
		req.Resolution = s.Params.Resolution
	}
	if s.Params.DurationSeconds != 0 {
		req.DurationSeconds = s.Params.DurationSeconds
	}
	if s.Params.NegativePrompt != "" {
		req.NegativePrompt = s.Params.NegativePrompt
	}
	if s.Params.Seed != nil {
		req.Seed = s.Params.Seed
	}

	if i > 0 {
		req.Resolution = veo.Resolution720p
		req.DurationSeconds = veo.DefaultDurationSeconds
	}
	return req
}
