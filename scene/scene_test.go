package scene

import (
	"testing"

	"github.com/lumavid/veogen/veo"
	"github.com/stretchr/testify/require"
)

func chainOf(n int) *Chain {
	chain := &Chain{}
	for i := 0; i < n; i++ {
		chain.Scenes = append(chain.Scenes, Scene{Prompt: "a scene"})
	}
	return chain
}

func TestValidateEmptyChain(t *testing.T) {
	err := (&Chain{}).Validate()
	var constraint *ChainConstraintError
	require.ErrorAs(t, err, &constraint)
	require.Equal(t, -1, constraint.SceneIndex)
}

func TestValidateChainLength(t *testing.T) {
	require.NoError(t, chainOf(1).Validate())
	require.NoError(t, chainOf(MaxScenes).Validate())

	err := chainOf(MaxScenes + 1).Validate()
	var constraint *ChainConstraintError
	require.ErrorAs(t, err, &constraint)
	require.Contains(t, constraint.Reason, "maximum 21 scenes")
}

func TestValidateMissingPrompt(t *testing.T) {
	chain := &Chain{Scenes: []Scene{
		{Prompt: "first"},
		{Prompt: "   "},
	}}
	err := chain.Validate()
	var constraint *ChainConstraintError
	require.ErrorAs(t, err, &constraint)
	require.Equal(t, 1, constraint.SceneIndex)
	require.Contains(t, constraint.Reason, "missing prompt")
}

func TestValidateExtensionResolution(t *testing.T) {
	// The first scene may request any resolution.
	chain := &Chain{Scenes: []Scene{
		{Prompt: "first", Params: Params{Resolution: veo.Resolution1080p}},
		{Prompt: "second"},
	}}
	require.NoError(t, chain.Validate())

	// Scenes past the first may not.
	chain = &Chain{Scenes: []Scene{
		{Prompt: "first"},
		{Prompt: "second", Params: Params{Resolution: veo.Resolution1080p}},
	}}
	err := chain.Validate()
	var constraint *ChainConstraintError
	require.ErrorAs(t, err, &constraint)
	require.Equal(t, 1, constraint.SceneIndex)
	require.Contains(t, constraint.Reason, "720p")
}

func TestEstimatedDuration(t *testing.T) {
	require.Equal(t, 8, chainOf(1).EstimatedDuration())
	require.Equal(t, 8+2*ExtensionDuration, chainOf(3).EstimatedDuration())

	chain := &Chain{Scenes: []Scene{
		{Prompt: "first", Params: Params{DurationSeconds: 4}},
		{Prompt: "second"},
	}}
	require.Equal(t, 4+ExtensionDuration, chain.EstimatedDuration())
}

func TestRequestMerging(t *testing.T) {
	defaults := veo.GenerationRequest{
		Model:           veo.ModelVeo31,
		AspectRatio:     veo.AspectRatioWidescreen,
		Resolution:      veo.Resolution1080p,
		DurationSeconds: 8,
	}
	chain := &Chain{Scenes: []Scene{
		{Prompt: "opening shot"},
		{Prompt: "zoom in", Params: Params{
			Model:          veo.ModelVeo31Fast,
			NegativePrompt: "blurry",
		}},
	}}

	first := chain.request(0, defaults)
	require.Equal(t, "opening shot", first.Prompt)
	require.Equal(t, veo.ModelVeo31, first.Model)
	require.Equal(t, veo.Resolution1080p, first.Resolution)

	second := chain.request(1, defaults)
	require.Equal(t, "zoom in", second.Prompt)
	require.Equal(t, veo.ModelVeo31Fast, second.Model)
	require.Equal(t, "blurry", second.NegativePrompt)
	// Extension scenes resolve to 720p and 8 seconds regardless of
	// the chain defaults.
	require.Equal(t, veo.Resolution720p, second.Resolution)
	require.Equal(t, 8, second.DurationSeconds)
}
