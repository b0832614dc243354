package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumavid/veogen/veo"
	"github.com/stretchr/testify/require"
)

const scenesJSON = `{
  "scenes": [
    {
      "prompt": "A futuristic city at night",
      "params": {"aspect_ratio": "16:9", "resolution": "1080p"}
    },
    {
      "prompt": "Camera zooms into a window",
      "params": {"aspect_ratio": "16:9"}
    }
  ]
}`

const scenesYAML = `scenes:
  - prompt: A futuristic city at night
    params:
      aspect_ratio: "16:9"
      resolution: 1080p
  - prompt: Camera zooms into a window
    params:
      aspect_ratio: "16:9"
`

func TestParseJSON(t *testing.T) {
	chain, err := ParseJSON([]byte(scenesJSON))
	require.NoError(t, err)
	require.Len(t, chain.Scenes, 2)
	require.Equal(t, "A futuristic city at night", chain.Scenes[0].Prompt)
	require.Equal(t, veo.Resolution1080p, chain.Scenes[0].Params.Resolution)
	require.Equal(t, veo.AspectRatioWidescreen, chain.Scenes[1].Params.AspectRatio)
}

func TestParseYAML(t *testing.T) {
	chain, err := ParseYAML([]byte(scenesYAML))
	require.NoError(t, err)
	require.Len(t, chain.Scenes, 2)
	require.Equal(t, veo.Resolution1080p, chain.Scenes[0].Params.Resolution)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := ParseJSON([]byte(`{"scenes": [{"prompt": "x", "params": {"resolutoin": "720p"}}]}`))
	require.Error(t, err)

	_, err = ParseYAML([]byte("scenes:\n  - prompt: x\n    params:\n      resolutoin: 720p\n"))
	require.Error(t, err)
}

func TestParseEmptyScenes(t *testing.T) {
	_, err := ParseJSON([]byte(`{"scenes": []}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no scenes found")
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "scenes.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(scenesJSON), 0644))
	chain, err := ParseFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, chain.Scenes, 2)

	yamlPath := filepath.Join(dir, "scenes.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(scenesYAML), 0644))
	chain, err = ParseFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, chain.Scenes, 2)
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.toml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	_, err := ParseFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported scenes file extension")
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
