package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseFile loads a scene Chain from a file. The file extension is
// used to determine the format (JSON or YAML).
func ParseFile(path string) (*Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenes file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported scenes file extension: %s", ext)
	}
}

// ParseYAML loads a scene Chain from YAML. Unknown keys are rejected
// so typos in parameter names surface immediately.
func ParseYAML(data []byte) (*Chain, error) {
	var chain Chain
	if err := yaml.UnmarshalWithOptions(data, &chain, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("invalid scenes file: %w", err)
	}
	if len(chain.Scenes) == 0 {
		return nil, fmt.Errorf("no scenes found in the file: expected a 'scenes' array")
	}
	return &chain, nil
}

// ParseJSON loads a scene Chain from JSON.
func ParseJSON(data []byte) (*Chain, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var chain Chain
	if err := decoder.Decode(&chain); err != nil {
		return nil, fmt.Errorf("invalid scenes file: %w", err)
	}
	if len(chain.Scenes) == 0 {
		return nil, fmt.Errorf("no scenes found in the file: expected a 'scenes' array")
	}
	return &chain, nil
}
