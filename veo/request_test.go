package veo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	// Minimal PNG signature is enough for content-type sniffing.
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	path := filepath.Join(dir, "frame.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0644))

	img, err := LoadImage(path)
	require.NoError(t, err)
	require.Equal(t, "image/png", img.MIMEType)
	require.Equal(t, pngHeader, img.Data)
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadImageDirectory(t *testing.T) {
	_, err := LoadImage(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a file")
}
