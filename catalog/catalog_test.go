package catalog

import (
	"testing"

	"github.com/lumavid/veogen/veo"
	"github.com/stretchr/testify/require"
)

func TestListIsStableAndOrdered(t *testing.T) {
	first := List()
	second := List()
	require.Equal(t, first, second)
	require.Len(t, first, 5)
	require.Equal(t, veo.ModelVeo31, first[0].Name)
	require.Equal(t, veo.ModelVeo2, first[4].Name)

	// Mutating a returned slice must not affect the catalog.
	first[0].Name = "mutated"
	require.Equal(t, veo.ModelVeo31, List()[0].Name)
}

func TestGetIsTotal(t *testing.T) {
	// Every supported model has exactly one entry.
	for _, name := range veo.SupportedModels {
		entry, err := Get(name)
		require.NoError(t, err)
		require.Equal(t, name, entry.Name)
	}

	_, err := Get("veo-99-imaginary")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		keyword  string
		expected string
	}{
		{"general", veo.ModelVeo31},
		{"fast", veo.ModelVeo31Fast},
		{"fastest", veo.ModelVeo31Fast},
		{"FAST", veo.ModelVeo31Fast},
		{"quality", veo.ModelVeo31},
		{"extension", veo.ModelVeo31},
		{"stable", veo.ModelVeo3},
	}
	for _, tc := range tests {
		t.Run(tc.keyword, func(t *testing.T) {
			entry, err := Recommend(tc.keyword)
			require.NoError(t, err)
			require.Equal(t, tc.expected, entry.Name)
		})
	}
}

func TestRecommendNotFound(t *testing.T) {
	_, err := Recommend("underwater basket weaving")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = Recommend("  ")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEntryString(t *testing.T) {
	entry, err := Get(veo.ModelVeo2)
	require.NoError(t, err)
	s := entry.String()
	require.Contains(t, s, "veo-2.0-generate-001")
	require.Contains(t, s, "Audio: No")

	entry, err = Get(veo.ModelVeo31)
	require.NoError(t, err)
	require.Contains(t, entry.String(), "Audio: Yes")
}

func TestUseCases(t *testing.T) {
	require.Equal(t, []string{"general", "fast", "quality", "extension", "stable"}, UseCases())
}
