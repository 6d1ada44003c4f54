package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()

	assert.Equal(t, 100_000, limits.MaxEntities)
	assert.Equal(t, 100_000, limits.MaxAnnotations)
}

func TestLoadLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	content := []byte("max_entities: 500\nmax_annotations: 200\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	limits, err := LoadLimits(path)
	require.NoError(t, err)

	assert.Equal(t, 500, limits.MaxEntities)
	assert.Equal(t, 200, limits.MaxAnnotations)
}

func TestLoadLimits_MissingFieldsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_entities: 50\n"), 0o644))

	limits, err := LoadLimits(path)
	require.NoError(t, err)

	assert.Equal(t, 50, limits.MaxEntities)
	assert.Equal(t, DefaultMaxAnnotations, limits.MaxAnnotations)
}

func TestLoadLimits_MissingFile(t *testing.T) {
	_, err := LoadLimits(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read limits file")
}

func TestLoadLimits_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_entities: [not an int\n"), 0o644))

	_, err := LoadLimits(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse limits file")
}

func TestLimitsWithDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Limits
		want  Limits
	}{
		{
			name:  "zero value gets both defaults",
			input: Limits{},
			want:  Limits{MaxEntities: DefaultMaxEntities, MaxAnnotations: DefaultMaxAnnotations},
		},
		{
			name:  "explicit values survive",
			input: Limits{MaxEntities: 10, MaxAnnotations: 20},
			want:  Limits{MaxEntities: 10, MaxAnnotations: 20},
		},
		{
			name:  "negative values fall back",
			input: Limits{MaxEntities: -1, MaxAnnotations: 20},
			want:  Limits{MaxEntities: DefaultMaxEntities, MaxAnnotations: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.withDefaults())
		})
	}
}
