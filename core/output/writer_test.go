package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("  ")
	require.Error(t, err)
}

func TestPathFor(t *testing.T) {
	w, err := New("./output/medicine-details.json")
	require.NoError(t, err)

	assert.Equal(t, "./output/medicine-details.json", w.PathFor(".json"))
	assert.Equal(t, "./output/medicine-details.json", w.PathFor(""))
	assert.Equal(t, "./output/medicine-details.md", w.PathFor(".md"))
	assert.Equal(t, "./output/medicine-details.pdf", w.PathFor(".pdf"))
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medicine-details.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	w, err := New(path)
	require.NoError(t, err)

	got, err := w.Write([]byte(`{}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestWriteRequiresExistingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "medicine-details.json")
	w, err := New(path)
	require.NoError(t, err)

	_, err = w.Write([]byte(`{}`), ".json")
	require.Error(t, err)
	assert.NoFileExists(t, path)
}
