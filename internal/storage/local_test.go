package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store := NewLocal(root, "/static")

	url, err := store.Save("workshops/1/poster.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/static/workshops/1/poster.jpg", url)

	data, err := os.ReadFile(filepath.Join(root, "workshops", "1", "poster.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete("workshops/1/poster.jpg"))
	_, err = os.Stat(filepath.Join(root, "workshops", "1", "poster.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_DeleteMissingIsNoop(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static")

	assert.NoError(t, store.Delete("does/not/exist.jpg"))
}

func TestLocal_PathEscapeRejected(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static")

	_, err := store.Save("../outside.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestLocal_PathFromURL(t *testing.T) {
	store := NewLocal(t.TempDir(), "/static")

	assert.Equal(t, "studio-images/1/a.jpg", store.PathFromURL("/static/studio-images/1/a.jpg"))
	assert.Equal(t, "", store.PathFromURL("https://elsewhere.example.com/a.jpg"))
}
