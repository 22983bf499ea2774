package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	url, err := store.Save(context.Background(), "image-123.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/image-123.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "image-123.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewLocalStore(dir, "/uploads/")

	url, err := store.Save(context.Background(), "resume-1.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resume-1.pdf", url)

	_, err = os.Stat(filepath.Join(dir, "resume-1.pdf"))
	require.NoError(t, err)
}

func TestNewFromConfigDefaultsToLocal(t *testing.T) {
	store, err := NewFromConfig(context.Background(), map[string]string{
		"UPLOAD_DIR": t.TempDir(),
	})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)
}

func TestNewFromConfigRejectsUnknownStore(t *testing.T) {
	_, err := NewFromConfig(context.Background(), map[string]string{
		"UPLOAD_STORE": "ftp",
	})
	require.Error(t, err)
}
