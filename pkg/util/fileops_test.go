package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "util-atomic-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "prefs.js")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	// No stray temp files left behind
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomicCreates(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "util-atomic-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "fresh.json")
	require.NoError(t, WriteFileAtomic(path, []byte("{}"), 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
}

func TestCopyFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "util-copy-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	src := filepath.Join(tempDir, "extensions.json")
	dst := filepath.Join(tempDir, "extensions.json.bak")
	require.NoError(t, os.WriteFile(src, []byte(`{"addons":[]}`), 0600))

	require.NoError(t, CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, `{"addons":[]}`, string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
