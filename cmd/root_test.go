package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFirefoxRootPrecedence(t *testing.T) {
	t.Setenv(firefoxDirEnv, "/from/env")

	flagFirefoxDir = "/from/flag"
	defer func() { flagFirefoxDir = "" }()

	root, err := resolveFirefoxRoot()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", root)

	flagFirefoxDir = ""
	root, err = resolveFirefoxRoot()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", root)
}

func TestResolveProfileDirExplicit(t *testing.T) {
	flagProfileDir = "some/relative/profile"
	defer func() { flagProfileDir = "" }()

	dir, err := resolveProfileDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, "profile", filepath.Base(dir))
}

func TestResolveProfileDirByIndex(t *testing.T) {
	root, err := os.MkdirTemp("", "foxtheme-root-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(root)

	ini := "[Profile0]\nName=default\nIsRelative=1\nPath=abcd.default\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "profiles.ini"), []byte(ini), 0644))

	flagFirefoxDir = root
	flagProfile = 0
	defer func() {
		flagFirefoxDir = ""
		flagProfile = 0
	}()

	dir, err := resolveProfileDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "abcd.default"), dir)
}
