package firefox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foxtheme/cli/internal/mozlz4"
)

// newProfileDir creates a temp directory standing in for a profile and
// registers its cleanup.
func newProfileDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "firefox-profile-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// writeRegistry writes an extensions.json with the given addons array.
func writeRegistry(t *testing.T, profileDir string, addons []map[string]any) {
	t.Helper()
	content, err := json.Marshal(map[string]any{"addons": addons})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, RegistryFileName), content, 0644))
}

// readRegistry parses extensions.json back into a generic document.
func readRegistry(t *testing.T, profileDir string) map[string]any {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(profileDir, RegistryFileName))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(content, &doc))
	return doc
}

// writeStartupCache encodes the given document into addonStartup.json.lz4.
func writeStartupCache(t *testing.T, profileDir string, addons map[string]any) {
	t.Helper()
	content, err := json.Marshal(map[string]any{
		"app-profile": map[string]any{"addons": addons},
	})
	require.NoError(t, err)
	container, err := mozlz4.Encode(content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, StartupCacheFileName), container, 0644))
}

// readStartupCache decodes addonStartup.json.lz4 and returns the addons map.
func readStartupCache(t *testing.T, profileDir string) map[string]any {
	t.Helper()
	container, err := os.ReadFile(filepath.Join(profileDir, StartupCacheFileName))
	require.NoError(t, err)
	content, err := mozlz4.Decode(container)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(content, &doc))
	appProfile := doc["app-profile"].(map[string]any)
	return appProfile["addons"].(map[string]any)
}

func themeRecord(id string, active bool) map[string]any {
	return map[string]any{
		"id":           id,
		"type":         AddonTypeTheme,
		"userDisabled": !active,
		"active":       active,
	}
}
