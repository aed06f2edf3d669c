package firefox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foxtheme/cli/internal/mozlz4"
	"github.com/foxtheme/cli/pkg/util"
)

// ActivateThemeInStartupCache rewrites the compressed startup cache so that
// among theme-kind addons only themeID is enabled. The cache mirrors part of
// the registry but is keyed by addon id under the app-profile section and
// persisted through the mozLz4 container.
//
// The decoded document only lives in memory between decode and re-encode;
// the cache file is replaced atomically once the new container is complete.
func ActivateThemeInStartupCache(profileDir, themeID string) error {
	cachePath := filepath.Join(profileDir, StartupCacheFileName)
	container, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, cachePath)
		}
		return fmt.Errorf("failed to read %s: %w", cachePath, err)
	}

	content, err := mozlz4.Decode(container)
	if err != nil {
		return fmt.Errorf("%s: %w", cachePath, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, cachePath, err)
	}

	appProfile, _ := doc["app-profile"].(map[string]any)
	addons, _ := appProfile["addons"].(map[string]any)
	for id, entry := range addons {
		addon, ok := entry.(map[string]any)
		if !ok || addon["type"] != AddonTypeTheme {
			continue
		}
		addon["enabled"] = id == themeID
	}

	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", cachePath, err)
	}
	encoded, err := mozlz4.Encode(updated)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", cachePath, err)
	}
	if err := util.WriteFileAtomic(cachePath, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cachePath, err)
	}
	return nil
}
