package firefox

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/foxtheme/cli/pkg/util"
)

// ActivateTheme applies one theme-activation intent across all three stores:
// prefs.js, then extensions.json, then addonStartup.json.lz4, in that fixed
// order. The first failure aborts and is returned with the failing store in
// its message; stores already rewritten keep their new state. Callers that
// need a recovery path should run BackupStores first.
func ActivateTheme(profileDir, themeID string) error {
	if err := SetActiveThemePref(profileDir, themeID); err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	if err := ActivateThemeInRegistry(profileDir, themeID); err != nil {
		return fmt.Errorf("addon registry: %w", err)
	}
	if err := ActivateThemeInStartupCache(profileDir, themeID); err != nil {
		return fmt.Errorf("startup cache: %w", err)
	}
	return nil
}

// BackupStores copies each store file that exists in profileDir to a
// sibling with the ".bak" suffix, overwriting any previous backup. Missing
// stores are skipped so a backup never fails on a profile that a later
// activation step would reject anyway.
func BackupStores(profileDir string) error {
	for _, name := range []string{PrefsFileName, RegistryFileName, StartupCacheFileName} {
		src := filepath.Join(profileDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := util.CopyFile(src, src+BackupSuffix); err != nil {
			return fmt.Errorf("failed to back up %s: %w", name, err)
		}
	}
	return nil
}
