// Package firefox edits the on-disk state a Firefox profile keeps about
// installed themes, so that a theme chosen here is the one the browser
// activates on its next start.
//
// Three independently formatted stores have to agree on the active theme:
// the prefs.js preference file, the extensions.json addon registry, and the
// mozLz4-compressed addonStartup.json.lz4 startup cache. The package assumes
// the browser is not running against the profile while it writes.
package firefox

const (
	// ProfilesFileName is the ini file under the Firefox root that declares profiles
	ProfilesFileName = "profiles.ini"

	// PrefsFileName is the per-profile preference file
	PrefsFileName = "prefs.js"

	// RegistryFileName is the per-profile addon registry
	RegistryFileName = "extensions.json"

	// StartupCacheFileName is the per-profile compressed startup cache
	StartupCacheFileName = "addonStartup.json.lz4"

	// ActiveThemePref is the preference key that names the active theme
	ActiveThemePref = "extensions.activeThemeID"

	// AddonTypeTheme is the addon type value that selects theme records
	AddonTypeTheme = "theme"

	// BackupSuffix is appended to store file names by BackupStores
	BackupSuffix = ".bak"
)
