package firefox

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Profile is one profile declared in profiles.ini. Path is always absolute.
type Profile struct {
	Name string
	Path string
}

// DefaultRoot returns the conventional Firefox root directory for the
// current user (~/.mozilla/firefox on Linux).
func DefaultRoot() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mozilla", "firefox"), nil
}

// ListProfiles parses profiles.ini under root and returns the declared
// profiles in file order. Sections without a Path key (General, Install*)
// are skipped. Relative paths are resolved against root.
func ListProfiles(root string) ([]Profile, error) {
	iniPath := filepath.Join(root, ProfilesFileName)
	if _, err := os.Stat(iniPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, iniPath)
	}
	cfg, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", iniPath, err)
	}

	var profiles []Profile
	for _, section := range cfg.Sections() {
		if !section.HasKey("Path") {
			continue
		}
		path := section.Key("Path").String()
		if section.Key("IsRelative").MustBool(true) {
			path = filepath.Join(root, path)
		}
		profiles = append(profiles, Profile{
			Name: section.Key("Name").MustString(section.Name()),
			Path: path,
		})
	}
	return profiles, nil
}

// ProfileByIndex returns the directory of the index-th profile from
// profiles.ini under root. Fails with ErrProfileOutOfRange when index does
// not name a declared profile.
func ProfileByIndex(root string, index int) (string, error) {
	profiles, err := ListProfiles(root)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(profiles) {
		return "", fmt.Errorf("%w: %d (have %d profiles)", ErrProfileOutOfRange, index, len(profiles))
	}
	return profiles[index].Path, nil
}
