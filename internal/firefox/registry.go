package firefox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/foxtheme/cli/pkg/util"
)

// Addon is one record from the extensions.json registry. Only the fields
// this tool reads are declared; ActivateThemeInRegistry works on the raw
// document so everything else survives a rewrite.
type Addon struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Active        bool   `json:"active"`
	UserDisabled  bool   `json:"userDisabled"`
	DefaultLocale struct {
		Name string `json:"name"`
	} `json:"defaultLocale"`
}

// Name returns the addon's localized display name, falling back to its id.
func (a Addon) Name() string {
	return util.FirstOrDash(a.DefaultLocale.Name, a.ID)
}

// ListThemes returns the theme-kind records from the profile's registry in
// document order. A missing registry is a profile with no themes installed,
// not a fault: it yields an empty list and no error.
func ListThemes(profileDir string) ([]Addon, error) {
	registryPath := filepath.Join(profileDir, RegistryFileName)
	content, err := os.ReadFile(registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", registryPath, err)
	}

	var doc struct {
		Addons []Addon `json:"addons"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, registryPath, err)
	}

	var themes []Addon
	for _, addon := range doc.Addons {
		if addon.Type == AddonTypeTheme {
			themes = append(themes, addon)
		}
	}
	return themes, nil
}

// ActivateThemeInRegistry rewrites the profile's registry so the theme-kind
// addon with the given id is enabled and active while every other theme is
// disabled and inactive. Non-theme addons and unrecognized fields pass
// through untouched. An id that matches no installed theme still rewrites
// the registry, leaving no theme active; the browser falls back to its
// built-in default.
func ActivateThemeInRegistry(profileDir, themeID string) error {
	registryPath := filepath.Join(profileDir, RegistryFileName)
	content, err := os.ReadFile(registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, registryPath)
		}
		return fmt.Errorf("failed to read %s: %w", registryPath, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, registryPath, err)
	}

	addons, _ := doc["addons"].([]any)
	for _, entry := range addons {
		addon, ok := entry.(map[string]any)
		if !ok || addon["type"] != AddonTypeTheme {
			continue
		}
		selected := addon["id"] == themeID
		addon["userDisabled"] = !selected
		addon["active"] = selected
	}

	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", registryPath, err)
	}
	if err := util.WriteFileAtomic(registryPath, updated, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", registryPath, err)
	}
	return nil
}
