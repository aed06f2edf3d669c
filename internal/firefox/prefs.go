package firefox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foxtheme/cli/pkg/util"
)

// prefLinePrefix matches the single line in prefs.js that binds the active
// theme preference. Firefox writes one user_pref call per line, so a line
// scan is sufficient; no JS parsing is needed.
const prefLinePrefix = `user_pref("` + ActiveThemePref + `", `

// SetActiveThemePref rewrites prefs.js so the active-theme preference names
// themeID, appending the binding if the file never had one. Every other line
// passes through unchanged and in order. Fails with ErrNotFound when
// prefs.js is missing: the browser creates it on first run, so absence means
// the profile is not initialized.
func SetActiveThemePref(profileDir, themeID string) error {
	prefsPath := filepath.Join(profileDir, PrefsFileName)
	content, err := os.ReadFile(prefsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, prefsPath)
		}
		return fmt.Errorf("failed to read %s: %w", prefsPath, err)
	}

	binding := fmt.Sprintf(`user_pref(%q, %q);`, ActiveThemePref, themeID)

	var out strings.Builder
	found := false
	for line := range strings.Lines(string(content)) {
		if strings.Contains(line, prefLinePrefix) {
			out.WriteString(binding)
			out.WriteString("\n")
			found = true
			continue
		}
		out.WriteString(line)
	}
	if !found {
		if out.Len() > 0 && !strings.HasSuffix(out.String(), "\n") {
			out.WriteString("\n")
		}
		out.WriteString(binding)
		out.WriteString("\n")
	}

	if err := util.WriteFileAtomic(prefsPath, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", prefsPath, err)
	}
	return nil
}
