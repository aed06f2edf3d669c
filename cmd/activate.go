package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/foxtheme/cli/internal/firefox"
)

var flagBackup bool

var activateCmd = &cobra.Command{
	Use:   "activate <theme-id>",
	Short: "Activate a theme in a profile",
	Long: `Activate the given theme by updating all three stores the browser
consults at startup: prefs.js, extensions.json, and addonStartup.json.lz4.

The stores are updated in that fixed order with no rollback: if a later
store fails, the earlier ones keep their new state. Use --backup to snapshot
all three files to .bak siblings first.

Close Firefox before activating; the change applies on the next start.`,
	Example: `  # Activate the built-in dark theme in the first profile
  foxtheme activate firefox-compact-dark@mozilla.org

  # Snapshot the stores before touching them
  foxtheme activate my-theme@example.com --backup`,
	Args: cobra.ExactArgs(1),
	RunE: runActivate,
}

func init() {
	activateCmd.Flags().BoolVar(&flagBackup, "backup", false,
		"Copy prefs.js, extensions.json, and addonStartup.json.lz4 to .bak files first")
}

func runActivate(cmd *cobra.Command, args []string) error {
	themeID := args[0]

	profileDir, err := resolveProfileDir()
	if err != nil {
		return err
	}

	// The library deliberately allows activating an id that matches nothing
	// (the result is a profile with no theme active, which Firefox resolves
	// to its default). Warn so a typo doesn't pass silently.
	themes, err := firefox.ListThemes(profileDir)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}
	if _, known := lo.Find(themes, func(theme firefox.Addon) bool {
		return theme.ID == themeID
	}); !known {
		pterm.Warning.Printf("%s is not among the installed themes; Firefox will fall back to its default theme\n", themeID)
	}

	if flagBackup {
		pterm.Info.Println("Backing up store files...")
		if err := firefox.BackupStores(profileDir); err != nil {
			return fmt.Errorf("failed to back up stores: %w", err)
		}
	}

	pterm.Info.Printf("Activating %s in %s\n", themeID, profileDir)
	if err := firefox.ActivateTheme(profileDir, themeID); err != nil {
		return fmt.Errorf("failed to activate theme: %w", err)
	}

	pterm.Success.Printf("Theme %s activated; restart Firefox to apply\n", themeID)
	return nil
}
