// Package cmd defines the foxtheme command tree.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foxtheme/cli/internal/firefox"
)

// firefoxDirEnv overrides the Firefox root directory when the flag is unset.
const firefoxDirEnv = "FOXTHEME_FIREFOX_DIR"

var (
	flagFirefoxDir string
	flagProfile    int
	flagProfileDir string
)

// RootCmd is the top-level foxtheme command.
var RootCmd = &cobra.Command{
	Use:   "foxtheme",
	Short: "Switch Firefox themes from the command line",
	Long: `foxtheme switches the active Firefox theme by editing the profile state
the browser reads at startup: prefs.js, extensions.json, and the compressed
addonStartup.json.lz4 startup cache.

Firefox must not be running against the profile while foxtheme writes to it;
changes take effect the next time the browser starts.

Example workflow:
  # See which profiles exist
  foxtheme profiles

  # List themes installed in the first profile
  foxtheme themes

  # Activate one of them
  foxtheme activate firefox-compact-dark@mozilla.org`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env for FOXTHEME_FIREFOX_DIR; absence is fine
		_ = godotenv.Load()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Show help if called without subcommands
		_ = cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagFirefoxDir, "firefox-dir", "",
		"Firefox root directory (default ~/.mozilla/firefox, env "+firefoxDirEnv+")")
	RootCmd.PersistentFlags().IntVarP(&flagProfile, "profile", "p", 0,
		"Profile index from 'foxtheme profiles'")
	RootCmd.PersistentFlags().StringVar(&flagProfileDir, "profile-dir", "",
		"Profile directory, bypassing profiles.ini lookup")

	RootCmd.AddCommand(profilesCmd)
	RootCmd.AddCommand(themesCmd)
	RootCmd.AddCommand(activateCmd)
	RootCmd.AddCommand(mozlz4Cmd)
}

// resolveFirefoxRoot picks the Firefox root directory from the flag, the
// environment, or the per-OS default, in that order.
func resolveFirefoxRoot() (string, error) {
	if flagFirefoxDir != "" {
		return flagFirefoxDir, nil
	}
	if dir := os.Getenv(firefoxDirEnv); dir != "" {
		return dir, nil
	}
	return firefox.DefaultRoot()
}

// resolveProfileDir returns the profile directory the command should operate
// on. --profile-dir wins outright; otherwise the --profile index is looked
// up in profiles.ini.
func resolveProfileDir() (string, error) {
	if flagProfileDir != "" {
		abs, err := filepath.Abs(flagProfileDir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve profile directory: %w", err)
		}
		return abs, nil
	}

	root, err := resolveFirefoxRoot()
	if err != nil {
		return "", err
	}
	return firefox.ProfileByIndex(root, flagProfile)
}
