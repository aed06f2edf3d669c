package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/foxtheme/cli/internal/firefox"
)

var activeMarkerStyle = lipgloss.NewStyle().Bold(true)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes installed in a profile",
	Long: `List the theme addons recorded in the profile's extensions.json,
in registry order. A profile with no extensions.json simply has no themes
installed.`,
	Example: `  # Themes in the first profile
  foxtheme themes

  # Themes in a specific profile directory
  foxtheme themes --profile-dir ~/.mozilla/firefox/abcd1234.default`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func runThemes(cmd *cobra.Command, args []string) error {
	profileDir, err := resolveProfileDir()
	if err != nil {
		return err
	}

	themes, err := firefox.ListThemes(profileDir)
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	if len(themes) == 0 {
		pterm.Warning.Printf("No themes installed in %s\n", profileDir)
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Active"}}
	tableData = append(tableData, lo.Map(themes, func(theme firefox.Addon, _ int) []string {
		active := "-"
		if theme.Active {
			active = activeMarkerStyle.Render("active")
		}
		return []string{theme.ID, theme.Name(), active}
	})...)
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
