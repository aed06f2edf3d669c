package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/foxtheme/cli/internal/firefox"
	"github.com/foxtheme/cli/pkg/util"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List Firefox profiles",
	Long: `List the profiles declared in profiles.ini under the Firefox root
directory. The index column is what --profile expects.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	root, err := resolveFirefoxRoot()
	if err != nil {
		return err
	}

	profiles, err := firefox.ListProfiles(root)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		pterm.Warning.Printf("No profiles declared in %s\n", root)
		return nil
	}

	tableData := pterm.TableData{{"Index", "Name", "Path"}}
	for i, profile := range profiles {
		tableData = append(tableData, []string{
			strconv.Itoa(i),
			util.OrDash(profile.Name),
			profile.Path,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
