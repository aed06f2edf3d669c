package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for foxtheme.

To load completions:

Bash:
  $ source <(foxtheme completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ foxtheme completion bash > /etc/bash_completion.d/foxtheme
  # macOS:
  $ foxtheme completion bash > $(brew --prefix)/etc/bash_completion.d/foxtheme

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ foxtheme completion zsh > "${fpath[1]}/_foxtheme"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ foxtheme completion fish | source

  # To load completions for each session, execute once:
  $ foxtheme completion fish > ~/.config/fish/completions/foxtheme.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(completionCmd)
}
