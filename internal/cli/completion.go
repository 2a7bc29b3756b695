package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for graphexport and print it to stdout.

Load it for the current shell session:

  bash        source <(graphexport completion bash)
  zsh         source <(graphexport completion zsh)
  fish        graphexport completion fish | source
  powershell  graphexport completion powershell | Out-String | Invoke-Expression

To keep completions across sessions, write the script to your shell's
completion directory instead, for example:

  graphexport completion bash > ~/.local/share/bash-completion/completions/graphexport
  graphexport completion zsh > "${fpath[1]}/_graphexport"
  graphexport completion fish > ~/.config/fish/completions/graphexport.fish`,
		Example:               `  graphexport completion zsh > "${fpath[1]}/_graphexport"`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completionShells lists the shells completionCommand accepts.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}
