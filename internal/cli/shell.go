package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wwwyo/goto-cd/internal/shell"
)

// newShellInitCmd creates the shell-init command.
func newShellInitCmd() *cobra.Command {
	var opts shell.Options

	cmd := &cobra.Command{
		Use:   "shell-init <bash|zsh|fish>",
		Short: "Print the shell function that jumps to teleports",
		Long: `Print a shell function that changes directory to a teleport.

Add one of these to your shell startup file:
  eval "$(goto-cd shell-init bash)"
  eval "$(goto-cd shell-init zsh)"
  goto-cd shell-init fish | source`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(shell.Bash), string(shell.Zsh), string(shell.Fish)},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := shell.ParseShell(args[0])
			if err != nil {
				return err
			}
			script, err := shell.Script(sh, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Function, "name", shell.DefaultFunction, "name of the generated shell function")

	return cmd
}
