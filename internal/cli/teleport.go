package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newAddCmd creates the add command.
func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <alias> [dir]",
		Short: "Add a teleport to the active profile",
		Long: `Bind an alias to a directory in the active profile.

The directory defaults to the current directory and must exist.
An existing alias is overwritten.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 2 {
				dir = args[1]
			}

			if err := a.teleports.SetTeleport(args[0], dir); err != nil {
				return fmt.Errorf("failed to add teleport: %w", err)
			}
			target, err := a.teleports.TeleportTarget(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added teleport '%s' -> %s\n", args[0], target)
			return nil
		},
	}
}

// newRemoveCmd creates the remove command.
func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <alias>",
		Short:   "Remove a teleport from the active profile",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.teleports.RemoveTeleport(args[0]); err != nil {
				return fmt.Errorf("failed to remove teleport: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed teleport '%s'\n", args[0])
			return nil
		},
	}
}

// newListCmd creates the list command.
func newListCmd(a *app) *cobra.Command {
	var aliasesOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List teleports of the active profile",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			entries, err := a.teleports.Teleports()
			if err != nil {
				return fmt.Errorf("failed to list teleports: %w", err)
			}

			if aliasesOnly {
				for _, t := range entries {
					fmt.Fprintln(out, t.Alias)
				}
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No teleports found")
				return nil
			}

			width := 0
			for _, t := range entries {
				width = max(width, len(t.Alias))
			}
			for _, t := range entries {
				line := fmt.Sprintf("%-*s  %s", width, t.Alias, t.Target)
				if !a.fs.IsDir(t.Target) {
					line += " " + color.RedString("(missing)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&aliasesOnly, "aliases", "a", false, "print aliases only")

	return cmd
}

// newGetCmd creates the get command.
func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <alias>",
		Short: "Print the directory of a teleport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.teleports.TeleportTarget(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

// newMatchCmd creates the match command.
func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match [prefix]",
		Short: "Print the aliases starting with prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			aliases, err := a.teleports.MatchingTeleports(prefix)
			if err != nil {
				return err
			}
			for _, alias := range aliases {
				fmt.Fprintln(cmd.OutOrStdout(), alias)
			}
			return nil
		},
	}
}

// newPruneCmd creates the prune command.
func newPruneCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove teleports whose directory no longer exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if dryRun {
				stale, err := a.teleports.StaleTeleports()
				if err != nil {
					return err
				}
				for _, t := range stale {
					fmt.Fprintf(out, "Would remove '%s' -> %s\n", t.Alias, t.Target)
				}
				return nil
			}

			pruned, err := a.teleports.PruneTeleports()
			if err != nil {
				return fmt.Errorf("failed to prune teleports: %w", err)
			}
			if len(pruned) == 0 {
				fmt.Fprintln(out, "Nothing to prune")
				return nil
			}
			for _, t := range pruned {
				fmt.Fprintf(out, "Removed '%s' -> %s\n", t.Alias, t.Target)
			}
			a.log.Infof("pruned %d teleport(s)", len(pruned))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "only print what would be removed")

	return cmd
}
