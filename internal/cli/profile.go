package cli

import (
	"fmt"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	gerrors "github.com/wwwyo/goto-cd/internal/errors"
)

// confirmProfileRemoval asks the user to confirm removing a profile.
// Replaced in tests.
var confirmProfileRemoval = func(name string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Remove profile '%s'? Its teleports stay on disk.", name),
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// newProfileCmd creates the profile command group.
func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
		Long: `Profiles are isolated sets of teleports. Exactly one profile is active;
the "default" profile always exists.`,
	}

	cmd.AddCommand(newProfileListCmd(a))
	cmd.AddCommand(newProfileAddCmd(a))
	cmd.AddCommand(newProfileRemoveCmd(a))
	cmd.AddCommand(newProfileUseCmd(a))
	cmd.AddCommand(newProfileCurrentCmd(a))

	return cmd
}

func newProfileListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List profiles",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.profiles.Settings().Settings()
			if err != nil {
				return err
			}

			for _, name := range s.Profiles {
				if name == s.CurrentProfile {
					fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("* %s", name))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
			}
			if !s.HasProfile(s.CurrentProfile) {
				a.log.Warnf("active profile '%s' is not in the profile list", s.CurrentProfile)
			}
			return nil
		},
	}
}

func newProfileAddCmd(a *app) *cobra.Command {
	var use bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.profiles.AddProfile(name); err != nil {
				return fmt.Errorf("failed to add profile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added profile '%s'\n", name)

			if use {
				if err := a.profiles.Settings().SetCurrentProfile(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile '%s'\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&use, "use", "u", false, "switch to the new profile")

	return cmd
}

func newProfileRemoveCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <name>",
		Short:   "Remove a profile",
		Long:    `Remove a profile from the profile list. Its document is kept on disk.`,
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if !yes {
				confirmed, err := confirmProfileRemoval(name)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := a.profiles.RemoveProfile(name); err != nil {
				return fmt.Errorf("failed to remove profile: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed profile '%s'\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newProfileUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			settings := a.profiles.Settings()

			profiles, err := settings.ListProfiles()
			if err != nil {
				return err
			}
			if !slices.Contains(profiles, name) {
				return fmt.Errorf("%s - not a profile that exists: %w", name, gerrors.ErrNotFound)
			}

			if err := settings.SetCurrentProfile(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile '%s'\n", name)
			return nil
		},
	}
}

func newProfileCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.profiles.Settings().ActiveProfileName()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
