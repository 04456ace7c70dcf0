package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/wwwyo/goto-cd/internal/config"
	"github.com/wwwyo/goto-cd/internal/document"
	"github.com/wwwyo/goto-cd/internal/logging"
	platformfs "github.com/wwwyo/goto-cd/internal/platform/fs"
	"github.com/wwwyo/goto-cd/internal/profile"
	"github.com/wwwyo/goto-cd/internal/teleport"
)

// version is set via ldflags during build: -ldflags "-X github.com/wwwyo/goto-cd/internal/cli.version=v1.0.0"
var version = "v0.0.0"

func init() {
	if !semver.IsValid(version) {
		panic(fmt.Sprintf("invalid version set via ldflags: %q (must be valid semver)", version))
	}
}

// app represents the CLI application with its dependencies.
type app struct {
	fs      platformfs.FileSystem
	opts    config.Options
	verbose bool
	debug   bool

	log       *logging.Logger
	home      config.Home
	profiles  *profile.Manager
	teleports *teleport.Manager
}

// newApp creates a new app instance.
func newApp() *app {
	return &app{fs: platformfs.NewFileSystem()}
}

// setup resolves the config home and wires the managers.
func (a *app) setup(out, errOut io.Writer) error {
	a.log = &logging.Logger{Verbose: a.verbose, Debug: a.debug, Out: out, Err: errOut}

	home, err := config.Resolve(a.fs, a.opts)
	if err != nil {
		return fmt.Errorf("failed to resolve config home: %w", err)
	}
	a.log.Debugf("config home %s (%s)", home.Path, home.Format)

	store, err := document.NewStore(a.fs, home, a.log)
	if err != nil {
		return err
	}

	a.home = home
	a.profiles = profile.NewManager(store, profile.NewSettingsManager(store), a.log)
	a.teleports = teleport.NewManager(a.fs, a.profiles)
	return nil
}

// newRootCmd creates the root command for goto-cd.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goto-cd",
		Short: "Directory teleports grouped by profile",
		Long: `goto-cd stores short aliases ("teleports") for directories, grouped into
named profiles. Run 'goto-cd shell-init <shell>' and evaluate its output to
get a shell function that jumps to a teleport.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "shell-init" {
				return nil
			}
			return a.setup(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.Home, "home", "", "config home directory (default: discovered from XDG_CONFIG_HOME or ~/.config)")
	flags.StringVar(&a.opts.Format, "format", "", "document format: toml or yaml (default: $"+config.FormatEnv+" or toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "print informational messages")
	flags.BoolVar(&a.debug, "debug", false, "print debug messages")

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newPruneCmd(a))
	rootCmd.AddCommand(newProfileCmd(a))
	rootCmd.AddCommand(newShellInitCmd())

	return rootCmd
}

// Execute runs the CLI application.
func Execute() {
	a := newApp()
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		a.log.Errorf("%v", err)
		os.Exit(1)
	}
}
