package config

import (
	"fmt"
	"runtime"
	"strings"

	gerrors "github.com/wwwyo/goto-cd/internal/errors"
	"github.com/wwwyo/goto-cd/internal/platform/fs"
)

const (
	// AppDirName is the directory created under a per-user config directory.
	AppDirName = "goto-cd"
	// DotDirName is the fallback directory created directly under the home directory.
	DotDirName = ".goto-cd"
	// DotConfigDir is the conventional per-user config directory on Unix.
	DotConfigDir = ".config"

	// XDGConfigHomeEnv overrides the base directory of the config home.
	XDGConfigHomeEnv = "XDG_CONFIG_HOME"
	// AppDataEnv names the per-user config directory on Windows.
	AppDataEnv = "APPDATA"
	// FormatEnv selects the document format when --format is not given.
	FormatEnv = "GOTO_CD_FORMAT"
)

// Format is the serialization format of the stored documents.
type Format string

const (
	// FormatTOML stores documents as TOML (the default).
	FormatTOML Format = "toml"
	// FormatYAML stores documents as YAML.
	FormatYAML Format = "yaml"
)

// DefaultFormat is used when neither flag nor environment select one.
const DefaultFormat = FormatTOML

// ParseFormat validates a format name. An empty name yields DefaultFormat.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "":
		return DefaultFormat, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported document format %q (want toml or yaml)", name)
	}
}

// Options holds the settings collected from command-line flags.
type Options struct {
	// Home is an explicit config home. When set, discovery is skipped.
	Home string
	// Format overrides the GOTO_CD_FORMAT environment variable.
	Format string
}

// Home is a resolved config home. It is built once per process and
// injected into the document store.
type Home struct {
	Path   string
	Format Format
}

// goos is swapped in tests to exercise platform-specific discovery.
var goos = runtime.GOOS

// Resolve turns Options into a Home, creating the directory if needed.
func Resolve(fsys fs.FileSystem, opts Options) (Home, error) {
	formatName := opts.Format
	if formatName == "" {
		formatName = fsys.Getenv(FormatEnv)
	}
	format, err := ParseFormat(formatName)
	if err != nil {
		return Home{}, err
	}

	var path string
	if opts.Home != "" {
		path, err = ExpandPath(fsys, opts.Home)
		if err == nil {
			path, err = fsys.Abs(path)
		}
	} else {
		path, err = DiscoverHome(fsys)
	}
	if err != nil {
		return Home{}, err
	}

	if err := EnsureDir(fsys, path); err != nil {
		return Home{}, err
	}
	return Home{Path: path, Format: format}, nil
}

// DiscoverHome returns the config home path for the current user.
//
// Resolution:
//   - $XDG_CONFIG_HOME/goto-cd if set
//   - %AppData%/goto-cd on Windows, if the directory exists
//   - ~/.config/goto-cd if ~/.config exists
//   - ~/.goto-cd otherwise
func DiscoverHome(fsys fs.FileSystem) (string, error) {
	if xdg := fsys.Getenv(XDGConfigHomeEnv); xdg != "" {
		return fsys.Join(xdg, AppDirName), nil
	}

	if goos == "windows" {
		if appData := fsys.Getenv(AppDataEnv); appData != "" && fsys.IsDir(appData) {
			return fsys.Join(appData, AppDirName), nil
		}
	}

	home, err := fsys.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w: %w", gerrors.ErrFilesystem, err)
	}

	dotConfig := fsys.Join(home, DotConfigDir)
	if fsys.IsDir(dotConfig) {
		return fsys.Join(dotConfig, AppDirName), nil
	}
	return fsys.Join(home, DotDirName), nil
}

// EnsureDir creates path and any missing parents. It is a no-op when the
// directory already exists.
func EnsureDir(fsys fs.FileSystem, path string) error {
	if err := fsys.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create config home %s: %w: %w", path, gerrors.ErrFilesystem, err)
	}
	return nil
}

// ExpandPath expands ~ in a path to the home directory.
func ExpandPath(fsys fs.FileSystem, path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] == '~' {
		home, err := fsys.UserHomeDir()
		if err != nil {
			return "", err
		}
		return home + path[1:], nil
	}

	return path, nil
}
