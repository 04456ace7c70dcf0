// Package shell renders the shell functions that perform the actual
// directory change. The binary itself cannot change its parent's working
// directory, so it only prints targets and the shell function does the cd.
package shell

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"text/template"
)

// DefaultFunction is the name of the generated shell function.
const DefaultFunction = "goto"

// Shell identifies a supported shell.
type Shell string

const (
	Bash Shell = "bash"
	Zsh  Shell = "zsh"
	Fish Shell = "fish"
)

// Supported lists the shells Script can render for.
var Supported = []Shell{Bash, Zsh, Fish}

var functionName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Options configures Script.
type Options struct {
	// Function is the name of the generated function. Defaults to
	// DefaultFunction.
	Function string
	// Binary is the command invoked to look up targets.
	Binary string
}

// ParseShell converts a shell name into a Shell.
func ParseShell(name string) (Shell, error) {
	s := Shell(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Supported, s) {
		return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", name)
	}
	return s, nil
}

// Script returns the init script for sh.
func Script(sh Shell, opts Options) (string, error) {
	if opts.Function == "" {
		opts.Function = DefaultFunction
	}
	if !functionName.MatchString(opts.Function) {
		return "", fmt.Errorf("invalid function name %q", opts.Function)
	}
	if opts.Binary == "" {
		opts.Binary = "goto-cd"
	}

	tmpl, ok := templates[sh]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q", sh)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return "", fmt.Errorf("failed to render %s script: %w", sh, err)
	}
	return buf.String(), nil
}

var templates = map[Shell]*template.Template{
	Bash: template.Must(template.New("bash").Parse(posixScript + bashCompletion)),
	Zsh:  template.Must(template.New("zsh").Parse(posixScript + zshCompletion)),
	Fish: template.Must(template.New("fish").Parse(fishScript)),
}

const posixScript = `# goto-cd shell integration
{{.Function}}() {
  if [ "$#" -eq 0 ]; then
    command {{.Binary}} list
    return
  fi
  local target
  target="$(command {{.Binary}} get "$1")" || return
  builtin cd -- "$target"
}
`

const bashCompletion = `
_{{.Function}}_complete() {
  COMPREPLY=($(command {{.Binary}} match "${COMP_WORDS[COMP_CWORD]}" 2>/dev/null))
}
complete -F _{{.Function}}_complete {{.Function}}
`

const zshCompletion = `
_{{.Function}}_complete() {
  local -a aliases
  aliases=(${(f)"$(command {{.Binary}} match "$PREFIX" 2>/dev/null)"})
  compadd -a aliases
}
compdef _{{.Function}}_complete {{.Function}}
`

const fishScript = `# goto-cd shell integration
function {{.Function}}
    if test (count $argv) -eq 0
        command {{.Binary}} list
        return
    end
    set -l target (command {{.Binary}} get $argv[1]); or return
    builtin cd -- $target
end

complete -c {{.Function}} -f -a '(command {{.Binary}} match (commandline -ct) 2>/dev/null)'
`
