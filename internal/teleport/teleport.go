// Package teleport manages the alias → directory entries of the active
// profile.
package teleport

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/wwwyo/goto-cd/internal/config"
	"github.com/wwwyo/goto-cd/internal/document"
	gerrors "github.com/wwwyo/goto-cd/internal/errors"
	"github.com/wwwyo/goto-cd/internal/platform/fs"
	"github.com/wwwyo/goto-cd/internal/profile"
)

// Key is the profile document key holding the teleport table.
const Key = "teleports"

// Teleport is an alias bound to an absolute directory.
type Teleport struct {
	Alias  string
	Target string
}

// Manager reads and writes teleports in the active profile.
type Manager struct {
	fs       fs.FileSystem
	profiles *profile.Manager
}

// NewManager creates a new Manager.
func NewManager(fsys fs.FileSystem, profiles *profile.Manager) *Manager {
	return &Manager{fs: fsys, profiles: profiles}
}

// active is the loaded state of the active profile.
type active struct {
	name      string
	doc       document.Document
	teleports map[string]string
}

func (m *Manager) load() (*active, error) {
	name, doc, err := m.profiles.ActiveProfile()
	if err != nil {
		return nil, err
	}

	teleports := make(map[string]string)
	for alias, v := range doc.Table(Key) {
		if target, ok := v.(string); ok {
			teleports[alias] = target
		}
	}
	return &active{name: name, doc: doc, teleports: teleports}, nil
}

func (m *Manager) save(a *active) error {
	table := make(map[string]any, len(a.teleports))
	for alias, target := range a.teleports {
		table[alias] = target
	}
	a.doc[Key] = table
	return m.profiles.UpdateNamedProfile(a.name, a.doc)
}

// ListTeleports returns all aliases of the active profile, sorted.
func (m *Manager) ListTeleports() ([]string, error) {
	a, err := m.load()
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(a.teleports)), nil
}

// Teleports returns all entries of the active profile, sorted by alias.
func (m *Manager) Teleports() ([]Teleport, error) {
	a, err := m.load()
	if err != nil {
		return nil, err
	}
	return sortedEntries(a.teleports), nil
}

// SetTeleport binds alias to the absolute path of target, replacing any
// existing binding. target must be an existing directory.
func (m *Manager) SetTeleport(alias, target string) error {
	if strings.TrimSpace(alias) == "" {
		return fmt.Errorf("teleport alias cannot be empty: %w", gerrors.ErrInvalidName)
	}

	expanded, err := config.ExpandPath(m.fs, target)
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", target, err)
	}
	abs, err := m.fs.Abs(expanded)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", target, err)
	}
	if !m.fs.IsDir(abs) {
		return fmt.Errorf("%s: %w", target, gerrors.ErrTargetNotFound)
	}

	a, err := m.load()
	if err != nil {
		return err
	}
	a.teleports[alias] = abs
	return m.save(a)
}

// RemoveTeleport deletes alias from the active profile.
func (m *Manager) RemoveTeleport(alias string) error {
	a, err := m.load()
	if err != nil {
		return err
	}
	if _, ok := a.teleports[alias]; !ok {
		return fmt.Errorf("teleport %q: %w", alias, gerrors.ErrNotFound)
	}
	delete(a.teleports, alias)
	return m.save(a)
}

// TeleportTarget returns the directory bound to alias.
func (m *Manager) TeleportTarget(alias string) (string, error) {
	a, err := m.load()
	if err != nil {
		return "", err
	}
	target, ok := a.teleports[alias]
	if !ok {
		return "", fmt.Errorf("teleport %q: %w", alias, gerrors.ErrNotFound)
	}
	return target, nil
}

// MatchingTeleports returns the aliases starting with prefix, sorted.
func (m *Manager) MatchingTeleports(prefix string) ([]string, error) {
	aliases, err := m.ListTeleports()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(aliases, func(alias string) bool {
		return !strings.HasPrefix(alias, prefix)
	}), nil
}

// StaleTeleports returns the entries whose target is no longer a directory.
func (m *Manager) StaleTeleports() ([]Teleport, error) {
	a, err := m.load()
	if err != nil {
		return nil, err
	}
	return m.stale(a), nil
}

// PruneTeleports removes stale entries and returns them.
func (m *Manager) PruneTeleports() ([]Teleport, error) {
	a, err := m.load()
	if err != nil {
		return nil, err
	}

	stale := m.stale(a)
	if len(stale) == 0 {
		return nil, nil
	}
	for _, t := range stale {
		delete(a.teleports, t.Alias)
	}
	if err := m.save(a); err != nil {
		return nil, err
	}
	return stale, nil
}

func (m *Manager) stale(a *active) []Teleport {
	var out []Teleport
	for _, t := range sortedEntries(a.teleports) {
		if !m.fs.IsDir(t.Target) {
			out = append(out, t)
		}
	}
	return out
}

func sortedEntries(teleports map[string]string) []Teleport {
	out := make([]Teleport, 0, len(teleports))
	for _, alias := range slices.Sorted(maps.Keys(teleports)) {
		out = append(out, Teleport{Alias: alias, Target: teleports[alias]})
	}
	return out
}
