package profile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wwwyo/goto-cd/internal/document"
	gerrors "github.com/wwwyo/goto-cd/internal/errors"
	"github.com/wwwyo/goto-cd/internal/logging"
)

// Manager creates, removes and loads profiles.
type Manager struct {
	store    *document.Store
	settings *SettingsManager
	log      *logging.Logger
}

// NewManager creates a new Manager.
func NewManager(store *document.Store, settings *SettingsManager, log *logging.Logger) *Manager {
	return &Manager{store: store, settings: settings, log: log}
}

// Settings returns the settings manager backing m.
func (m *Manager) Settings() *SettingsManager {
	return m.settings
}

// AddProfile registers a new profile.
func (m *Manager) AddProfile(name string) error {
	n, err := ParseName(name)
	if err != nil {
		return err
	}
	if n.IsDefault() {
		return fmt.Errorf("%s - the default profile always exists: %w", name, gerrors.ErrInvalidName)
	}

	s, err := m.settings.Settings()
	if err != nil {
		return err
	}
	if s.HasProfile(name) {
		return fmt.Errorf("%s is a profile that already exists: %w", name, gerrors.ErrAlreadyExists)
	}

	s.Profiles = append(s.Profiles, name)
	return m.settings.Save(s)
}

// RemoveProfile unregisters a profile. Its document stays on disk. When
// the removed profile was active, the default profile becomes active.
func (m *Manager) RemoveProfile(name string) error {
	if name == DefaultName {
		return fmt.Errorf("the default profile cannot be removed: %w", gerrors.ErrInvalidName)
	}

	s, err := m.settings.Settings()
	if err != nil {
		return err
	}
	if !s.HasProfile(name) {
		return fmt.Errorf("%s - not a profile that exists: %w", name, gerrors.ErrNotFound)
	}

	s.Profiles = slices.DeleteFunc(s.Profiles, func(p string) bool { return p == name })
	if s.CurrentProfile == name {
		m.log.Debugf("removed active profile %s, switching to %s", name, DefaultName)
		s.CurrentProfile = DefaultName
	}
	return m.settings.Save(s)
}

// GetNamedProfile returns the document of a public profile, creating an
// empty one if needed.
func (m *Manager) GetNamedProfile(name string) (document.Document, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return m.load(n.String())
}

// GetInternalProfile is GetNamedProfile without the reserved prefix check.
func (m *Manager) GetInternalProfile(name string) (document.Document, error) {
	return m.load(name)
}

// UpdateNamedProfile replaces the whole document of a profile.
func (m *Manager) UpdateNamedProfile(name string, doc document.Document) error {
	path, err := m.store.RetrieveOrCreate(name)
	if err != nil {
		return err
	}
	return m.store.Write(path, doc)
}

// GetDefaultProfile returns the default profile's document.
func (m *Manager) GetDefaultProfile() (document.Document, error) {
	return m.GetNamedProfile(DefaultName)
}

// UpdateDefaultProfile replaces the default profile's document.
func (m *Manager) UpdateDefaultProfile(doc document.Document) error {
	return m.UpdateNamedProfile(DefaultName, doc)
}

// ActiveProfile returns the name and document of the active profile.
func (m *Manager) ActiveProfile() (string, document.Document, error) {
	name, err := m.settings.ActiveProfileName()
	if err != nil {
		return "", nil, err
	}
	doc, err := m.GetNamedProfile(name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load active profile %q: %w", name, err)
	}
	return name, doc, nil
}

// load reads a profile document. A file that cannot be read yields an
// empty document; malformed content is reported as ErrParse.
func (m *Manager) load(name string) (document.Document, error) {
	path, err := m.store.RetrieveOrCreate(name)
	if err != nil {
		return nil, err
	}

	doc, err := m.store.Read(path)
	if err != nil {
		if errors.Is(err, gerrors.ErrParse) {
			return nil, err
		}
		m.log.Debugf("falling back to an empty profile: %v", err)
		return document.Document{}, nil
	}
	return doc, nil
}
