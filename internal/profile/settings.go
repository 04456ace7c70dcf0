package profile

import (
	"fmt"
	"maps"
	"slices"

	"github.com/wwwyo/goto-cd/internal/document"
)

const (
	currentProfileKey = "current_profile"
	profilesKey       = "profiles"
)

// Settings is the decoded settings document.
type Settings struct {
	CurrentProfile string
	Profiles       []string

	// extra keeps keys this version does not know about.
	extra document.Document
}

// DefaultSettings returns the settings written on first use.
func DefaultSettings() *Settings {
	return &Settings{
		CurrentProfile: DefaultName,
		Profiles:       []string{DefaultName},
	}
}

// HasProfile reports whether name is registered.
func (s *Settings) HasProfile(name string) bool {
	return slices.Contains(s.Profiles, name)
}

func settingsFromDocument(doc document.Document) *Settings {
	s := &Settings{extra: document.Document{}}
	maps.Copy(s.extra, doc)
	delete(s.extra, currentProfileKey)
	delete(s.extra, profilesKey)

	if current, ok := doc.String(currentProfileKey); ok {
		s.CurrentProfile = current
	} else {
		s.CurrentProfile = DefaultName
	}
	if profiles, ok := doc.Strings(profilesKey); ok {
		s.Profiles = profiles
	} else {
		s.Profiles = []string{}
	}
	return s
}

func (s *Settings) document() document.Document {
	doc := document.Document{}
	maps.Copy(doc, s.extra)
	doc[currentProfileKey] = s.CurrentProfile
	profiles := make([]any, len(s.Profiles))
	for i, p := range s.Profiles {
		profiles[i] = p
	}
	doc[profilesKey] = profiles
	return doc
}

// SettingsManager reads and writes the settings document.
type SettingsManager struct {
	store *document.Store
}

// NewSettingsManager creates a new SettingsManager.
func NewSettingsManager(store *document.Store) *SettingsManager {
	return &SettingsManager{store: store}
}

// Settings returns the settings document, writing the defaults first when
// the file does not exist yet or holds no keys at all.
func (m *SettingsManager) Settings() (*Settings, error) {
	if !m.store.Exists(SettingsDocument) {
		return m.initialize()
	}

	doc, err := m.store.Read(m.store.Path(SettingsDocument))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(doc) == 0 {
		return m.initialize()
	}
	return settingsFromDocument(doc), nil
}

func (m *SettingsManager) initialize() (*Settings, error) {
	s := DefaultSettings()
	if err := m.Save(s); err != nil {
		return nil, fmt.Errorf("failed to initialize settings: %w", err)
	}
	return s, nil
}

// Save persists s. The file only appears once its full content is written.
func (m *SettingsManager) Save(s *Settings) error {
	return m.store.Write(m.store.Path(SettingsDocument), s.document())
}

// ActiveProfileName returns the current profile, "default" when unset.
func (m *SettingsManager) ActiveProfileName() (string, error) {
	s, err := m.Settings()
	if err != nil {
		return "", err
	}
	return s.CurrentProfile, nil
}

// ListProfiles returns the registered profile names in stored order.
func (m *SettingsManager) ListProfiles() ([]string, error) {
	s, err := m.Settings()
	if err != nil {
		return nil, err
	}
	return s.Profiles, nil
}

// SetCurrentProfile makes name the active profile. The name does not
// have to be registered; callers that need that check do it themselves.
func (m *SettingsManager) SetCurrentProfile(name string) error {
	if _, err := ParseName(name); err != nil {
		return err
	}

	s, err := m.Settings()
	if err != nil {
		return err
	}
	s.CurrentProfile = name
	return m.Save(s)
}
