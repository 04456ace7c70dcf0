package document

import (
	"fmt"
	"strings"

	"github.com/wwwyo/goto-cd/internal/config"
	gerrors "github.com/wwwyo/goto-cd/internal/errors"
	"github.com/wwwyo/goto-cd/internal/logging"
	"github.com/wwwyo/goto-cd/internal/platform/fs"
)

// Store manages document files under a config home.
// Nothing is cached: every Read parses the file again.
type Store struct {
	fs    fs.FileSystem
	home  config.Home
	codec Codec
	log   *logging.Logger
}

// NewStore creates a new Store for home.
func NewStore(fsys fs.FileSystem, home config.Home, log *logging.Logger) (*Store, error) {
	codec, err := CodecFor(home.Format)
	if err != nil {
		return nil, err
	}
	return &Store{fs: fsys, home: home, codec: codec, log: log}, nil
}

// Path returns the file path of the named document.
func (s *Store) Path(name string) string {
	return s.fs.Join(s.home.Path, name+"."+s.codec.Extension())
}

// Exists reports whether the named document's file exists.
func (s *Store) Exists(name string) bool {
	return s.fs.Exists(s.Path(name))
}

// RetrieveOrCreate ensures the named document's file exists, creating an
// empty one if needed, and returns its path.
func (s *Store) RetrieveOrCreate(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if err := config.EnsureDir(s.fs, s.home.Path); err != nil {
		return "", err
	}

	path := s.Path(name)
	if s.fs.Exists(path) {
		return path, nil
	}

	s.log.Debugf("creating empty document %s", path)
	if err := s.fs.WriteFile(path, nil, 0o644); err != nil {
		return "", fmt.Errorf("failed to create %s: %w: %w", path, gerrors.ErrFilesystem, err)
	}
	return path, nil
}

// Read parses the document stored at path.
func (s *Store) Read(path string) (Document, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w: %w", path, gerrors.ErrFilesystem, err)
	}

	doc, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %w", path, gerrors.ErrParse, err)
	}
	s.log.Debugf("read %d keys from %s", len(doc), path)
	return doc, nil
}

// Write replaces the file at path with doc. The data goes to a sibling
// temp file first and is renamed over path.
func (s *Store) Write(path string, doc Document) error {
	if doc == nil {
		doc = Document{}
	}
	data, err := s.codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := s.fs.MkdirAll(s.fs.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w: %w", path, gerrors.ErrFilesystem, err)
	}

	tmp := path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", path, gerrors.ErrFilesystem, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w: %w", path, gerrors.ErrFilesystem, err)
	}

	s.log.Debugf("wrote %d keys to %s", len(doc), path)
	return nil
}

// validateName rejects names that would escape the config home.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty: %w", gerrors.ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("document name cannot contain path separators: %q: %w", name, gerrors.ErrInvalidName)
	}
	return nil
}
