package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// MockFileSystem implements FileSystem for testing purposes.
type MockFileSystem struct {
	Files   map[string][]byte
	Dirs    map[string]bool
	Env     map[string]string
	HomeDir string
	// Cwd is used to resolve relative paths in Abs.
	Cwd string

	// ReadErrors and WriteErrors inject failures for specific paths.
	ReadErrors  map[string]error
	WriteErrors map[string]error
	// MkdirErr, when set, is returned by every MkdirAll call.
	MkdirErr error
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)

// NewMockFileSystem returns a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:       make(map[string][]byte),
		Dirs:        make(map[string]bool),
		Env:         make(map[string]string),
		HomeDir:     "/home/test",
		Cwd:         "/home/test",
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	path = m.normalizePath(path)
	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	if data, ok := m.Files[path]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) WriteFile(path string, data []byte, _ os.FileMode) error {
	path = m.normalizePath(path)
	if err, ok := m.WriteErrors[path]; ok {
		return err
	}
	if !m.Dirs[filepath.Dir(path)] {
		return os.ErrNotExist
	}
	m.Files[path] = data
	return nil
}

func (m *MockFileSystem) Remove(path string) error {
	path = m.normalizePath(path)
	if _, ok := m.Files[path]; !ok && !m.Dirs[path] {
		return os.ErrNotExist
	}
	delete(m.Files, path)
	delete(m.Dirs, path)
	return nil
}

func (m *MockFileSystem) Rename(oldpath, newpath string) error {
	oldpath = m.normalizePath(oldpath)
	newpath = m.normalizePath(newpath)

	if data, ok := m.Files[oldpath]; ok {
		m.Files[newpath] = data
		delete(m.Files, oldpath)
		return nil
	}
	if m.Dirs[oldpath] {
		m.Dirs[newpath] = true
		delete(m.Dirs, oldpath)
		return nil
	}
	return os.ErrNotExist
}

func (m *MockFileSystem) MkdirAll(path string, _ os.FileMode) error {
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	path = m.normalizePath(path)
	m.Dirs[path] = true

	// Also create parent directories
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		parent := strings.Join(parts[:i+1], "/")
		if parent != "" {
			m.Dirs[parent] = true
		}
	}
	m.Dirs["/"] = true
	return nil
}

func (m *MockFileSystem) Exists(path string) bool {
	path = m.normalizePath(path)
	if _, ok := m.Files[path]; ok {
		return true
	}
	return m.Dirs[path]
}

func (m *MockFileSystem) IsDir(path string) bool {
	return m.Dirs[m.normalizePath(path)]
}

func (m *MockFileSystem) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(m.Cwd, path), nil
}

func (m *MockFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (m *MockFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, nil
}

func (m *MockFileSystem) Getenv(key string) string {
	return m.Env[key]
}

func (m *MockFileSystem) normalizePath(path string) string {
	// Replace ~ with home directory
	if strings.HasPrefix(path, "~") {
		path = m.HomeDir + path[1:]
	}
	return filepath.Clean(path)
}
