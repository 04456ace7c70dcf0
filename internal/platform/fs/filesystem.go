package fs

import (
	"os"
	"path/filepath"
)

// FileSystem provides an abstraction over the file system and process
// environment used by the store. This allows for easy mocking in tests.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Remove(path string) error
	Rename(oldpath, newpath string) error

	// Directory operations
	MkdirAll(path string, perm os.FileMode) error

	// Path operations
	Exists(path string) bool
	IsDir(path string) bool

	// Path utilities
	Abs(path string) (string, error)
	Join(elem ...string) string
	Dir(path string) string

	// Environment
	UserHomeDir() (string, error)
	Getenv(key string) string
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// Compile-time interface check.
var _ FileSystem = (*RealFileSystem)(nil)

// NewFileSystem returns a new RealFileSystem.
func NewFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

func (r *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (r *RealFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (r *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *RealFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (r *RealFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (r *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (r *RealFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

func (r *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (r *RealFileSystem) Getenv(key string) string {
	return os.Getenv(key)
}
