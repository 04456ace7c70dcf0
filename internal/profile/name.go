// Package profile manages the settings document and the named profile
// documents kept in the config home.
package profile

import (
	"fmt"
	"strings"

	gerrors "github.com/wwwyo/goto-cd/internal/errors"
)

const (
	// ReservedPrefix marks internal documents such as the settings file.
	ReservedPrefix = "_"
	// DefaultName is the profile that always exists.
	DefaultName = "default"
	// SettingsDocument is the internal document holding the profile list.
	SettingsDocument = "_setting"
)

// Name is a profile name that is safe to expose to users. It never starts
// with ReservedPrefix, so it cannot address an internal document.
type Name string

// ParseName validates s as a public profile name.
func ParseName(s string) (Name, error) {
	if s == "" {
		return "", fmt.Errorf("profile name cannot be empty: %w", gerrors.ErrInvalidName)
	}
	if IsReserved(s) {
		return "", fmt.Errorf("%s - profile names cannot start with %q: %w", s, ReservedPrefix, gerrors.ErrInvalidName)
	}
	if strings.ContainsAny(s, `/\`) {
		return "", fmt.Errorf("%s - profile names cannot contain path separators: %w", s, gerrors.ErrInvalidName)
	}
	return Name(s), nil
}

// IsReserved reports whether s addresses an internal document.
func IsReserved(s string) bool {
	return strings.HasPrefix(s, ReservedPrefix)
}

func (n Name) String() string {
	return string(n)
}

// IsDefault reports whether n is the permanent default profile.
func (n Name) IsDefault() bool {
	return n == DefaultName
}
