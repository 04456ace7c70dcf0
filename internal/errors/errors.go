package errors

import "errors"

// Naming errors indicate a rejected profile name or teleport alias.
var (
	// ErrInvalidName indicates an empty name or one using the reserved prefix.
	ErrInvalidName = errors.New("invalid name")

	// ErrAlreadyExists indicates a profile with the same name is already registered.
	ErrAlreadyExists = errors.New("already exists")
)

// Lookup errors indicate a missing profile, teleport, or target.
var (
	// ErrNotFound indicates the profile or teleport does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTargetNotFound indicates a teleport target is not an existing directory.
	ErrTargetNotFound = errors.New("target directory not found")
)

// Storage errors indicate a problem with a document on disk.
var (
	// ErrParse indicates a document read from disk is malformed.
	ErrParse = errors.New("malformed document")

	// ErrFilesystem indicates an I/O failure creating, reading or writing a document.
	ErrFilesystem = errors.New("filesystem error")
)

