package project

import "errors"

// Sentinel errors for the project package
var (
	// ErrNoLists indicates the project file defines nothing to generate
	ErrNoLists = errors.New("project file must define at least one list or enable cartridge presets")

	// ErrEmptyListName indicates a list is missing the required name field
	ErrEmptyListName = errors.New("list name cannot be empty")

	// ErrInvalidFormat indicates the project file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("project file must be valid YAML or JSON")

	// ErrFileNotFound indicates the project file does not exist
	ErrFileNotFound = errors.New("project file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)
