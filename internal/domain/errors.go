package domain

import (
	"errors"
	"fmt"
)

// Configuration errors
var (
	// ErrEmptyName indicates a list was defined without a name
	ErrEmptyName = errors.New("list name cannot be empty")

	// ErrDuplicateName indicates a list name is already registered
	ErrDuplicateName = errors.New("list already defined")

	// ErrListNotFound indicates no list is registered under the requested name
	ErrListNotFound = errors.New("list not found")

	// ErrNoPatterns indicates a list has no include patterns
	ErrNoPatterns = errors.New("at least one include pattern is required")

	// ErrInvalidPattern indicates a glob pattern could not be compiled
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrInvalidExtension indicates the extension filter is not a plain token
	ErrInvalidExtension = errors.New("file extension must be a single token without wildcards")

	// ErrInvalidFileName indicates the manifest file name lacks the .resource extension
	ErrInvalidFileName = errors.New("manifest file name must end with " + ManifestExtension)

	// ErrInvalidEntryStyle indicates an unknown entry style
	ErrInvalidEntryStyle = errors.New("entry style must be path or qualified")

	// ErrManifestConflict indicates two lists resolve to the same manifest file
	ErrManifestConflict = errors.New("manifest path used by more than one list")
)

// Runtime errors
var (
	// ErrSourceRootNotFound indicates the source root is missing or not a directory.
	// The generator treats it as an empty source tree.
	ErrSourceRootNotFound = errors.New("source root not found")

	// ErrWriteFailed indicates the manifest could not be written
	ErrWriteFailed = errors.New("write failed")
)

// ListError attaches the list name to a configuration error
type ListError struct {
	List string
	Err  error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("list %q: %v", e.List, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// NewListError creates a new ListError
func NewListError(list string, err error) *ListError {
	return &ListError{
		List: list,
		Err:  err,
	}
}

// PatternError reports a glob pattern that failed to compile
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns both the sentinel and the underlying compiler error
func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// NewPatternError creates a new PatternError
func NewPatternError(pattern string, err error) *PatternError {
	return &PatternError{
		Pattern: pattern,
		Err:     err,
	}
}

// WriteError represents a failure to write a manifest file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns both ErrWriteFailed and the underlying filesystem error
func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}

// IsConfigurationError reports whether err stems from an invalid list definition
func IsConfigurationError(err error) bool {
	for _, target := range []error{
		ErrEmptyName, ErrDuplicateName, ErrListNotFound, ErrNoPatterns,
		ErrInvalidPattern, ErrInvalidExtension, ErrInvalidFileName, ErrInvalidEntryStyle,
		ErrManifestConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
