package domain

import (
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ManifestExtension is the fixed file extension of every generated manifest
const ManifestExtension = ".resource"

// Conventions shared by the registry and the orchestrator
const (
	// DefaultSourceSet is the source-root selector used when none is configured
	DefaultSourceSet = "main"

	// OutputPath is the build-relative directory holding all generated lists
	OutputPath = "generated/resourcelist"

	// TaskPrefix prefixes every list's task name
	TaskPrefix = "resourceList"
)

// Placeholders accepted in ListConfiguration.FileName
const (
	PlaceholderProject = "{project}"
	PlaceholderName    = "{name}"
)

// EntryStyle controls how a matched path is rendered as a manifest line
type EntryStyle string

const (
	// EntryStylePath renders the forward-slash path relative to the source root
	EntryStylePath EntryStyle = "path"

	// EntryStyleQualified drops the extension and joins segments with dots
	EntryStyleQualified EntryStyle = "qualified"
)

// IsValid reports whether s is a known entry style. The empty style is valid
// and means EntryStylePath.
func (s EntryStyle) IsValid() bool {
	switch s {
	case "", EntryStylePath, EntryStyleQualified:
		return true
	}
	return false
}

// ListConfiguration describes one manifest to produce
type ListConfiguration struct {
	Name          string     `yaml:"name" json:"name"`
	Includes      []string   `yaml:"include,omitempty" json:"include,omitempty"`
	Excludes      []string   `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	FileExtension string     `yaml:"file_extension,omitempty" json:"file_extension,omitempty"`
	SourceSet     string     `yaml:"source_set,omitempty" json:"source_set,omitempty"`
	FileName      string     `yaml:"file_name,omitempty" json:"file_name,omitempty"`
	OutputDir     string     `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	EntryStyle    EntryStyle `yaml:"entry_style,omitempty" json:"entry_style,omitempty"`
}

// Include appends include patterns
func (c *ListConfiguration) Include(patterns ...string) *ListConfiguration {
	c.Includes = append(c.Includes, patterns...)
	return c
}

// Exclude appends exclude patterns
func (c *ListConfiguration) Exclude(patterns ...string) *ListConfiguration {
	c.Excludes = append(c.Excludes, patterns...)
	return c
}

// Clone returns a deep copy, so the generator never shares slices with the registry
func (c ListConfiguration) Clone() ListConfiguration {
	c.Includes = append([]string(nil), c.Includes...)
	c.Excludes = append([]string(nil), c.Excludes...)
	return c
}

// Extension returns the extension filter without a leading dot
func (c ListConfiguration) Extension() string {
	return strings.TrimPrefix(c.FileExtension, ".")
}

// Style returns the effective entry style
func (c ListConfiguration) Style() EntryStyle {
	if c.EntryStyle == "" {
		return EntryStylePath
	}
	return c.EntryStyle
}

// TaskName returns the build task name for this list, e.g. resourceListPipelets.
// Only the first letter is upper-cased; the rest of the name is kept as is.
func (c ListConfiguration) TaskName() string {
	if c.Name == "" {
		return TaskPrefix
	}
	first, size := utf8.DecodeRuneInString(c.Name)
	return TaskPrefix + cases.Upper(language.Und).String(string(first)) + c.Name[size:]
}

// ManifestPath returns the manifest location with placeholders expanded
func (c ListConfiguration) ManifestPath(project string) string {
	name := strings.NewReplacer(
		PlaceholderProject, project,
		PlaceholderName, c.Name,
	).Replace(c.FileName)
	return filepath.Join(c.OutputDir, filepath.FromSlash(name))
}

// OutputDirectory returns the directory that will contain the manifest
func (c ListConfiguration) OutputDirectory(project string) string {
	return filepath.Dir(c.ManifestPath(project))
}

// Validate reports the first configuration problem that would prevent generation
func (c ListConfiguration) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Includes) == 0 {
		return NewListError(c.Name, ErrNoPatterns)
	}
	if ext := c.Extension(); ext != "" && strings.ContainsAny(ext, `*?[]{}/\`) {
		return NewListError(c.Name, ErrInvalidExtension)
	}
	if c.FileName == "" || path.Ext(c.FileName) != ManifestExtension {
		return NewListError(c.Name, ErrInvalidFileName)
	}
	if !c.EntryStyle.IsValid() {
		return NewListError(c.Name, ErrInvalidEntryStyle)
	}
	return nil
}

// DirName returns the name with spaces replaced, for use as a path segment
func DirName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// GenerationResult is the outcome of one generator invocation
type GenerationResult struct {
	OutputPath string `json:"output_path"`
	Changed    bool   `json:"changed"`
	Entries    int    `json:"entries"`
	Digest     string `json:"digest"`
}
