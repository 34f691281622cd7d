package pattern

import (
	"path"
	"strings"
)

// Matcher applies a list's include patterns, exclude patterns and extension
// filter to source-relative paths.
type Matcher struct {
	includes  []*Glob
	excludes  []*Glob
	extension string
}

// NewMatcher compiles all patterns. The extension is compared without a
// leading dot; an empty extension disables the filter.
func NewMatcher(includes, excludes []string, extension string) (*Matcher, error) {
	m := &Matcher{extension: strings.TrimPrefix(extension, ".")}

	for _, p := range includes {
		g, err := Compile(p)
		if err != nil {
			return nil, err
		}
		m.includes = append(m.includes, g)
	}
	for _, p := range excludes {
		g, err := Compile(p)
		if err != nil {
			return nil, err
		}
		m.excludes = append(m.excludes, g)
	}

	return m, nil
}

// Match reports whether relPath belongs in the manifest. Excludes always win
// over includes.
func (m *Matcher) Match(relPath string) bool {
	if m.extension != "" && Extension(relPath) != m.extension {
		return false
	}
	if !matchAny(m.includes, relPath) {
		return false
	}
	return !matchAny(m.excludes, relPath)
}

// Extension returns the case-preserved extension of the last path segment
// without its dot
func Extension(relPath string) string {
	return strings.TrimPrefix(path.Ext(relPath), ".")
}

func matchAny(globs []*Glob, relPath string) bool {
	for _, g := range globs {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}
