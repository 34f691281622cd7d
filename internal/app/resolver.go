package app

import (
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
)

// SourceRoots resolves source-set selectors to directories. Overrides win;
// every other selector follows the <projectDir>/src/<sourceSet>/java layout.
type SourceRoots struct {
	projectDir string
	overrides  map[string]string
}

// NewSourceRoots creates a resolver for projectDir. Relative overrides are
// taken relative to projectDir.
func NewSourceRoots(projectDir string, overrides map[string]string) *SourceRoots {
	return &SourceRoots{
		projectDir: projectDir,
		overrides:  overrides,
	}
}

// DefaultSourceRoot returns the conventional directory of a source set
func DefaultSourceRoot(projectDir, sourceSet string) string {
	if sourceSet == "" {
		sourceSet = domain.DefaultSourceSet
	}
	return filepath.Join(projectDir, "src", sourceSet, "java")
}

// Resolve returns the absolute source root of sourceSet
func (r *SourceRoots) Resolve(sourceSet string) (string, error) {
	if sourceSet == "" {
		sourceSet = domain.DefaultSourceSet
	}

	dir := DefaultSourceRoot(r.projectDir, sourceSet)
	if override, ok := r.overrides[sourceSet]; ok && override != "" {
		dir = utils.ResolvePath(r.projectDir, filepath.FromSlash(override))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve source set %q: %w", sourceSet, err)
	}
	return abs, nil
}
