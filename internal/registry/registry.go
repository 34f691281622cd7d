// Package registry holds the named list configurations of one project.
//
// A Registry is populated during configuration (phase 1) and read by the
// orchestrator during generation (phase 2). It performs no I/O.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"sync"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
)

// Registry is an insertion-ordered set of list configurations keyed by name
type Registry struct {
	buildDir string

	mu    sync.RWMutex
	lists map[string]*domain.ListConfiguration
	order []string
}

// New creates an empty registry whose default output directories live under buildDir
func New(buildDir string) *Registry {
	return &Registry{
		buildDir: buildDir,
		lists:    make(map[string]*domain.ListConfiguration),
	}
}

// BuildDir returns the build directory used for default output locations
func (r *Registry) BuildDir() string {
	return r.buildDir
}

// Define registers a new list with default settings and returns it for
// further configuration.
func (r *Registry) Define(name string) (*domain.ListConfiguration, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.lists[name]; exists {
		return nil, domain.NewListError(name, domain.ErrDuplicateName)
	}

	cfg := r.defaults(name)
	r.lists[name] = cfg
	r.order = append(r.order, name)
	return cfg, nil
}

// Get returns the list registered under name
func (r *Registry) Get(name string) (*domain.ListConfiguration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.lists[name]
	if !ok {
		return nil, domain.NewListError(name, domain.ErrListNotFound)
	}
	return cfg, nil
}

// Has reports whether a list named name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.lists[name]
	return ok
}

// All yields every configuration in definition order. The sequence is a
// snapshot taken when iteration starts and can be ranged over repeatedly.
func (r *Registry) All() iter.Seq[*domain.ListConfiguration] {
	return func(yield func(*domain.ListConfiguration) bool) {
		r.mu.RLock()
		snapshot := make([]*domain.ListConfiguration, 0, len(r.order))
		for _, name := range r.order {
			snapshot = append(snapshot, r.lists[name])
		}
		r.mu.RUnlock()

		for _, cfg := range snapshot {
			if !yield(cfg) {
				return
			}
		}
	}
}

// Names returns the registered names in definition order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Len returns the number of registered lists
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Select resolves names to configurations, preserving the requested order.
// No names selects every list.
func (r *Registry) Select(names ...string) ([]*domain.ListConfiguration, error) {
	if len(names) == 0 {
		var all []*domain.ListConfiguration
		for cfg := range r.All() {
			all = append(all, cfg)
		}
		return all, nil
	}

	selected := make([]*domain.ListConfiguration, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		cfg, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, cfg)
	}
	return selected, nil
}

// Validate checks every registered list and reports the first failure
func (r *Registry) Validate() error {
	for cfg := range r.All() {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate registry: %w", err)
		}
	}
	return nil
}

// CheckManifests reports every list whose manifest path, expanded for
// project, is already claimed by an earlier list. Lists must own distinct
// files because they are generated concurrently.
func (r *Registry) CheckManifests(project string) error {
	owners := make(map[string]string, r.Len())
	var conflicts []error
	for cfg := range r.All() {
		path := filepath.Clean(cfg.ManifestPath(project))
		if owner, taken := owners[path]; taken {
			conflicts = append(conflicts, domain.NewListError(cfg.Name,
				fmt.Errorf("%w: %s is also written by %q", domain.ErrManifestConflict, path, owner)))
			continue
		}
		owners[path] = cfg.Name
	}
	return errors.Join(conflicts...)
}

func (r *Registry) defaults(name string) *domain.ListConfiguration {
	dir := domain.DirName(name)
	return &domain.ListConfiguration{
		Name:      name,
		SourceSet: domain.DefaultSourceSet,
		FileName:  dir + domain.ManifestExtension,
		OutputDir: filepath.Join(r.buildDir, filepath.FromSlash(domain.OutputPath), dir),
	}
}
