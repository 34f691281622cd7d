package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/registry"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
)

// File represents a complete project file
type File struct {
	Project     string            `yaml:"project" json:"project"`
	Cartridge   bool              `yaml:"cartridge,omitempty" json:"cartridge,omitempty"`
	SourceRoots map[string]string `yaml:"source_roots,omitempty" json:"source_roots,omitempty"`
	Lists       []List            `yaml:"lists" json:"lists"`

	// Dir is the directory holding the file; relative paths resolve against it
	Dir string `yaml:"-" json:"-"`
}

// List is one list definition. Empty fields keep the registry defaults.
type List struct {
	Name          string   `yaml:"name" json:"name"`
	Include       []string `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude       []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	FileExtension string   `yaml:"file_extension,omitempty" json:"file_extension,omitempty"`
	FileName      string   `yaml:"file_name,omitempty" json:"file_name,omitempty"`
	SourceSet     string   `yaml:"source_set,omitempty" json:"source_set,omitempty"`
	OutputDir     string   `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	EntryStyle    string   `yaml:"entry_style,omitempty" json:"entry_style,omitempty"`
}

// Validate validates the project file
func (f *File) Validate() error {
	if len(f.Lists) == 0 && !f.Cartridge {
		return ErrNoLists
	}
	for i, l := range f.Lists {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("list %d: %w", i, ErrEmptyListName)
		}
		if !domain.EntryStyle(l.EntryStyle).IsValid() {
			return domain.NewListError(l.Name, domain.ErrInvalidEntryStyle)
		}
	}
	return nil
}

// Register defines every list of the file in reg, then the cartridge presets
// when enabled. Lists named like a preset replace it.
func (f *File) Register(reg *registry.Registry) error {
	for _, l := range f.Lists {
		cfg, err := reg.Define(l.Name)
		if err != nil {
			return err
		}
		l.apply(cfg, f.Dir)
	}

	if f.Cartridge {
		if err := registry.ApplyCartridgeDefaults(reg); err != nil {
			return fmt.Errorf("apply cartridge presets: %w", err)
		}
	}
	return nil
}

// SourceRoot returns the configured directory for a source set, resolved
// against the file's directory.
func (f *File) SourceRoot(sourceSet string) (string, bool) {
	dir, ok := f.SourceRoots[sourceSet]
	if !ok || dir == "" {
		return "", false
	}
	return utils.ResolvePath(f.Dir, filepath.FromSlash(dir)), true
}

func (l List) apply(cfg *domain.ListConfiguration, baseDir string) {
	cfg.Include(l.Include...).Exclude(l.Exclude...)
	cfg.FileExtension = l.FileExtension
	cfg.EntryStyle = domain.EntryStyle(l.EntryStyle)

	if l.FileName != "" {
		cfg.FileName = l.FileName
	}
	if l.SourceSet != "" {
		cfg.SourceSet = l.SourceSet
	}
	if l.OutputDir != "" {
		cfg.OutputDir = utils.ResolvePath(baseDir, filepath.FromSlash(l.OutputDir))
	}
}
