package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader loads and validates project files
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a new project file loader. A nil fs reads from the OS.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// Load reads and parses a project file from the given path
func (l *Loader) Load(path string) (*File, error) {
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	return l.parse(data, filepath.Ext(path), dir)
}

func (l *Loader) parse(data []byte, ext, dir string) (*File, error) {
	ext = strings.ToLower(ext)

	var f File
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	f.Dir = dir
	l.applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

func (l *Loader) applyDefaults(f *File) {
	if f.Project == "" && f.Dir != "" {
		f.Project = filepath.Base(f.Dir)
	}
}
