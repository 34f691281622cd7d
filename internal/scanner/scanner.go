// Package scanner enumerates the regular files below a source root.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
)

// Scanner walks a source tree on an afero filesystem
type Scanner struct {
	fs     afero.Fs
	logger *utils.Logger
}

// Options contains options for the scanner
type Options struct {
	Fs     afero.Fs
	Logger *utils.Logger
}

// New creates a new scanner. A nil Fs means the OS filesystem; a nil Logger
// discards output.
func New(opts Options) *Scanner {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}
	return &Scanner{fs: opts.Fs, logger: opts.Logger}
}

// Files returns the forward-slash paths, relative to root, of every regular
// file below root. Symbolic links are followed, but each directory is entered
// at most once per real path, so link loops terminate. Results are in walk
// order; callers sort.
func (s *Scanner) Files(root string) ([]string, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to access source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrSourceRootNotFound, root)
	}

	visited := map[string]struct{}{s.realPath(root): {}}
	var files []string
	err = s.walk(root, "", visited, func(rel string) {
		files = append(files, rel)
	})
	return files, err
}

func (s *Scanner) walk(dir, rel string, visited map[string]struct{}, emit func(string)) error {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		childRel := path.Join(rel, entry.Name())

		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := s.fs.Stat(full)
			if err != nil {
				s.logger.Debug().Err(err).Str("path", childRel).Msg("Skipping unresolvable link")
				continue
			}
			entry = target
		}

		switch {
		case entry.IsDir():
			key := s.realPath(full)
			if _, seen := visited[key]; seen {
				s.logger.Debug().Str("path", childRel).Msg("Skipping already visited directory")
				continue
			}
			visited[key] = struct{}{}
			if err := s.walk(full, childRel, visited, emit); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			emit(childRel)
		}
	}
	return nil
}

// realPath identifies a directory independently of the links used to reach it
func (s *Scanner) realPath(p string) string {
	if _, ok := s.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			p = resolved
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
	}
	return filepath.Clean(p)
}
