package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/resourcelist-go/internal/app"
	"github.com/quantmind-br/resourcelist-go/internal/config"
	"github.com/quantmind-br/resourcelist-go/internal/project"
	"github.com/quantmind-br/resourcelist-go/internal/registry"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
	"github.com/spf13/cobra"
)

// loadedProject is a project file registered into a fresh registry
type loadedProject struct {
	dir      string
	buildDir string
	file     *project.File
	registry *registry.Registry
}

func (p *loadedProject) name() string {
	return p.file.Project
}

// resolver maps source sets to directories, honouring source_roots
func (p *loadedProject) resolver() *app.SourceRoots {
	overrides := make(map[string]string, len(p.file.SourceRoots))
	for set := range p.file.SourceRoots {
		if dir, ok := p.file.SourceRoot(set); ok {
			overrides[set] = dir
		}
	}
	return app.NewSourceRoots(p.dir, overrides)
}

// projectDirs resolves the project and build directories from flags and config
func projectDirs(cmd *cobra.Command, cfg *config.Config) (string, string, error) {
	dirFlag, _ := cmd.Flags().GetString("project-dir")
	dir, err := filepath.Abs(utils.ExpandPath(dirFlag))
	if err != nil {
		return "", "", fmt.Errorf("resolve project directory: %w", err)
	}
	return dir, utils.ResolvePath(dir, cfg.Build.Directory), nil
}

// loadProject reads the project file and registers its lists. A missing
// project file is accepted when --cartridge supplies the lists.
func loadProject(cmd *cobra.Command, cfg *config.Config) (*loadedProject, error) {
	dir, buildDir, err := projectDirs(cmd, cfg)
	if err != nil {
		return nil, err
	}
	cartridge, _ := cmd.Flags().GetBool("cartridge")

	path := utils.ResolvePath(dir, cfg.Project.File)
	file, err := project.NewLoader(nil).Load(path)
	switch {
	case err == nil:
	case errors.Is(err, project.ErrFileNotFound) && cartridge:
		log.Debug().Str("path", path).Msg("No project file, using cartridge presets only")
		file = &project.File{Project: filepath.Base(dir), Dir: dir}
	default:
		return nil, fmt.Errorf("failed to load project file: %w", err)
	}
	if cartridge {
		file.Cartridge = true
	}

	reg := registry.New(buildDir)
	if err := file.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register lists: %w", err)
	}

	return &loadedProject{
		dir:      dir,
		buildDir: buildDir,
		file:     file,
		registry: reg,
	}, nil
}
