package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/quantmind-br/resourcelist-go/internal/config"
	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/generator"
	"github.com/quantmind-br/resourcelist-go/internal/registry"
	"github.com/quantmind-br/resourcelist-go/internal/state"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
)

// ListGenerator produces the manifest of one list
type ListGenerator interface {
	Generate(ctx context.Context, cfg domain.ListConfiguration, sourceRoot string) (*domain.GenerationResult, error)
}

// Orchestrator resolves registered lists and generates their manifests
type Orchestrator struct {
	config    *config.Config
	registry  *registry.Registry
	generator ListGenerator
	resolver  domain.SourceRootResolver
	state     *state.Manager
	logger    *utils.Logger
	progress  io.Writer
	project   string
	now       func() time.Time
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	domain.CommonOptions
	Config   *config.Config
	Registry *registry.Registry
	Resolver domain.SourceRootResolver
	Project  string

	// Optional collaborators; nil values are built from Config
	Generator ListGenerator
	State     *state.Manager
	Logger    *utils.Logger
	Fs        afero.Fs

	// Progress receives a progress bar for multi-list runs; nil disables it
	Progress io.Writer
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config

	// Validate config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if opts.Resolver == nil {
		return nil, fmt.Errorf("source root resolver is required")
	}

	dryRun := opts.DryRun || cfg.Generation.DryRun

	logger := opts.Logger
	if logger == nil {
		logLevel := "info"
		logFormat := utils.FormatPretty
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		if opts.Verbose {
			logLevel = "debug"
		}

		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: opts.Verbose,
		})
	}
	if opts.Project != "" {
		logger = logger.WithProject(opts.Project)
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	gen := opts.Generator
	if gen == nil {
		gen = generator.New(generator.Options{
			Fs:      fs,
			Project: opts.Project,
			DryRun:  dryRun,
			Logger:  logger,
		})
	}

	st := opts.State
	if st == nil {
		st = state.NewManager(state.ManagerOptions{
			Fs:       fs,
			BaseDir:  opts.Registry.BuildDir(),
			Project:  opts.Project,
			Logger:   logger,
			Disabled: !cfg.State.Enabled || dryRun,
		})
	}

	return &Orchestrator{
		config:    cfg,
		registry:  opts.Registry,
		generator: gen,
		resolver:  opts.Resolver,
		state:     st,
		logger:    logger,
		progress:  opts.Progress,
		project:   opts.Project,
		now:       time.Now,
	}, nil
}

// ListResult represents the outcome of generating one list
type ListResult struct {
	List       string
	Task       string
	SourceRoot string
	Result     *domain.GenerationResult
	Error      error
	Duration   time.Duration
}

// Report summarizes one run
type Report struct {
	Results  []ListResult
	Duration time.Duration
}

// Changed returns how many manifests were (or in dry-run would be) rewritten
func (r *Report) Changed() int {
	n := 0
	for _, res := range r.Results {
		if res.Error == nil && res.Result != nil && res.Result.Changed {
			n++
		}
	}
	return n
}

// Failed returns how many lists failed
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Error != nil {
			n++
		}
	}
	return n
}

// Run generates the named lists, or every registered list when no names are
// given. A failing list does not stop the others; all failures are returned
// joined after the run. Configuration errors are reported before anything is
// generated.
func (o *Orchestrator) Run(ctx context.Context, names ...string) (*Report, error) {
	startTime := o.now()

	lists, err := o.registry.Select(names...)
	if err != nil {
		return nil, err
	}

	var configErrs []error
	for _, cfg := range lists {
		if err := cfg.Validate(); err != nil {
			configErrs = append(configErrs, err)
		}
	}
	if err := o.registry.CheckManifests(o.project); err != nil {
		configErrs = append(configErrs, err)
	}
	if len(configErrs) > 0 {
		return nil, errors.Join(configErrs...)
	}

	workers := o.config.Generation.Workers
	if workers <= 0 {
		workers = config.DefaultWorkers
	}

	o.logger.Info().
		Int("lists", len(lists)).
		Int("workers", workers).
		Msg("Starting resource list generation")

	o.loadState(ctx)

	var bar *progressbar.ProgressBar
	if o.progress != nil && len(lists) > 1 {
		bar = utils.NewProgressBarTo(o.progress, len(lists), utils.DescGenerating)
	}

	type listWithIndex struct {
		cfg   domain.ListConfiguration
		index int
	}

	items := make([]listWithIndex, len(lists))
	for i, cfg := range lists {
		items[i] = listWithIndex{cfg: cfg.Clone(), index: i}
	}

	results := make([]ListResult, len(lists))
	for i, item := range items {
		results[i] = ListResult{List: item.cfg.Name, Task: item.cfg.TaskName()}
	}
	var resultsMu sync.Mutex

	failures := utils.CollectErrors(utils.ParallelForEach(ctx, items, workers, func(ctx context.Context, item listWithIndex) error {
		res := o.generate(ctx, item.cfg)

		resultsMu.Lock()
		results[item.index] = res
		resultsMu.Unlock()

		if bar != nil {
			_ = bar.Add(1)
		}
		return res.Error
	}))

	if bar != nil {
		_ = bar.Finish()
	}

	report := &Report{Results: results}

	if ctx.Err() != nil {
		o.logger.Warn().Msg("Generation cancelled")
		report.Duration = o.now().Sub(startTime)
		return report, ctx.Err()
	}

	o.recordState(ctx, results)

	report.Duration = o.now().Sub(startTime)
	o.logger.Info().
		Dur("total_duration", report.Duration).
		Int("total", len(results)).
		Int("changed", report.Changed()).
		Int("failed", report.Failed()).
		Msg("Resource list generation completed")

	if len(failures) > 0 {
		return report, fmt.Errorf("%d/%d lists failed: %w", len(failures), len(results), errors.Join(failures...))
	}
	return report, nil
}

func (o *Orchestrator) generate(ctx context.Context, cfg domain.ListConfiguration) ListResult {
	start := o.now()
	res := ListResult{
		List: cfg.Name,
		Task: cfg.TaskName(),
	}

	logger := o.logger.WithList(cfg.Name).WithTask(res.Task)

	root, err := o.resolver.Resolve(cfg.SourceSet)
	if err != nil {
		res.Error = domain.NewListError(cfg.Name, err)
		res.Duration = o.now().Sub(start)
		return res
	}
	res.SourceRoot = root

	logger.Debug().
		Str("source_root", root).
		Msg("Processing list")

	res.Result, res.Error = o.generator.Generate(ctx, cfg, root)
	res.Duration = o.now().Sub(start)

	if res.Error != nil {
		logger.Error().
			Err(res.Error).
			Dur("duration", res.Duration).
			Msg("List generation failed")
	}
	return res
}

func (o *Orchestrator) loadState(ctx context.Context) {
	if o.state.IsDisabled() {
		return
	}
	err := o.state.Load(ctx)
	switch {
	case err == nil, errors.Is(err, state.ErrStateNotFound):
	case errors.Is(err, state.ErrVersionMismatch), errors.Is(err, state.ErrStateCorrupted):
		o.logger.Warn().Err(err).Msg("Rebuilding generation state")
	default:
		o.logger.Warn().Err(err).Msg("Failed to load generation state")
	}
}

// recordState stores successful results, forgets lists that are no longer
// defined and saves the state file. State failures are logged, not returned.
func (o *Orchestrator) recordState(ctx context.Context, results []ListResult) {
	if o.state.IsDisabled() {
		return
	}

	for _, name := range o.registry.Names() {
		o.state.MarkSeen(name)
	}
	for _, res := range results {
		if res.Error != nil || res.Result == nil {
			continue
		}
		generatedAt := o.now()
		if prev, ok := o.state.Get(res.List); ok && !res.Result.Changed && prev.Digest == res.Result.Digest {
			// the manifest on disk was left alone
			generatedAt = prev.GeneratedAt
		}
		o.state.Update(res.List, state.ListState{
			Task:        res.Task,
			OutputPath:  res.Result.OutputPath,
			Digest:      res.Result.Digest,
			Entries:     res.Result.Entries,
			Changed:     res.Result.Changed,
			GeneratedAt: generatedAt,
		})
	}

	if pruned := o.state.Prune(); len(pruned) > 0 {
		o.logger.Info().Strs("lists", pruned).Msg("Removed undefined lists from state")
	}

	if err := o.state.Save(ctx); err != nil {
		o.logger.Warn().Err(err).Msg("Failed to save state")
	}
}

// State returns the state manager used by the orchestrator
func (o *Orchestrator) State() *state.Manager {
	return o.state
}
