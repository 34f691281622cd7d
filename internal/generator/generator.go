package generator

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/pattern"
	"github.com/quantmind-br/resourcelist-go/internal/scanner"
	"github.com/quantmind-br/resourcelist-go/internal/utils"
)

// Ensure Generator implements domain.Generator
var _ domain.Generator = (*Generator)(nil)

// Generator writes one manifest per call. It keeps no state between calls
// and may be shared by concurrent callers.
type Generator struct {
	fs      afero.Fs
	scanner *scanner.Scanner
	project string
	dryRun  bool
	logger  *utils.Logger
	tracer  trace.Tracer
	metrics *Metrics
}

// Options contains options for the generator
type Options struct {
	// Fs is the filesystem scanned and written. Defaults to the OS filesystem.
	Fs afero.Fs
	// Project replaces {project} in manifest file names
	Project string
	// DryRun computes the result without writing the manifest
	DryRun bool
	Logger *utils.Logger
	// Tracer and Meter default to the global OpenTelemetry providers
	Tracer trace.Tracer
	Meter  metric.Meter
}

// New creates a new generator
func New(opts Options) *Generator {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Tracer == nil {
		opts.Tracer = defaultTracer()
	}
	if opts.Meter == nil {
		opts.Meter = defaultMeter()
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	return &Generator{
		fs:      opts.Fs,
		scanner: scanner.New(scanner.Options{Fs: opts.Fs, Logger: opts.Logger}),
		project: opts.Project,
		dryRun:  opts.DryRun,
		logger:  opts.Logger,
		tracer:  opts.Tracer,
		metrics: initMetrics(opts.Meter),
	}
}

// Generate scans sourceRoot, renders the manifest for cfg and writes it when
// its content differs from the file on disk.
func (g *Generator) Generate(ctx context.Context, cfg domain.ListConfiguration, sourceRoot string) (*domain.GenerationResult, error) {
	ctx, span := g.tracer.Start(ctx, "resourcelist.generate", trace.WithAttributes(
		attribute.String("resourcelist.list", cfg.Name),
		attribute.String("resourcelist.source_root", sourceRoot),
	))
	defer span.End()

	res, err := g.generate(cfg, sourceRoot)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	attrs := metric.WithAttributes(attribute.String("list", cfg.Name))
	g.metrics.Generations.Add(ctx, 1, attrs)
	g.metrics.Entries.Record(ctx, int64(res.Entries), attrs)
	if res.Changed {
		g.metrics.Rewrites.Add(ctx, 1, attrs)
	}
	span.SetAttributes(
		attribute.Int("resourcelist.entries", res.Entries),
		attribute.Bool("resourcelist.changed", res.Changed),
	)

	return res, nil
}

func (g *Generator) generate(cfg domain.ListConfiguration, sourceRoot string) (*domain.GenerationResult, error) {
	start := time.Now()
	log := g.logger.WithList(cfg.Name)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matcher, err := pattern.NewMatcher(cfg.Includes, cfg.Excludes, cfg.Extension())
	if err != nil {
		return nil, domain.NewListError(cfg.Name, err)
	}

	files, err := g.scanner.Files(sourceRoot)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceRootNotFound) {
			return nil, domain.NewListError(cfg.Name, err)
		}
		log.Info().Str("source_root", sourceRoot).Msg("Source root does not exist, writing empty list")
		files = nil
	}

	entries := make([]string, 0, len(files))
	for _, rel := range files {
		if !matcher.Match(rel) {
			continue
		}
		entry := Entry(rel, cfg)
		log.Debug().Str("entry", entry).Msg("Entry will be added to list")
		entries = append(entries, entry)
	}

	content := Render(entries)
	outputPath := filepath.Clean(cfg.ManifestPath(g.project))
	res := &domain.GenerationResult{
		OutputPath: outputPath,
		Entries:    countLines(content),
		Digest:     Digest(content),
	}

	current, readErr := afero.ReadFile(g.fs, outputPath)
	if readErr == nil && bytes.Equal(current, content) {
		log.Info().
			Str("output", outputPath).
			Int("entries", res.Entries).
			Dur("duration", time.Since(start)).
			Msg("Resource list is up to date")
		return res, nil
	}

	res.Changed = true
	if g.dryRun {
		log.Info().Str("output", outputPath).Int("entries", res.Entries).Msg("Resource list would change (dry run)")
		return res, nil
	}

	if err := g.write(outputPath, content); err != nil {
		return nil, domain.NewListError(cfg.Name, err)
	}

	log.Info().
		Str("output", outputPath).
		Int("entries", res.Entries).
		Dur("duration", time.Since(start)).
		Msg("Resource list written")
	return res, nil
}

func (g *Generator) write(path string, content []byte) error {
	if err := g.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return domain.NewWriteError(path, err)
	}
	if err := afero.WriteFile(g.fs, path, content, 0644); err != nil {
		return domain.NewWriteError(path, err)
	}
	return nil
}
