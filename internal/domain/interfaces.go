package domain

import "context"

// Generator produces one manifest from one list configuration and one
// resolved source root. The context carries tracing only; generation is
// synchronous and does not observe cancellation.
type Generator interface {
	Generate(ctx context.Context, cfg ListConfiguration, sourceRoot string) (*GenerationResult, error)
}

// SourceRootResolver maps a source-set selector to an absolute directory
type SourceRootResolver interface {
	Resolve(sourceSet string) (string, error)
}
