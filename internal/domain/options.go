package domain

// CommonOptions contains shared options for generation and orchestration.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
}
