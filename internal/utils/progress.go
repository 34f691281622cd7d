package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescGenerating = "Generating"
	DescScanning   = "Scanning"
)

// NewProgressBarTo creates a consistently styled progress bar rendering to
// w. A nil writer keeps the progressbar default (stdout).
//
// Parameters:
//   - total: Total number of items. Use -1 for unknown totals (spinner mode).
//   - description: Text shown before the bar (e.g., DescGenerating).
//
// Example:
//
//	bar := utils.NewProgressBarTo(os.Stderr, len(lists), utils.DescGenerating)
//	defer bar.Finish()
//
//	for _, list := range lists {
//	    // Generate list
//	    bar.Add(1)
//	}
func NewProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	// Build common options
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}
	if w != nil {
		opts = append(opts, progressbar.OptionSetWriter(w))
	}

	// Add options based on whether total is known
	if total < 0 {
		// Unknown total: use spinner mode
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
