// Package controller provides output adapters for displaying restructuring progress.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "modlift.dev/pkg/modlift/internal/model"
)

// UI defines the interface for displaying restructuring progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start prepares the UI for a run over the given number of candidates.
	Start(ctx context.Context, total int) error

	// Close finalizes the UI. It must be safe to call after a failed run.
	Close(ctx context.Context)

	// DisplaySkip reports a candidate whose module file already exists.
	DisplaySkip(ctx context.Context, modulePath m.Path)

	// DisplayLifted reports the resolved module directory of a lifted candidate.
	DisplayLifted(ctx context.Context, moduleDir m.Path)

	// DisplayPlan renders the candidate list without mutating anything.
	DisplayPlan(ctx context.Context, candidates []m.Candidate) error

	// DisplaySummary renders the end-of-run counts.
	DisplaySummary(ctx context.Context, report m.Report)
}

// NewUI selects the UI implementation for the given command. Interactive
// terminals get the Bubble Tea progress view; everything else (pipes, CI,
// tests) gets plain line output.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to an interactive terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
