package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "modlift.dev/pkg/modlift/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the run size. Empty runs stay silent.
func (s *SimpleUI) Start(ctx context.Context, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if total > 0 {
		s.printf("Found %d candidate file(s)\n", total)
	}

	return nil
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplaySkip prints a skip notice naming the already-existing module file.
func (s *SimpleUI) DisplaySkip(ctx context.Context, modulePath m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[SKIP] already exists: %s\n", modulePath)
}

// DisplayLifted prints the resolved module directory.
func (s *SimpleUI) DisplayLifted(ctx context.Context, moduleDir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", moduleDir)
}

// DisplayPlan renders the candidate list as a table.
func (s *SimpleUI) DisplayPlan(ctx context.Context, candidates []m.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderPlanTable(candidates))

	return nil
}

// DisplaySummary renders the end-of-run counts as a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.Report) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(report.Actions) == 0 {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderPlanTable(candidates []m.Candidate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Module Dir"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, candidate := range candidates {
		table.Append([]string{string(candidate.Source), string(candidate.ModuleDir)})
	}

	table.SetFooter([]string{"Total Files", fmt.Sprintf("%d", len(candidates))})
	table.Render()

	return tableBuffer.String()
}

func renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"lifted", fmt.Sprintf("%d", report.Lifted())})
	table.Append([]string{"skipped", fmt.Sprintf("%d", report.Skipped())})

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(report.Actions))})
	table.Render()

	return tableBuffer.String()
}
