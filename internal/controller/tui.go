package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	m "modlift.dev/pkg/modlift/internal/model"
)

const recentEventLines = 8

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	liftedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	countStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive progress display. The
// restructure workflow stays strictly sequential; the errgroup only pairs the
// event-producing run with the event-consuming render loop.
type TUI struct {
	output   io.Writer
	program  *tea.Program
	group    *errgroup.Group
	finished bool
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for a run over total candidates.
// Empty runs render nothing.
func (t *TUI) Start(ctx context.Context, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if total == 0 {
		t.finished = true
		return nil
	}

	t.program = tea.NewProgram(newLiftModel(total), tea.WithOutput(t.output))

	group, _ := errgroup.WithContext(ctx)
	t.group = group

	group.Go(func() error {
		_, err := t.program.Run()
		return err
	})

	return nil
}

// Close finalizes the UI, waiting for the render loop to exit.
func (t *TUI) Close(_ context.Context) {
	t.shutdown()
}

// DisplaySkip reports a candidate whose module file already exists.
func (t *TUI) DisplaySkip(ctx context.Context, modulePath m.Path) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(skipMsg{path: modulePath})
}

// DisplayLifted reports the resolved module directory of a lifted candidate.
func (t *TUI) DisplayLifted(ctx context.Context, moduleDir m.Path) {
	if ctx.Err() != nil || t.program == nil {
		return
	}

	t.program.Send(liftedMsg{dir: moduleDir})
}

// DisplayPlan renders the candidate list as a static table; a plan never
// needs the live progress view.
func (t *TUI) DisplayPlan(ctx context.Context, candidates []m.Candidate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%s", renderPlanTable(candidates))

	return err
}

// DisplaySummary shuts down the progress view and prints the final counts.
func (t *TUI) DisplaySummary(ctx context.Context, report m.Report) {
	if ctx.Err() != nil {
		return
	}

	t.shutdown()

	if len(report.Actions) == 0 {
		return
	}

	_, _ = fmt.Fprintf(t.output, "\n%s", renderSummaryTable(report))
}

func (t *TUI) shutdown() {
	if t.program == nil || t.finished {
		return
	}

	t.finished = true
	t.program.Quit()
	_ = t.group.Wait()
}

// skipMsg reports a skipped candidate to the render loop.
type skipMsg struct {
	path m.Path
}

// liftedMsg reports a lifted candidate to the render loop.
type liftedMsg struct {
	dir m.Path
}

// liftModel is the Bubble Tea model tracking run progress.
type liftModel struct {
	total    int
	done     int
	recent   []string
	progress progress.Model
	quitting bool
}

func newLiftModel(total int) liftModel {
	return liftModel{
		total:    total,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (lm liftModel) Init() tea.Cmd {
	return nil
}

func (lm liftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			lm.quitting = true
			return lm, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 0 {
			lm.progress.Width = width
		}

	case skipMsg:
		lm.done++
		lm.push(skipStyle.Render("[SKIP] already exists: " + string(msg.path)))

	case liftedMsg:
		lm.done++
		lm.push(liftedStyle.Render(string(msg.dir)))
	}

	return lm, nil
}

func (lm liftModel) View() string {
	if lm.quitting {
		return ""
	}

	view := titleStyle.Render("modlift") + "\n\n"

	percent := 0.0
	if lm.total > 0 {
		percent = float64(lm.done) / float64(lm.total)
	}

	view += lm.progress.ViewAs(percent) + "\n"
	view += countStyle.Render(fmt.Sprintf("%d/%d files", lm.done, lm.total)) + "\n\n"

	for _, line := range lm.recent {
		view += "  " + line + "\n"
	}

	return view
}

func (lm *liftModel) push(line string) {
	lm.recent = append(lm.recent, line)
	if len(lm.recent) > recentEventLines {
		lm.recent = lm.recent[len(lm.recent)-recentEventLines:]
	}
}
