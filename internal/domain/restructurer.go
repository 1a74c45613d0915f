// Package domain implements the tree-restructuring workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"modlift.dev/pkg/modlift/internal/adapter"
	"modlift.dev/pkg/modlift/internal/controller"
	m "modlift.dev/pkg/modlift/internal/model"
)

// RestructureArgs carries the configuration for one run. Root and Header are
// explicit values rather than package constants so tests can target
// temporary directories.
type RestructureArgs struct {
	Root m.Path
	// Suffix designates candidate files, e.g. ".rs".
	Suffix string
	// Header is the block prepended to every module file exactly once.
	Header m.Header
	// ModuleName is the canonical module basename (without suffix), e.g. "mod".
	ModuleName string
	// TestName is the canonical test basename (without suffix), e.g. "test".
	TestName string
	// Exclude holds regex patterns; matching candidate paths are ignored.
	Exclude []string
}

// Restructurer lifts flat source files into module directories.
type Restructurer interface {
	// Plan walks the subtree under Root and returns the snapshot of
	// candidates a run would process, without mutating anything.
	Plan(ctx context.Context, args RestructureArgs) ([]m.Candidate, error)

	// Restructure runs the full migration: for every candidate it creates
	// the module directory, moves the file to the canonical module path,
	// ensures the header block appears exactly once, and touches the test
	// file. Candidates whose module file already exists are skipped.
	Restructure(ctx context.Context, args RestructureArgs) (m.Report, error)
}

type restructurer struct {
	fs adapter.SourceFSAdapter
	ui controller.UI
}

// NewRestructurer creates a Restructurer backed by the given filesystem
// adapter and UI.
func NewRestructurer(fs adapter.SourceFSAdapter, ui controller.UI) Restructurer {
	return &restructurer{fs: fs, ui: ui}
}

// Plan discovers candidates. Files already carrying the canonical module or
// test name are never treated as fresh candidates, otherwise a later walk
// would lift foo/mod.rs into foo/mod/mod.rs.
func (r *restructurer) Plan(ctx context.Context, args RestructureArgs) ([]m.Candidate, error) {
	if args.Suffix == "" {
		return nil, fmt.Errorf("candidate suffix must not be empty")
	}

	if _, err := r.fs.Stat(args.Root); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	moduleName := args.ModuleName + args.Suffix
	testName := args.TestName + args.Suffix

	var candidates []m.Candidate

	walkErr := r.fs.Walk(args.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		name := filepath.Base(path)
		if !strings.HasSuffix(name, args.Suffix) {
			return nil
		}

		if name == moduleName || name == testName {
			return nil
		}

		stem := strings.TrimSuffix(name, args.Suffix)
		if stem == "" {
			slog.Debug("ignoring file with empty stem", "path", path)
			return nil
		}

		if matchesAny(excludes, path) {
			slog.Debug("excluded candidate", "path", path)
			return nil
		}

		moduleDir, err := r.fs.Abs(r.fs.JoinPath(filepath.Dir(path), stem))
		if err != nil {
			return err
		}

		candidates = append(candidates, m.Candidate{
			Source:     m.Path(path),
			Stem:       stem,
			ModuleDir:  moduleDir,
			ModulePath: r.fs.JoinPath(string(moduleDir), moduleName),
			TestPath:   r.fs.JoinPath(string(moduleDir), testName),
		})

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", args.Root, walkErr)
	}

	slog.Debug("discovered candidates", "root", args.Root, "count", len(candidates))

	return candidates, nil
}

// Restructure processes candidates strictly sequentially. The candidate list
// is snapshotted up front so the walk never revisits module files created by
// this very run.
func (r *restructurer) Restructure(ctx context.Context, args RestructureArgs) (m.Report, error) {
	report := m.Report{}

	candidates, err := r.Plan(ctx, args)
	if err != nil {
		return report, err
	}

	if err := r.ui.Start(ctx, len(candidates)); err != nil {
		return report, err
	}
	defer r.ui.Close(ctx)

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		action, err := r.lift(ctx, candidate, args.Header)
		if err != nil {
			slog.Error("lift failed", "source", candidate.Source, "error", err)
			return report, fmt.Errorf("lift %s: %w", candidate.Source, err)
		}

		report.Actions = append(report.Actions, action)
	}

	r.ui.DisplaySummary(ctx, report)

	return report, nil
}

func (r *restructurer) lift(ctx context.Context, candidate m.Candidate, header m.Header) (m.Action, error) {
	action := m.Action{Candidate: candidate}

	if err := r.fs.MkdirAll(candidate.ModuleDir, 0o750); err != nil {
		return action, err
	}

	if _, err := r.fs.Stat(candidate.ModulePath); err == nil {
		slog.Info("module file already exists, leaving candidate in place",
			"module", candidate.ModulePath, "source", candidate.Source)
		r.ui.DisplaySkip(ctx, candidate.ModulePath)

		action.Outcome = m.OutcomeSkipped

		return action, nil
	} else if !os.IsNotExist(err) {
		return action, err
	}

	// Point of no return: the candidate's original path is vacated here.
	if err := r.fs.Rename(candidate.Source, candidate.ModulePath); err != nil {
		return action, err
	}

	prepended, err := r.ensureHeader(candidate.ModulePath, header)
	if err != nil {
		return action, err
	}

	if err := r.fs.Touch(candidate.TestPath); err != nil {
		return action, err
	}

	action.Outcome = m.OutcomeLifted
	action.HeaderPrepended = prepended

	slog.Debug("lifted candidate",
		"source", candidate.Source, "module", candidate.ModulePath, "headerPrepended", prepended)
	r.ui.DisplayLifted(ctx, candidate.ModuleDir)

	return action, nil
}

// ensureHeader rewrites the module file as header + original content unless
// the file already starts with the header block.
func (r *restructurer) ensureHeader(path m.Path, header m.Header) (bool, error) {
	raw, err := r.fs.ReadFile(path)
	if err != nil {
		return false, err
	}

	if !utf8.Valid(raw) {
		return false, fmt.Errorf("%s: content is not valid UTF-8", path)
	}

	rewritten, prepended := PrependHeader(string(raw), header)
	if !prepended {
		return false, nil
	}

	if err := r.fs.WriteFile(path, []byte(rewritten), 0o644); err != nil {
		return false, err
	}

	return true, nil
}

// PrependHeader normalizes line endings and ensures the content starts with
// the header block. It reports whether the header was actually inserted.
// A file shorter than the header block compares as "header absent".
func PrependHeader(content string, header m.Header) (string, bool) {
	content = NormalizeNewlines(content)

	headerText := header.Text()
	if strings.HasPrefix(content, headerText) {
		return content, false
	}

	return headerText + content, true
}

// NormalizeNewlines rewrites CRLF and bare CR line endings as LF.
func NormalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	return strings.ReplaceAll(content, "\r", "\n")
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func matchesAny(excludes []*regexp.Regexp, path string) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
