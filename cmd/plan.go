package cmd

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"modlift.dev/pkg/modlift/internal/domain"
	m "modlift.dev/pkg/modlift/internal/model"
)

const (
	planFormatTable = "table"
	planFormatYAML  = "yaml"
)

var planFormatFlag string
var planDiffFlag bool

const planLongDescription = `Show what a run would do for the given root without touching the tree.

The default table lists every candidate and its resolved module directory.
Use --format yaml for machine-readable output, and --diff to preview the
header block each module file would receive.`

// planDocument is the YAML shape of a dry-run plan.
type planDocument struct {
	Root       string      `yaml:"root"`
	Candidates []planEntry `yaml:"candidates"`
}

type planEntry struct {
	Source     string `yaml:"source"`
	ModuleDir  string `yaml:"module_dir"`
	ModulePath string `yaml:"module_path"`
	TestPath   string `yaml:"test_path"`
}

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [root]",
		Short: "Preview the restructuring without applying it",
		Long:  planLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			workArgs := restructureArgs(args)

			candidates, err := restructurer.Plan(ctx, workArgs)
			if err != nil {
				return err
			}

			switch planFormatFlag {
			case planFormatYAML:
				if err := printPlanYAML(cmd, workArgs.Root, candidates); err != nil {
					return err
				}
			case planFormatTable:
				if err := ui.DisplayPlan(ctx, candidates); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown plan format %q", planFormatFlag)
			}

			if planDiffFlag {
				return printPlanDiffs(cmd, candidates, workArgs.Header)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&planFormatFlag, "format", "f", planFormatTable, "output format: table or yaml")
	cmd.Flags().BoolVar(&planDiffFlag, "diff", false, "preview the header prepend as a unified diff")

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func printPlanYAML(cmd *cobra.Command, root m.Path, candidates []m.Candidate) error {
	doc := planDocument{
		Root:       string(root),
		Candidates: make([]planEntry, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		doc.Candidates = append(doc.Candidates, planEntry{
			Source:     string(candidate.Source),
			ModuleDir:  string(candidate.ModuleDir),
			ModulePath: string(candidate.ModulePath),
			TestPath:   string(candidate.TestPath),
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	cmd.Print(string(out))

	return nil
}

func printPlanDiffs(cmd *cobra.Command, candidates []m.Candidate, header m.Header) error {
	for _, candidate := range candidates {
		raw, err := fsAdapter.ReadFile(candidate.Source)
		if err != nil {
			return err
		}

		original := domain.NormalizeNewlines(string(raw))

		proposed, changed := domain.PrependHeader(original, header)
		if !changed {
			continue
		}

		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(original),
			B:        difflib.SplitLines(proposed),
			FromFile: string(candidate.Source),
			ToFile:   string(candidate.ModulePath),
			Context:  3,
		}

		text, err := difflib.GetUnifiedDiffString(diff)
		if err != nil {
			return fmt.Errorf("diff %s: %w", candidate.Source, err)
		}

		cmd.Print(text)
	}

	return nil
}
