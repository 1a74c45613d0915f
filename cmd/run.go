package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "modlift.dev/pkg/modlift/internal/model"
	"modlift.dev/pkg/modlift/pkg"
)

var runDryRunFlag bool
var runJournalFlag bool

const runLongDescription = `Run the restructuring for the given root (default: the configured root).

Every <stem>.<suffix> file in the subtree is moved to <stem>/mod.<suffix>
with the header block prepended once; an empty <stem>/test.<suffix> is
created next to it. Candidates whose module file already exists are skipped
and left in place.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Restructure the source tree",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			workArgs := restructureArgs(args)

			if runDryRunFlag {
				candidates, err := restructurer.Plan(ctx, workArgs)
				if err != nil {
					return err
				}

				return ui.DisplayPlan(ctx, candidates)
			}

			report, err := restructurer.Restructure(ctx, workArgs)
			if err != nil {
				return err
			}

			if viper.GetBool(journalEnabledKey) {
				return journalReport(report)
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&runDryRunFlag, dryRunFlagName, false, "discover candidates without touching the tree")
	cmd.Flags().BoolVar(&runJournalFlag, journalFlagName, viper.GetBool(journalEnabledKey), "record the run's actions to the journal file")
	bindFlagToConfig(cmd.Flags().Lookup(journalFlagName), journalEnabledKey)
}

// journalReport writes every action of the run to the configured journal
// file for later inspection; the tool has no rollback, so the journal is the
// only record of what moved where.
func journalReport(report m.Report) error {
	journal, err := pkg.NewJournal[m.Action](viper.GetString(journalFilenameKey))
	if err != nil {
		return err
	}

	defer func() { _ = journal.Close() }()

	if err := journal.AppendBatch(report.Actions); err != nil {
		return fmt.Errorf("journal run actions: %w", err)
	}

	return nil
}
