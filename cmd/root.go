// Package cmd provides the root command and CLI setup for modlift.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"modlift.dev/pkg/modlift/internal/adapter"
	"modlift.dev/pkg/modlift/internal/controller"
	"modlift.dev/pkg/modlift/internal/domain"
	m "modlift.dev/pkg/modlift/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var restructurer domain.Restructurer
var ui controller.UI

// rootPathFlag is a root-level flag overriding the configured tree root.
var rootPathFlag string

// suffixFlag is a root-level flag overriding the candidate file suffix.
var suffixFlag string

// excludePatterns is a root-level flag that filters candidate files.
var excludePatterns []string

// verboseFlag switches the file log to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	restructurer = domain.NewRestructurer(fsAdapter, ui)
}

const rootLongDescription = `modlift restructures a tree of flat source files into module directories:
each <stem>.<suffix> file becomes <stem>/mod.<suffix> with a fixed header
block prepended once, next to an empty <stem>/test.<suffix> placeholder.

Files already lifted are skipped, so re-running against the same tree is
safe. The root, suffix, and header block come from modlift.yaml, environment
variables (MODLIFT_*), or flags.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modlift",
		Short: "Lift flat source files into module directories",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&rootPathFlag, rootFlagName, "r",
			viper.GetString(rootConfigKey),
			"root directory to restructure",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().
		StringVar(
			&suffixFlag, suffixFlagName,
			viper.GetString(suffixConfigKey),
			"filename suffix designating candidate files",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(suffixFlagName), suffixConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// restructureArgs assembles workflow arguments from config, flags, and an
// optional positional root path.
func restructureArgs(positional []string) domain.RestructureArgs {
	root := viper.GetString(rootConfigKey)
	if len(positional) > 0 {
		root = positional[0]
	}

	return domain.RestructureArgs{
		Root:       m.Path(root),
		Suffix:     viper.GetString(suffixConfigKey),
		Header:     m.Header(viper.GetStringSlice(headerConfigKey)),
		ModuleName: viper.GetString(moduleNameKey),
		TestName:   viper.GetString(testNameKey),
		Exclude:    viper.GetStringSlice(excludeConfigKey),
	}
}
