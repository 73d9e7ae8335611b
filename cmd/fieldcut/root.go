package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var flags cutFlags

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "fieldcut [flags] [FILE]",
		Short: "Print selected fields from each line of input",
		Long: `fieldcut prints selected delimiter-separated fields from each line of FILE,
or standard input when FILE is omitted or "-".

Field specifications are comma-separated lists of field numbers (3),
closed ranges (2-5), open ranges (4-) and leading ranges (-3). Fields are
printed in the order given, duplicates included, and ranges beyond the end
of a line are cut short instead of failing.`,
		Example: `  fieldcut -f 1-3,5 data.tsv
  fieldcut -d , -f 2- < data.csv
  fieldcut explain -f 2-4,8,11- --count 12`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(cmd, ctx, &flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")
	flags.register(rootCmd)

	rootCmd.AddCommand(newExplainCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
