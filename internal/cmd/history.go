package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd(appBuilder *AppBuilder) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the run journal",
		Long:  "Inspect the run journal. Requires --journal.",
	}

	historyCmd.AddCommand(historyListCmd(appBuilder))
	historyCmd.AddCommand(historyPruneCmd(appBuilder))

	return historyCmd
}

func historyListCmd(appBuilder *AppBuilder) *cobra.Command {
	var format outputFormat = formatTable
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs",
		Long:  "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			runs, err := app.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			return writeRuns(cmd.OutOrStdout(), format, runs)
		},
	}
	listCmd.Flags().VarP(&format, "output", "o", "Output format ["+knownFormats()+"]")

	return listCmd
}

func historyPruneCmd(appBuilder *AppBuilder) *cobra.Command {
	var all bool
	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete failed runs from the journal",
		Long:  "Delete failed runs from the journal, or every run with --all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			count, err := app.PruneRuns(cmd.Context(), all)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s)\n", count)
			return nil
		},
	}
	pruneCmd.Flags().BoolVar(&all, "all", false, "Delete every run, not only failed ones")

	return pruneCmd
}
