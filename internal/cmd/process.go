package cmd

import (
	"github.com/iwat/caesarfile/internal/application"
	"github.com/iwat/caesarfile/internal/domain"
	"github.com/iwat/caesarfile/internal/infrastructure/tui"
	"github.com/spf13/cobra"
)

func encryptCmd(appBuilder *AppBuilder, root *rootOptions) *cobra.Command {
	return processCmd(appBuilder, root, domain.Encrypt, "encrypt", "Encrypt a file")
}

func decryptCmd(appBuilder *AppBuilder, root *rootOptions) *cobra.Command {
	return processCmd(appBuilder, root, domain.Decrypt, "decrypt", "Decrypt a file")
}

func processCmd(appBuilder *AppBuilder, root *rootOptions, mode domain.Mode, use, short string) *cobra.Command {
	var opts application.RunOptions
	processCmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ". Options that are not given as flags are prompted for.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			opts.Mode = mode
			opts.ShiftSet = cmd.Flags().Changed("shift")
			return runProcess(cmd, appBuilder, tui.NewStyles(cmd.OutOrStdout(), root.noColor), &opts)
		},
	}
	processCmd.Flags().IntVar(&opts.Shift, "shift", 0, "Caesar cipher shift value (1-25)")
	processCmd.Flags().StringVar(&opts.InputPath, "in", "", "Input file path")
	processCmd.Flags().StringVar(&opts.OutputPath, "out", "", "Output file path, must not exist")

	return processCmd
}

func runProcess(cmd *cobra.Command, appBuilder *AppBuilder, styles *tui.Styles, opts *application.RunOptions) error {
	app, err := appBuilder.App(cmd.Context())
	if err != nil {
		return err
	}
	result, err := app.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), styles, result)
	return nil
}
