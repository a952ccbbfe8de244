package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iwat/caesarfile/internal/application"
	"github.com/iwat/caesarfile/internal/domain"
	"github.com/iwat/caesarfile/internal/infrastructure/dblib"
	"github.com/iwat/caesarfile/internal/infrastructure/logging"
	"github.com/iwat/caesarfile/internal/infrastructure/osfs"
	"github.com/iwat/caesarfile/internal/infrastructure/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	_ "github.com/mattn/go-sqlite3"
)

type AppBuilder struct {
	journalPath string
	prompter    application.Prompter
	fileSystem  application.FileSystem
	progress    application.ProgressReporter
	db          *sql.DB
	journal     *dblib.Queries
	app         *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) WithJournalPath(path string) *AppBuilder {
	b.journalPath = path
	return b
}

func (b *AppBuilder) WithPrompter(prompter application.Prompter) *AppBuilder {
	b.prompter = prompter
	return b
}

func (b *AppBuilder) WithFileSystem(fileSystem application.FileSystem) *AppBuilder {
	b.fileSystem = fileSystem
	return b
}

func (b *AppBuilder) WithProgress(progress application.ProgressReporter) *AppBuilder {
	b.progress = progress
	return b
}

func (b *AppBuilder) Build() error {
	if b.prompter == nil {
		b.prompter = tui.NewTerminalPrompter(os.Stdin, os.Stdout)
	}
	if b.fileSystem == nil {
		b.fileSystem = osfs.FileSystem{}
	}
	if b.progress == nil {
		b.progress = tui.NewConsoleProgress(os.Stdout, tui.IsTerminal(os.Stdout))
	}

	if b.journalPath != "" {
		dir := filepath.Dir(b.journalPath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create journal directory %s: %w", dir, err)
		}
		db, err := sql.Open("sqlite3", b.journalPath)
		if err != nil {
			return fmt.Errorf("failed to open journal %s: %w", b.journalPath, err)
		}
		b.db = db
		b.journal = dblib.New(db)
	}

	b.app = application.NewApp(b.journal, b.prompter, b.fileSystem, b.progress)
	return nil
}

func (b *AppBuilder) App(ctx context.Context) (*application.App, error) {
	if err := b.app.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize journal: %w", err)
	}
	return b.app, nil
}

// Close releases the journal opened by Build, if any.
func (b *AppBuilder) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.journal = nil
	return err
}

type rootOptions struct {
	journalPath string
	logLevel    string
	noColor     bool
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	var opts rootOptions
	rootCmd := &cobra.Command{
		Use:   "caesarfile",
		Short: "Caesar cipher file encryptor/decryptor",
		Long: "caesarfile rotates the letters of a file by a fixed shift and writes the result to a new file.\n" +
			"Run without a subcommand to be prompted for every option.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			noColor := opts.noColor || !tui.IsTerminal(os.Stderr)
			slog.SetDefault(logging.NewLogger(cmd.ErrOrStderr(), level, noColor))

			return appBuilder.WithJournalPath(opts.journalPath).Build()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			styles := tui.NewStyles(cmd.OutOrStdout(), opts.noColor)
			fmt.Fprintln(cmd.OutOrStdout(), styles.Banner())
			return runProcess(cmd, appBuilder, styles, &application.RunOptions{})
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.StringVar(&opts.journalPath, "journal", "", "Path to SQLite run journal (e.g. "+DefaultJournalPath()+"), disabled when empty")
	rootFlags.StringVar(&opts.logLevel, "log-level", "warn", "Log level [debug,info,warn,error]")
	rootFlags.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	rootCmd.AddCommand(encryptCmd(appBuilder, &opts))
	rootCmd.AddCommand(decryptCmd(appBuilder, &opts))
	rootCmd.AddCommand(historyCmd(appBuilder))

	return rootCmd
}

// DefaultJournalPath is the suggested location for --journal.
func DefaultJournalPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./caesarfile.db"
	}
	return filepath.Join(configDir, "caesarfile", "journal.db")
}

// Execute runs rootCmd, releases whatever appBuilder opened and reports a
// failure on the error stream. It returns the process exit code.
func Execute(ctx context.Context, rootCmd *cobra.Command, appBuilder *AppBuilder) int {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := appBuilder.Close(); closeErr != nil {
		slog.Warn("failed to close journal", "err", closeErr)
	}
	if err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		styles := tui.NewStyles(rootCmd.ErrOrStderr(), noColor)
		fmt.Fprintln(rootCmd.ErrOrStderr(), styles.Failure("❌ Error: "+err.Error()))
		return 1
	}
	return 0
}

func printResult(w io.Writer, styles *tui.Styles, result *application.ProcessResult) {
	icon := "🔐"
	if result.Mode == domain.Decrypt {
		icon = "🔓"
	}
	fmt.Fprintln(w, styles.Success(fmt.Sprintf("%s %s completed successfully.", icon, result.Mode.Verb())))
}
