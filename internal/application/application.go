package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iwat/caesarfile/internal/domain"
	"github.com/iwat/caesarfile/internal/infrastructure/dblib"
)

// ErrJournalDisabled is returned by history operations when the app was
// built without a run journal.
var ErrJournalDisabled = errors.New("run journal is disabled, pass --journal to enable it")

type App struct {
	journal    *dblib.Queries
	prompter   Prompter
	fileSystem FileSystem
	progress   ProgressReporter
}

// NewApp wires the application. journal may be nil, in which case runs are
// not recorded.
func NewApp(journal *dblib.Queries, prompter Prompter, fileSystem FileSystem, progress ProgressReporter) *App {
	if progress == nil {
		progress = nopProgress{}
	}
	return &App{
		journal:    journal,
		prompter:   prompter,
		fileSystem: fileSystem,
		progress:   progress,
	}
}

func (app *App) Initialize(ctx context.Context) error {
	if app.journal == nil {
		return nil
	}
	return app.journal.InitializeDatabase(ctx)
}

func (app *App) recordRun(ctx context.Context, run *domain.Run) {
	if app.journal == nil {
		return
	}
	created, err := app.journal.CreateRun(ctx, run)
	if err != nil {
		slog.Warn("failed to record run", "input", run.InputPath, "output", run.OutputPath, "err", err)
		return
	}
	slog.Debug("recorded run", "id", created.ID, "status", created.Status)
}
