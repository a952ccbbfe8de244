package application

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/iwat/caesarfile/internal/domain"
)

// ProcessRequest describes one pass over a file
type ProcessRequest struct {
	Cipher     *domain.Cipher
	Mode       domain.Mode
	InputPath  string
	OutputPath string
}

type ProcessResult struct {
	Mode           domain.Mode
	Shift          int
	InputPath      string
	OutputPath     string
	BytesProcessed int64
}

// ProcessFile transforms InputPath into OutputPath one byte at a time.
// The input must exist and the output must not; both are checked before
// anything is created. A failure after the output was created removes it.
func (app *App) ProcessFile(ctx context.Context, req *ProcessRequest) (*ProcessResult, error) {
	run := &domain.Run{
		Mode:       req.Mode,
		Shift:      req.Cipher.Shift(),
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		StartedAt:  time.Now(),
	}

	n, err := app.processFile(req)
	run.BytesProcessed = n
	run.FinishedAt = time.Now()
	if err != nil {
		run.Status = domain.RunFailed
		run.Error = err.Error()
		app.recordRun(ctx, run)
		return nil, err
	}
	run.Status = domain.RunSucceeded
	app.recordRun(ctx, run)

	return &ProcessResult{
		Mode:           req.Mode,
		Shift:          req.Cipher.Shift(),
		InputPath:      req.InputPath,
		OutputPath:     req.OutputPath,
		BytesProcessed: n,
	}, nil
}

func (app *App) processFile(req *ProcessRequest) (int64, error) {
	size, err := app.validatePaths(req.InputPath, req.OutputPath)
	if err != nil {
		return 0, err
	}
	slog.Debug("paths validated", "input", req.InputPath, "output", req.OutputPath, "size", size)

	in, err := app.fileSystem.Open(req.InputPath)
	if err != nil {
		return 0, &IOError{Op: "open", Path: req.InputPath, Err: err}
	}
	defer in.Close()

	out, err := app.fileSystem.CreateExclusive(req.OutputPath)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, &ValidationError{Path: req.OutputPath, Err: ErrOutputExists}
		}
		return 0, &IOError{Op: "create", Path: req.OutputPath, Err: err}
	}

	n, err := app.transform(in, out, size, req)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = &IOError{Op: "close", Path: req.OutputPath, Err: closeErr}
	}
	if err != nil {
		if removeErr := app.fileSystem.Remove(req.OutputPath); removeErr != nil {
			slog.Warn("failed to remove partial output", "output", req.OutputPath, "err", removeErr)
		}
		return n, err
	}
	return n, nil
}

func (app *App) validatePaths(inputPath, outputPath string) (int64, error) {
	info, err := app.fileSystem.Stat(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &ValidationError{Path: inputPath, Err: ErrInputNotFound}
		}
		return 0, &IOError{Op: "stat", Path: inputPath, Err: err}
	}
	if info.IsDir() {
		return 0, &ValidationError{Path: inputPath, Err: ErrInputIsDir}
	}

	_, err = app.fileSystem.Stat(outputPath)
	if err == nil {
		return 0, &ValidationError{Path: outputPath, Err: ErrOutputExists}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return 0, &IOError{Op: "stat", Path: outputPath, Err: err}
	}

	return info.Size(), nil
}

func (app *App) transform(in io.Reader, out io.Writer, size int64, req *ProcessRequest) (int64, error) {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	interval := max(size/10, 1)

	var processed int64
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return processed, &IOError{Op: "read", Path: req.InputPath, Err: err}
		}
		if err := w.WriteByte(req.Cipher.TransformByte(b, req.Mode)); err != nil {
			return processed, &IOError{Op: "write", Path: req.OutputPath, Err: err}
		}
		processed++

		if processed%interval == 0 && size > 0 {
			app.progress.Progress(int(min(processed*100/size, 100)))
		}
	}

	if err := w.Flush(); err != nil {
		return processed, &IOError{Op: "write", Path: req.OutputPath, Err: err}
	}
	app.progress.Done()
	return processed, nil
}
