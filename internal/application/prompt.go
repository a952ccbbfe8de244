package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwat/caesarfile/internal/domain"
)

const choicePrompt = "Choose operation:\n" +
	"1. Encrypt File\n" +
	"2. Decrypt File\n" +
	"Enter choice (1-2): "

// RunOptions carries whatever the caller already knows. Zero values are
// asked for through the Prompter, except Shift when ShiftSet is true.
type RunOptions struct {
	Mode       domain.Mode
	Shift      int
	ShiftSet   bool
	InputPath  string
	OutputPath string
}

// Run collects the missing options interactively and processes the file.
func (app *App) Run(ctx context.Context, opts *RunOptions) (*ProcessResult, error) {
	mode := opts.Mode
	if mode == 0 {
		var err error
		if mode, err = app.AskMode(); err != nil {
			return nil, err
		}
	}

	shift := opts.Shift
	if shift == 0 && !opts.ShiftSet {
		var err error
		if shift, err = app.AskShift(); err != nil {
			return nil, err
		}
	}
	cipher, err := domain.NewCipher(shift)
	if err != nil {
		return nil, err
	}

	inputPath := opts.InputPath
	if inputPath == "" {
		if inputPath, err = app.AskPath("Enter input file path: "); err != nil {
			return nil, err
		}
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		if outputPath, err = app.AskPath("Enter output file path: "); err != nil {
			return nil, err
		}
	}

	return app.ProcessFile(ctx, &ProcessRequest{
		Cipher:     cipher,
		Mode:       mode,
		InputPath:  inputPath,
		OutputPath: outputPath,
	})
}

func (app *App) AskMode() (domain.Mode, error) {
	choice, err := app.askInt(choicePrompt, 1, 2)
	if err != nil {
		return 0, err
	}
	return domain.ParseMode(strconv.Itoa(choice))
}

func (app *App) AskShift() (int, error) {
	prompt := fmt.Sprintf("Enter Caesar cipher shift value (%d-%d): ", domain.MinShift, domain.MaxShift)
	return app.askInt(prompt, domain.MinShift, domain.MaxShift)
}

// AskPath keeps asking until a non-blank path is entered.
func (app *App) AskPath(prompt string) (string, error) {
	for {
		line, err := app.prompter.ReadLine(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read path: %w", err)
		}
		if path := strings.TrimSpace(line); path != "" {
			return path, nil
		}
		app.prompter.Notify("Invalid path. Please try again.")
	}
}

func (app *App) askInt(prompt string, lo, hi int) (int, error) {
	for {
		line, err := app.prompter.ReadLine(prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && value >= lo && value <= hi {
			return value, nil
		}
		app.prompter.Notify(fmt.Sprintf("Invalid input. Please enter a number between %d and %d.", lo, hi))
	}
}
