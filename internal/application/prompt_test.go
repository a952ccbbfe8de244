package application

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/iwat/caesarfile/internal/domain"
)

func TestAskShiftRepromptsUntilValid(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)
	prompter.lines = []string{"abc", "0", "26", " 7 "}

	shift, err := app.AskShift()
	if err != nil {
		t.Fatalf("AskShift failed: %v", err)
	}
	if shift != 7 {
		t.Errorf("Expected 7, got %d", shift)
	}
	if len(prompter.messages) != 3 {
		t.Fatalf("Expected 3 invalid input messages, got %v", prompter.messages)
	}
	if prompter.messages[0] != "Invalid input. Please enter a number between 1 and 25." {
		t.Errorf("Unexpected message %q", prompter.messages[0])
	}
}

func TestAskModeEndOfInput(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)
	prompter.lines = []string{"3"}

	_, err := app.AskMode()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Expected io.EOF, got %v", err)
	}
	if !slices.Equal(prompter.messages, []string{"Invalid input. Please enter a number between 1 and 2."}) {
		t.Errorf("Unexpected messages %v", prompter.messages)
	}
}

func TestAskPathRejectsBlank(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)
	prompter.lines = []string{"", "   ", "  my file.txt "}

	path, err := app.AskPath("Enter input file path: ")
	if err != nil {
		t.Fatalf("AskPath failed: %v", err)
	}
	if path != "my file.txt" {
		t.Errorf("Expected 'my file.txt', got %q", path)
	}
	if len(prompter.messages) != 2 || prompter.messages[0] != "Invalid path. Please try again." {
		t.Errorf("Unexpected messages %v", prompter.messages)
	}
}

func TestRunInteractive(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)
	input := writeTestFile(t, "in.txt", "Dwwdfn dw gdzq")
	output := filepath.Join(t.TempDir(), "out.txt")
	prompter.lines = []string{"2", "3", input, output}

	result, err := app.Run(context.Background(), &RunOptions{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Mode != domain.Decrypt || result.Shift != 3 {
		t.Errorf("Unexpected result %+v", result)
	}
	data, _ := os.ReadFile(output)
	if string(data) != "Attack at dawn" {
		t.Errorf("Unexpected plaintext %q", data)
	}
	if len(prompter.prompts) != 4 || prompter.prompts[0] != choicePrompt {
		t.Errorf("Unexpected prompts %q", prompter.prompts)
	}
}

func TestRunOnlyAsksForMissingOptions(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)
	input := writeTestFile(t, "in.txt", "abc")
	output := filepath.Join(t.TempDir(), "out.txt")
	prompter.lines = []string{output}

	result, err := app.Run(context.Background(), &RunOptions{Mode: domain.Encrypt, Shift: 1, InputPath: input})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.OutputPath != output {
		t.Errorf("Expected output %s, got %s", output, result.OutputPath)
	}
	if !slices.Equal(prompter.prompts, []string{"Enter output file path: "}) {
		t.Errorf("Unexpected prompts %q", prompter.prompts)
	}
	data, _ := os.ReadFile(output)
	if string(data) != "bcd" {
		t.Errorf("Unexpected ciphertext %q", data)
	}
}

func TestRunRejectsInvalidShift(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)

	_, err := app.Run(context.Background(), &RunOptions{Mode: domain.Encrypt, Shift: 26})
	if !errors.Is(err, domain.ErrInvalidShift) {
		t.Fatalf("Expected ErrInvalidShift, got %v", err)
	}
	if len(prompter.prompts) != 0 {
		t.Errorf("Nothing should have been prompted, got %q", prompter.prompts)
	}
}

func TestRunExplicitZeroShiftIsNotPrompted(t *testing.T) {
	app, _, prompter, _ := createTestApp(t)
	prompter.lines = []string{"5"}

	_, err := app.Run(context.Background(), &RunOptions{Mode: domain.Encrypt, Shift: 0, ShiftSet: true})
	if !errors.Is(err, domain.ErrInvalidShift) {
		t.Fatalf("Expected ErrInvalidShift, got %v", err)
	}
	if len(prompter.prompts) != 0 {
		t.Errorf("Nothing should have been prompted, got %q", prompter.prompts)
	}
}
