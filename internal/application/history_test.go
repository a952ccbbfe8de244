package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/iwat/caesarfile/internal/domain"
	"github.com/iwat/caesarfile/internal/infrastructure/osfs"
)

func TestHistoryRequiresJournal(t *testing.T) {
	app := NewApp(nil, NewMockPrompter(), osfs.FileSystem{}, nil)

	if _, err := app.ListRuns(context.Background()); !errors.Is(err, ErrJournalDisabled) {
		t.Errorf("Expected ErrJournalDisabled, got %v", err)
	}
	if _, err := app.PruneRuns(context.Background(), true); !errors.Is(err, ErrJournalDisabled) {
		t.Errorf("Expected ErrJournalDisabled, got %v", err)
	}
}

func TestPruneRuns(t *testing.T) {
	app, _, _, _ := createTestApp(t)
	cipher, _ := domain.NewCipher(2)
	input := writeTestFile(t, "in.txt", "xyz")
	dir := t.TempDir()

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := app.ProcessFile(context.Background(), &ProcessRequest{Cipher: cipher, Mode: domain.Encrypt, InputPath: input, OutputPath: filepath.Join(dir, name)}); err != nil {
			t.Fatalf("ProcessFile failed: %v", err)
		}
	}
	_, err := app.ProcessFile(context.Background(), &ProcessRequest{Cipher: cipher, Mode: domain.Encrypt, InputPath: filepath.Join(dir, "missing"), OutputPath: filepath.Join(dir, "c.txt")})
	if err == nil {
		t.Fatalf("Expected failure for missing input")
	}

	pruned, err := app.PruneRuns(context.Background(), false)
	if err != nil {
		t.Fatalf("PruneRuns failed: %v", err)
	}
	if pruned != 1 {
		t.Errorf("Expected 1 pruned run, got %d", pruned)
	}

	runs, err := app.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 remaining runs, got %d", len(runs))
	}

	pruned, err = app.PruneRuns(context.Background(), true)
	if err != nil {
		t.Fatalf("PruneRuns failed: %v", err)
	}
	if pruned != 2 {
		t.Errorf("Expected 2 pruned runs, got %d", pruned)
	}
	runs, _ = app.ListRuns(context.Background())
	if len(runs) != 0 {
		t.Errorf("Expected empty journal, got %d runs", len(runs))
	}
}
