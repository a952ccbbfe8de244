package application

import (
	"io"
	"io/fs"
)

// Prompter interface for abstracting line based console input
type Prompter interface {
	ReadLine(prompt string) (string, error)
	Notify(message string)
}

// FileSystem interface for abstracting file operations
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	// CreateExclusive creates name for writing and fails with fs.ErrExist
	// when it is already present.
	CreateExclusive(name string) (io.WriteCloser, error)
	Remove(name string) error
}

// ProgressReporter receives the percentage of the input processed so far.
type ProgressReporter interface {
	Progress(percent int)
	Done()
}

type nopProgress struct{}

func (nopProgress) Progress(int) {}
func (nopProgress) Done()        {}
