package application

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound = errors.New("input file does not exist")
	ErrInputIsDir    = errors.New("input path is a directory")
	ErrOutputExists  = errors.New("output file already exists")
)

// ValidationError reports a precondition on a path that failed before any
// output was written.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to open, read or write one of the files.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
