package osfs

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem implements application.FileSystem on top of the os package
type FileSystem struct{}

func (FileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (FileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (FileSystem) CreateExclusive(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

func (FileSystem) Remove(name string) error {
	return os.Remove(name)
}
