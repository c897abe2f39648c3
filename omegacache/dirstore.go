package omegacache

import (
	"io"
	"os"
	"path/filepath"
)

// DirStore implements [Store] against a directory on disk, the
// reentrant-and-testable replacement for the original cache's implicit
// use of the process's current working directory.
type DirStore struct {
	Dir string
}

// NewDirStore returns a DirStore rooted at dir. dir is not created; it
// must already exist.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

func (s *DirStore) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, name))
}

func (s *DirStore) Create(name string) (io.WriteCloser, error) {
	return os.Create(filepath.Join(s.Dir, name))
}

// Exists reports whether name is present in the store directory.
func (s *DirStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir, name))
	return err == nil
}
