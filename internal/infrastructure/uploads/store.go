package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps uploaded files in a single flat directory served statically.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty uploads dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(name string, src io.Reader) error {
	name = filepath.Base(name)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	return f.Close()
}

func (s *DiskStore) Remove(name string) error {
	name = filepath.Base(name)

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
