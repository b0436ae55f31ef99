package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

const (
	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o600
)

// Store reads and writes a single configuration file.
type Store struct {
	path string
}

// New creates a Store for the given path. No I/O happens until Read or Write.
func New(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the cleaned file path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the file contents. A missing file is created empty, together with
// its parent directories, and Read then returns no data.
func (s *Store) Read() ([]byte, error) {
	stat, err := os.Stat(s.path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = s.create()
		if err != nil {
			return nil, err
		}

		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("stat file %q: %w", s.path, err)
	case stat.IsDir():
		return nil, fmt.Errorf("path %q: %w", s.path, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(s.path) // #nosec G304 -- path is cleaned and supplied by the application
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", s.path, err)
	}

	return data, nil
}

// Write atomically replaces the file contents with data.
// New files are created with 0600 permissions; existing permissions are kept.
func (s *Store) Write(data []byte) (err error) {
	err = os.MkdirAll(filepath.Dir(s.path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory for %q: %w", s.path, err)
	}

	pending, err := renameio.NewPendingFile(s.path,
		renameio.WithPermissions(filePerm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("creating pending file for %q: %w", s.path, err)
	}

	defer func() {
		cleanupErr := pending.Cleanup()
		if err == nil && cleanupErr != nil {
			err = fmt.Errorf("cleaning up pending file for %q: %w", s.path, cleanupErr)
		}
	}()

	_, err = pending.Write(data)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", s.path, err)
	}

	err = pending.CloseAtomicallyReplace()
	if err != nil {
		return fmt.Errorf("replacing file %q: %w", s.path, err)
	}

	return nil
}

func (s *Store) create() error {
	err := os.MkdirAll(filepath.Dir(s.path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory for %q: %w", s.path, err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, filePerm) // #nosec G304 -- see Read
	if err != nil {
		return fmt.Errorf("creating file %q: %w", s.path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("closing file %q: %w", s.path, err)
	}

	return nil
}
