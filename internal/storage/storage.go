package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles writing output files into a directory
type Storage struct {
	dir string
}

// New creates a new Storage instance, creating dir if it doesn't exist
func New(dir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	exists, err := pathExists(dir)
	if err != nil {
		return nil, fmt.Errorf("checking output directory: %w", err)
	}
	if !exists {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return &Storage{
		dir: dir,
	}, nil
}

// Dir returns the output directory
func (s *Storage) Dir() string {
	return s.dir
}

// Path returns the path of name inside the output directory
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// File is one named output file
type File struct {
	Name string
	Data []byte
}

// WriteFile writes data to name inside the output directory
func (s *Storage) WriteFile(name string, data []byte) error {
	return s.WriteFiles(File{Name: name, Data: data})
}

// WriteFiles writes files as a set. Every file is staged in a temporary
// sibling first; nothing is renamed into place until all of them staged, and
// files already renamed are removed again if a later rename fails.
func (s *Storage) WriteFiles(files ...File) error {
	staged := make([]string, 0, len(files))
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp) // nolint:errcheck
		}
	}()

	for _, f := range files {
		tmp, err := s.stage(f)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}

	committed := make([]string, 0, len(files))
	for i, f := range files {
		path := s.Path(f.Name)
		if err := os.Rename(staged[i], path); err != nil {
			for _, done := range committed {
				os.Remove(done) // nolint:errcheck
			}
			return fmt.Errorf("renaming %s: %w", f.Name, err)
		}
		committed = append(committed, path)
	}

	return nil
}

// stage writes f to a temporary file in the output directory
func (s *Storage) stage(f File) (string, error) {
	tmp, err := os.CreateTemp(s.dir, "."+f.Name+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", f.Name, err)
	}

	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()           // nolint:errcheck
		os.Remove(tmp.Name()) // nolint:errcheck
		return "", fmt.Errorf("writing %s: %w", f.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) // nolint:errcheck
		return "", fmt.Errorf("closing %s: %w", f.Name, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name()) // nolint:errcheck
		return "", fmt.Errorf("setting permissions on %s: %w", f.Name, err)
	}

	return tmp.Name(), nil
}

// pathExists reports whether path exists. A not-exist error is a normal
// outcome, anything else is returned.
func pathExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	return true, nil
}
