// Package adapter contains infrastructure adapters for the modlift CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "modlift.dev/pkg/modlift/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when restructuring user trees. It intentionally hides
// direct `os` access so the workflow logic can be tested without touching
// the real disk layout assumptions.
type SourceFSAdapter interface {
	// Walk traverses the full subtree under root, visiting every entry.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// Stat returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	Stat(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all missing parents. It is a no-op
	// when the directory already exists.
	MkdirAll(path m.Path, perm os.FileMode) error

	// Rename moves a file to a new path. The old path no longer exists
	// afterwards.
	Rename(oldPath, newPath m.Path) error

	// Touch ensures a file exists, creating it empty when absent. An
	// existing file is left untouched, content included.
	Touch(path m.Path) error

	// Abs resolves a path to its absolute form.
	Abs(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete implementation backing the
// SourceFSAdapter interface with the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready
// to be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates a directory and all missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// Rename moves a file to a new path.
func (a *LocalSourceFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// Touch ensures a file exists without truncating existing content.
func (a *LocalSourceFSAdapter) Touch(path m.Path) error {
	// #nosec G304 - path is an internal destination path, not user input
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	return f.Close()
}

// Abs resolves a path to its absolute form.
func (a *LocalSourceFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
