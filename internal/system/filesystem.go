package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrFileExists is returned by WriteFile when overwrite is disabled and the
// target already exists.
var ErrFileExists = errors.New("file already exists")

// FileSystem handles file system operations
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// PathExists checks if a path exists as anything (file, directory, or other)
func (fsys *FileSystem) PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if path exists %s: %w", path, err)
}

// FileExists checks if a regular file exists
func (fsys *FileSystem) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.Mode().IsRegular(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fsys *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// ReadFile returns the contents of a file
func (fsys *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// EnsureDirectory creates a directory (and parents) with the given permissions.
// If the directory already exists, it does nothing.
func (fsys *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to path using a temp file and rename so a failed
// write never leaves a truncated file behind. When overwrite is false and the
// path already exists, ErrFileExists is returned and nothing is written.
func (fsys *FileSystem) WriteFile(path string, content []byte, perms os.FileMode, overwrite bool) error {
	if !overwrite {
		exists, err := fsys.PathExists(path)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s: %w", path, ErrFileExists)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Chmod(perms); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file to %s: %w", path, err)
	}

	return nil
}

// ListDirectory lists all entries in a directory, sorted by name
func (fsys *FileSystem) ListDirectory(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Mode returns the file mode of path without following a trailing symlink
func (fsys *FileSystem) Mode(path string) (fs.FileMode, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Mode(), nil
}
