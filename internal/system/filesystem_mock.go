package system

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// It captures written files and created directories instead of touching disk.
type MockFileSystem struct {
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	Directories  map[string]bool
	// StatErrors makes any existence check on the given path fail with the error.
	StatErrors map[string]error
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		Directories:  make(map[string]bool),
		StatErrors:   make(map[string]error),
	}
}

func (m *MockFileSystem) statErr(path string) error {
	if err, ok := m.StatErrors[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

// PathExists reports whether path was written or created as a directory.
func (m *MockFileSystem) PathExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.statErr(path); err != nil {
		return false, err
	}
	path = filepath.Clean(path)
	_, isFile := m.WrittenFiles[path]
	return isFile || m.Directories[path], nil
}

// FileExists reports whether path was written.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.statErr(path); err != nil {
		return false, err
	}
	_, ok := m.WrittenFiles[filepath.Clean(path)]
	return ok, nil
}

// DirectoryExists reports whether path was created as a directory.
func (m *MockFileSystem) DirectoryExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.statErr(path); err != nil {
		return false, err
	}
	return m.Directories[filepath.Clean(path)], nil
}

// ReadFile returns previously written content.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.WrittenFiles[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("failed to read file %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode, overwrite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.WrittenFiles[path]; ok && !overwrite {
		return fmt.Errorf("%s: %w", path, ErrFileExists)
	}
	m.WrittenFiles[path] = content
	return nil
}

// EnsureDirectory records the directory as created.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if _, ok := m.WrittenFiles[path]; ok {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	m.Directories[path] = true
	return nil
}
