package system

import "os"

// PathChecker defines the read-only file system operations used by scaffold
// checks. This allows for mocking the file system in tests.
type PathChecker interface {
	PathExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	DirectoryExists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
}

// FileSystemManager defines the interface for file system operations that
// modify a project.
type FileSystemManager interface {
	PathChecker
	WriteFile(path string, content []byte, perms os.FileMode, overwrite bool) error
	EnsureDirectory(path string, perms os.FileMode) error
}
