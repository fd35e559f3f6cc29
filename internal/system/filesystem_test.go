package system

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExistenceChecks(t *testing.T) {
	tmpDir := t.TempDir()

	dirPath := filepath.Join(tmpDir, "docs")
	filePath := filepath.Join(tmpDir, "VERSION")
	missingPath := filepath.Join(tmpDir, "missing")

	if err := os.Mkdir(dirPath, 0755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}
	if err := os.WriteFile(filePath, []byte("1.0.0\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	fs := NewFileSystem()

	tests := []struct {
		name     string
		path     string
		wantPath bool
		wantFile bool
		wantDir  bool
	}{
		{"directory", dirPath, true, false, true},
		{"regular file", filePath, true, true, false},
		{"missing path", missingPath, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.PathExists(tt.path)
			if err != nil || got != tt.wantPath {
				t.Errorf("PathExists(%s) = %v, %v, want %v", tt.path, got, err, tt.wantPath)
			}

			got, err = fs.FileExists(tt.path)
			if err != nil || got != tt.wantFile {
				t.Errorf("FileExists(%s) = %v, %v, want %v", tt.path, got, err, tt.wantFile)
			}

			got, err = fs.DirectoryExists(tt.path)
			if err != nil || got != tt.wantDir {
				t.Errorf("DirectoryExists(%s) = %v, %v, want %v", tt.path, got, err, tt.wantDir)
			}
		})
	}
}

func TestEnsureDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()

	nested := filepath.Join(tmpDir, "docs", "feature-proposals")
	if err := fs.EnsureDirectory(nested, 0755); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}

	// Second call is a no-op
	if err := fs.EnsureDirectory(nested, 0755); err != nil {
		t.Fatalf("EnsureDirectory() second call error = %v", err)
	}

	exists, err := fs.DirectoryExists(nested)
	if err != nil || !exists {
		t.Errorf("DirectoryExists(%s) = %v, %v, want true", nested, exists, err)
	}

	filePath := filepath.Join(tmpDir, "CLAUDE.md")
	if err := os.WriteFile(filePath, []byte("# CLAUDE.md\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := fs.EnsureDirectory(filePath, 0755); err == nil {
		t.Error("EnsureDirectory() on a regular file error = nil, want error")
	}
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()
	path := filepath.Join(tmpDir, "retrospectives", "README.md")

	if err := fs.WriteFile(path, []byte("first"), 0644, false); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "first" {
		t.Errorf("ReadFile() = %q, want %q", data, "first")
	}

	err = fs.WriteFile(path, []byte("second"), 0644, false)
	if !errors.Is(err, ErrFileExists) {
		t.Errorf("WriteFile() without overwrite error = %v, want ErrFileExists", err)
	}

	if err := fs.WriteFile(path, []byte("second"), 0644, true); err != nil {
		t.Fatalf("WriteFile() with overwrite error = %v", err)
	}
	data, _ = fs.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("ReadFile() after overwrite = %q, want %q", data, "second")
	}

	// No temp files left behind
	names, err := fs.ListDirectory(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if len(names) != 1 || names[0] != "README.md" {
		t.Errorf("ListDirectory() = %v, want [README.md]", names)
	}
}

func TestMockFileSystem(t *testing.T) {
	mock := NewMockFileSystem()

	if err := mock.EnsureDirectory("/proj/docs", 0755); err != nil {
		t.Fatalf("EnsureDirectory() error = %v", err)
	}
	if err := mock.WriteFile("/proj/VERSION", []byte("0.1.0\n"), 0644, false); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if ok, _ := mock.DirectoryExists("/proj/docs"); !ok {
		t.Error("DirectoryExists(/proj/docs) = false, want true")
	}
	if ok, _ := mock.FileExists("/proj/VERSION"); !ok {
		t.Error("FileExists(/proj/VERSION) = false, want true")
	}
	if ok, _ := mock.PathExists("/proj/CLAUDE.md"); ok {
		t.Error("PathExists(/proj/CLAUDE.md) = true, want false")
	}

	if err := mock.WriteFile("/proj/VERSION", []byte("0.2.0\n"), 0644, false); !errors.Is(err, ErrFileExists) {
		t.Errorf("WriteFile() without overwrite error = %v, want ErrFileExists", err)
	}

	mock.StatErrors["/proj/secret"] = os.ErrPermission
	if _, err := mock.PathExists("/proj/secret"); !errors.Is(err, os.ErrPermission) {
		t.Errorf("PathExists() error = %v, want ErrPermission", err)
	}
}

func TestMode(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewFileSystem()

	file := filepath.Join(tmpDir, "VERSION")
	if err := os.WriteFile(file, []byte("1.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmpDir, "CLAUDE.md")
	if err := os.Symlink(file, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		check   func(os.FileMode) bool
		wantErr bool
	}{
		{"directory", tmpDir, os.FileMode.IsDir, false},
		{"regular file", file, os.FileMode.IsRegular, false},
		{"symlink is not followed", link, func(m os.FileMode) bool { return m&os.ModeSymlink != 0 }, false},
		{"missing", filepath.Join(tmpDir, "docs"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := fs.Mode(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Mode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(mode) {
				t.Errorf("Mode() = %v, unexpected kind", mode)
			}
		})
	}
}
