package system

import (
	"errors"
	"testing"
)

// fakeRunner returns canned output for every command
type fakeRunner struct {
	output string
	err    error
	calls  [][]string
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

// Test CommandExists
func TestCommandExists(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{"ls exists", "ls", true},
		{"nonexistent command", "this-command-does-not-exist-xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommandExists(tt.command)
			if got != tt.want {
				t.Errorf("CommandExists(%s) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestFindGitRoot(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		err     error
		want    string
		wantErr bool
	}{
		{"work tree", "/home/dev/project\n", nil, "/home/dev/project", false},
		{"trailing slash is cleaned", "/home/dev/project/\n", nil, "/home/dev/project", false},
		{"not a repository", "fatal: not a git repository\n", errors.New("exit status 128"), "", true},
		{"empty output", "\n", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{output: tt.output, err: tt.err}
			got, err := FindGitRoot(runner, "/home/dev/project/docs")
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindGitRoot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FindGitRoot() = %v, want %v", got, tt.want)
			}

			if len(runner.calls) != 1 {
				t.Fatalf("runner called %d times, want 1", len(runner.calls))
			}
			call := runner.calls[0]
			if call[0] != "git" || call[2] != "/home/dev/project/docs" {
				t.Errorf("runner called with %v", call)
			}
		})
	}
}
