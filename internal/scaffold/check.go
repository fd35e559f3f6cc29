package scaffold

import "github.com/ai-first-sdlc/scaffold-check/internal/system"

// Kind is the type of filesystem entry a requirement expects.
type Kind int

const (
	// KindAny accepts any existing entry.
	KindAny Kind = iota
	// KindDir requires a directory.
	KindDir
	// KindFile requires a regular file.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "path"
	}
}

// Requirement is a path, relative to the project root, that must exist.
type Requirement struct {
	Path string
	Kind Kind
}

// Dir returns a requirement for a directory.
func Dir(path string) Requirement { return Requirement{Path: path, Kind: KindDir} }

// File returns a requirement for a regular file.
func File(path string) Requirement { return Requirement{Path: path, Kind: KindFile} }

// Path returns a requirement satisfied by any existing entry.
func Path(path string) Requirement { return Requirement{Path: path, Kind: KindAny} }

// Severity decides whether a failing check fails the run.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Check is one named scaffold verification. Requirements are probed first;
// Inspect runs only when all of them are present. A check with neither
// always passes.
type Check struct {
	Name         string
	Description  string
	Severity     Severity
	Requirements []Requirement
	Inspect      func(fs system.PathChecker, root string) error
}

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// Result is the outcome of running one check.
type Result struct {
	Check   Check
	Status  Status
	Missing []string // requirement paths that were absent or of the wrong kind
	Message string
}

// Passed reports whether the check passed outright.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}
