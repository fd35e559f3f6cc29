package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ai-first-sdlc/scaffold-check/internal/system"
)

// Suite is an ordered set of checks with unique names.
type Suite struct {
	Profile string
	checks  []Check
}

// NewSuite creates a suite from checks. It panics on duplicate names since
// suites are assembled from static definitions.
func NewSuite(profile string, checks ...Check) *Suite {
	s := &Suite{Profile: profile}
	for _, c := range checks {
		if err := s.Add(c); err != nil {
			panic(err)
		}
	}
	return s
}

// Add appends a check. Names must be non-empty and unique.
func (s *Suite) Add(c Check) error {
	if c.Name == "" {
		return fmt.Errorf("check name cannot be empty")
	}
	if _, exists := s.Lookup(c.Name); exists {
		return fmt.Errorf("duplicate check name: %s", c.Name)
	}
	s.checks = append(s.checks, c)
	return nil
}

// Checks returns a copy of the checks in run order.
func (s *Suite) Checks() []Check {
	out := make([]Check, len(s.checks))
	copy(out, s.checks)
	return out
}

// Names returns check names in run order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.checks))
	for i, c := range s.checks {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a check by name.
func (s *Suite) Lookup(name string) (Check, bool) {
	for _, c := range s.checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Report collects the results of one verification run.
type Report struct {
	RunID     string
	Root      string
	Profile   string
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
}

// Passed counts checks that passed.
func (r *Report) Passed() int { return r.count(StatusPass) }

// Failed counts checks that failed. Only these fail the run.
func (r *Report) Failed() int { return r.count(StatusFail) }

// Warnings counts warning-severity checks that did not pass.
func (r *Report) Warnings() int { return r.count(StatusWarn) }

// OK reports whether no check failed.
func (r *Report) OK() bool { return r.Failed() == 0 }

// Result finds the result for a check name.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Check.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

func (r *Report) count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Verifier runs suites against a project root. It only reads the filesystem.
type Verifier struct {
	fs  system.PathChecker
	log *zap.Logger
	now func() time.Time
}

// NewVerifier creates a Verifier. A nil logger is replaced by a no-op logger.
func NewVerifier(fs system.PathChecker, log *zap.Logger) *Verifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Verifier{fs: fs, log: log, now: time.Now}
}

// Run executes every check of the suite in order. Checks are independent:
// the outcome of one never changes whether or how another runs.
func (v *Verifier) Run(root string, suite *Suite) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		Root:      root,
		Profile:   suite.Profile,
		StartedAt: v.now(),
	}

	v.log.Debug("verification started",
		zap.String("run_id", report.RunID),
		zap.String("root", root),
		zap.String("profile", suite.Profile),
		zap.Int("checks", len(suite.checks)))

	for _, c := range suite.checks {
		report.Results = append(report.Results, v.RunCheck(root, c))
	}

	report.Duration = v.now().Sub(report.StartedAt)

	v.log.Debug("verification finished",
		zap.String("run_id", report.RunID),
		zap.Int("passed", report.Passed()),
		zap.Int("failed", report.Failed()),
		zap.Int("warnings", report.Warnings()),
		zap.Duration("duration", report.Duration))

	return report
}

// RunCheck executes a single check against root.
func (v *Verifier) RunCheck(root string, c Check) Result {
	res := Result{Check: c, Status: StatusPass}

	var problems []string
	for _, req := range c.Requirements {
		present, detail, err := v.probe(root, req)
		v.log.Debug("probe",
			zap.String("check", c.Name),
			zap.String("path", req.Path),
			zap.Stringer("kind", req.Kind),
			zap.Bool("present", present),
			zap.Error(err))

		switch {
		case err != nil:
			res.Missing = append(res.Missing, req.Path)
			problems = append(problems, fmt.Sprintf("cannot check %s: %v", req.Path, err))
		case !present:
			res.Missing = append(res.Missing, req.Path)
			if detail != "" {
				problems = append(problems, fmt.Sprintf("%s (%s)", req.Path, detail))
			} else {
				problems = append(problems, req.Path)
			}
		}
	}

	if len(problems) > 0 {
		res.Status = failStatus(c.Severity)
		res.Message = "missing: " + strings.Join(problems, ", ")
		return res
	}

	if c.Inspect != nil {
		if err := c.Inspect(v.fs, root); err != nil {
			res.Status = failStatus(c.Severity)
			res.Message = err.Error()
		}
	}

	return res
}

// probe reports whether req is satisfied under root. detail explains a
// present entry of the wrong kind.
func (v *Verifier) probe(root string, req Requirement) (bool, string, error) {
	path := filepath.Join(root, filepath.FromSlash(req.Path))

	exists, err := v.fs.PathExists(path)
	if err != nil || !exists || req.Kind == KindAny {
		return exists, "", err
	}

	var ok bool
	switch req.Kind {
	case KindDir:
		ok, err = v.fs.DirectoryExists(path)
	case KindFile:
		ok, err = v.fs.FileExists(path)
	}
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "not a " + req.Kind.String(), nil
	}
	return true, "", nil
}

func failStatus(sev Severity) Status {
	if sev == SeverityWarning {
		return StatusWarn
	}
	return StatusFail
}
