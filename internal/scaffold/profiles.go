package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ai-first-sdlc/scaffold-check/internal/common"
	"github.com/ai-first-sdlc/scaffold-check/internal/system"
)

// Profile names.
const (
	ProfileMinimal  = "minimal"
	ProfileStandard = "standard"
)

// ErrUnknownProfile is returned for a profile name with no definition.
var ErrUnknownProfile = errors.New("unknown profile")

// Profiles lists the available profile names.
func Profiles() []string {
	return []string{ProfileMinimal, ProfileStandard}
}

// FrameworkSetupCheck always passes; it shows the harness itself runs.
func FrameworkSetupCheck() Check {
	return Check{
		Name:        CheckFrameworkSetup,
		Description: "AI-First SDLC framework is installed",
	}
}

// ProjectStructureCheck requires docs, retrospectives and CLAUDE.md.
func ProjectStructureCheck() Check {
	return Check{
		Name:        CheckProjectStructure,
		Description: "Essential framework directories and CLAUDE.md exist",
		Requirements: []Requirement{
			Path(DocsDir),
			Path(RetrospectivesDir),
			Path(ClaudeFile),
		},
	}
}

// VersionFileCheck requires the VERSION file.
func VersionFileCheck() Check {
	return Check{
		Name:         CheckVersionFile,
		Description:  "VERSION file exists",
		Requirements: []Requirement{Path(VersionFile)},
	}
}

func frameworkFilesCheck() Check {
	return Check{
		Name:         CheckFrameworkFiles,
		Description:  "README.md and CLAUDE.md are regular files",
		Requirements: []Requirement{File(ReadmeFile), File(ClaudeFile)},
	}
}

func frameworkDirsCheck() Check {
	return Check{
		Name:         CheckFrameworkDirs,
		Description:  "Feature proposal and retrospective directories exist",
		Requirements: []Requirement{Dir(FeatureProposalsDir), Dir(RetrospectivesDir)},
	}
}

func claudeDirectivesCheck() Check {
	return Check{
		Name:         CheckClaudeDirectives,
		Description:  "CLAUDE.md carries the framework directives",
		Requirements: []Requirement{File(ClaudeFile)},
		Inspect:      inspectClaudeDirectives,
	}
}

func gitIgnorePatternsCheck() Check {
	return Check{
		Name:         CheckGitIgnorePatterns,
		Description:  ".gitignore excludes AI tool state",
		Severity:     SeverityWarning,
		Requirements: []Requirement{File(GitIgnoreFile)},
		Inspect:      inspectGitIgnore,
	}
}

func gitRepositoryCheck() Check {
	return Check{
		Name:         CheckGitRepository,
		Description:  "Project is a git repository",
		Requirements: []Requirement{Dir(GitDir)},
	}
}

// CustomPathsCheck requires each of paths to exist. Paths must be relative
// and stay inside the project root. A trailing slash requires a directory.
func CustomPathsCheck(paths []string) (Check, error) {
	reqs := make([]Requirement, 0, len(paths))
	for _, p := range paths {
		if err := common.ValidateRelativePath(p); err != nil {
			return Check{}, fmt.Errorf("invalid extra required path: %w", err)
		}
		cleaned := filepath.ToSlash(filepath.Clean(p))
		if strings.HasSuffix(p, "/") {
			reqs = append(reqs, Dir(cleaned))
		} else {
			reqs = append(reqs, Path(cleaned))
		}
	}

	return Check{
		Name:         CheckCustomPaths,
		Description:  "Project-specific required paths exist",
		Requirements: reqs,
	}, nil
}

// SuiteForProfile assembles the checks for a profile. Non-empty extra paths
// add a custom-paths check at the end.
func SuiteForProfile(profile string, extra []string) (*Suite, error) {
	var s *Suite
	switch profile {
	case ProfileMinimal:
		s = NewSuite(profile,
			FrameworkSetupCheck(),
			ProjectStructureCheck(),
			VersionFileCheck(),
		)
	case ProfileStandard:
		s = NewSuite(profile,
			FrameworkSetupCheck(),
			ProjectStructureCheck(),
			VersionFileCheck(),
			frameworkFilesCheck(),
			frameworkDirsCheck(),
			claudeDirectivesCheck(),
			gitIgnorePatternsCheck(),
			gitRepositoryCheck(),
		)
	default:
		return nil, fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownProfile, profile, strings.Join(Profiles(), ", "))
	}

	if len(extra) > 0 {
		c, err := CustomPathsCheck(extra)
		if err != nil {
			return nil, err
		}
		if err := s.Add(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// RequiredPaths returns every requirement of a suite, deduplicated by path,
// in first-seen order.
func RequiredPaths(s *Suite) []Requirement {
	seen := make(map[string]int)
	var out []Requirement
	for _, c := range s.Checks() {
		for _, req := range c.Requirements {
			if i, ok := seen[req.Path]; ok {
				// A stricter kind wins over KindAny.
				if out[i].Kind == KindAny {
					out[i].Kind = req.Kind
				}
				continue
			}
			seen[req.Path] = len(out)
			out = append(out, req)
		}
	}
	return out
}

func inspectClaudeDirectives(fs system.PathChecker, root string) error {
	data, err := fs.ReadFile(filepath.Join(root, ClaudeFile))
	if err != nil {
		return err
	}

	content := strings.ToLower(string(data))
	var missing []string
	for _, phrase := range ClaudeDirectives {
		if !strings.Contains(content, phrase) {
			missing = append(missing, fmt.Sprintf("%q", phrase))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s missing required phrase(s): %s", ClaudeFile, strings.Join(missing, ", "))
	}
	return nil
}

func inspectGitIgnore(fs system.PathChecker, root string) error {
	data, err := fs.ReadFile(filepath.Join(root, GitIgnoreFile))
	if err != nil {
		return err
	}

	content := strings.ToLower(string(data))
	for _, pattern := range AIToolPatterns {
		if strings.Contains(content, pattern) {
			return nil
		}
	}

	return fmt.Errorf("%s has none of the AI tool patterns (%s)", GitIgnoreFile, strings.Join(AIToolPatterns, ", "))
}
