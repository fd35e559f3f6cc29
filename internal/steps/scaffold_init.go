package steps

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ai-first-sdlc/scaffold-check/internal/common"
	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
	"github.com/ai-first-sdlc/scaffold-check/internal/system"
	"github.com/ai-first-sdlc/scaffold-check/internal/templates"
	"github.com/ai-first-sdlc/scaffold-check/internal/ui"
)

// InitOptions controls scaffold installation
type InitOptions struct {
	Root       string
	Profile    string
	ExtraPaths []string
	Version    string // content of VERSION; prompted for when empty
	Language   string // framework test template to install; empty for none
	AssumeYes  bool   // create every missing path without asking
}

// PlannedEntry is a missing scaffold path and how it will be created
type PlannedEntry struct {
	Path  string
	IsDir bool
}

func (p PlannedEntry) String() string {
	if p.IsDir {
		return p.Path + "/"
	}
	return p.Path
}

// ScaffoldInstaller creates missing scaffold paths in a project
type ScaffoldInstaller struct {
	fs  system.FileSystemManager
	ui  *ui.UI
	log *zap.Logger
}

// NewScaffoldInstaller creates a new ScaffoldInstaller instance
func NewScaffoldInstaller(fs system.FileSystemManager, u *ui.UI, log *zap.Logger) *ScaffoldInstaller {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScaffoldInstaller{fs: fs, ui: u, log: log}
}

// knownDirs are framework directories that a check may only require to exist
var knownDirs = map[string]bool{
	scaffold.DocsDir:             true,
	scaffold.FeatureProposalsDir: true,
	scaffold.RetrospectivesDir:   true,
}

// isDirRequirement reports whether a missing path is created as a directory.
// Anything not required as one, or known as one, is created as a file.
func isDirRequirement(req scaffold.Requirement) bool {
	return req.Kind == scaffold.KindDir || (req.Kind == scaffold.KindAny && knownDirs[req.Path])
}

// Plan lists the required paths of a suite that are missing under root.
// The git directory is never planned; it belongs to git init.
func (s *ScaffoldInstaller) Plan(root string, suite *scaffold.Suite) ([]PlannedEntry, error) {
	var plan []PlannedEntry
	for _, req := range scaffold.RequiredPaths(suite) {
		if req.Path == scaffold.GitDir {
			continue
		}

		exists, err := s.fs.PathExists(filepath.Join(root, filepath.FromSlash(req.Path)))
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		plan = append(plan, PlannedEntry{Path: req.Path, IsDir: isDirRequirement(req)})
	}
	return plan, nil
}

// stubContent returns the initial content for a scaffold file
func stubContent(root, path, version string) []byte {
	switch path {
	case scaffold.ClaudeFile:
		return []byte(claudeStub)
	case scaffold.ReadmeFile:
		return []byte(fmt.Sprintf("# %s\n\nThis project follows the AI-First SDLC framework.\n", filepath.Base(root)))
	case scaffold.VersionFile:
		return []byte(version + "\n")
	case scaffold.GitIgnoreFile:
		var b strings.Builder
		b.WriteString("# AI tool state\n")
		for _, p := range scaffold.AIToolPatterns {
			b.WriteString(p + "/\n")
		}
		return []byte(b.String())
	default:
		return nil
	}
}

const claudeStub = `# CLAUDE.md

This file guides AI development in this repository.

## Git workflow

- Never push directly to main. Work on a feature branch and open a pull request.
- Write a feature proposal in docs/feature-proposals/ before starting a feature.
- Add a retrospective in retrospectives/ when the feature is complete.
- Bump VERSION when a release is cut.
`

// CreateEntry creates one planned path. Directories get a .gitkeep so git
// tracks them while empty.
func (s *ScaffoldInstaller) CreateEntry(root string, entry PlannedEntry, version string) error {
	path := filepath.Join(root, filepath.FromSlash(entry.Path))

	if entry.IsDir {
		if err := s.fs.EnsureDirectory(path, 0755); err != nil {
			return err
		}
		keep := filepath.Join(path, ".gitkeep")
		if err := s.fs.WriteFile(keep, nil, 0644, false); err != nil && !errors.Is(err, system.ErrFileExists) {
			return err
		}
		return nil
	}

	return s.fs.WriteFile(path, stubContent(root, entry.Path, version), 0644, false)
}

// InstallTemplate writes the framework test for a language. An existing
// file is left untouched.
func (s *ScaffoldInstaller) InstallTemplate(root, language string) error {
	tmpl, err := templates.Lookup(language)
	if err != nil {
		return err
	}

	path := filepath.Join(root, filepath.FromSlash(tmpl.Target))
	if err := s.fs.WriteFile(path, tmpl.Content, 0644, false); err != nil {
		if errors.Is(err, system.ErrFileExists) {
			s.ui.Warningf("%s already exists, leaving it unchanged", tmpl.Target)
			return nil
		}
		return fmt.Errorf("failed to install %s template: %w", language, err)
	}

	s.ui.Successf("  ✓ Installed %s framework test: %s", language, tmpl.Target)
	return nil
}

// selectEntries lets the user choose which planned entries to create
func (s *ScaffoldInstaller) selectEntries(plan []PlannedEntry, assumeYes bool) ([]PlannedEntry, error) {
	if assumeYes {
		return plan, nil
	}

	options := make([]string, len(plan))
	for i, entry := range plan {
		options[i] = entry.String()
	}

	indices, err := s.ui.PromptMultiSelect("Paths to create", options)
	if err != nil {
		return nil, fmt.Errorf("failed to prompt for paths: %w", err)
	}

	selected := make([]PlannedEntry, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(plan) {
			selected = append(selected, plan[idx])
		}
	}
	return selected, nil
}

// resolveVersion returns a validated VERSION value, prompting when none was given
func (s *ScaffoldInstaller) resolveVersion(version string) (string, error) {
	if version != "" {
		if err := common.ValidateVersion(version); err != nil {
			return "", fmt.Errorf("invalid version: %w", err)
		}
		return version, nil
	}
	return s.ui.PromptInputWithValidation("Initial project version", "0.1.0", common.ValidateVersion)
}

// Run installs the missing scaffold and verifies the result. It returns the
// paths it created.
func (s *ScaffoldInstaller) Run(opts InitOptions) ([]string, error) {
	suite, err := scaffold.SuiteForProfile(opts.Profile, opts.ExtraPaths)
	if err != nil {
		return nil, err
	}

	s.ui.Header("Scaffold Installation")
	s.ui.Infof("Project root: %s", opts.Root)
	s.ui.Infof("Profile: %s", suite.Profile)

	s.ui.Step("Checking Existing Scaffold")
	plan, err := s.Plan(opts.Root, suite)
	if err != nil {
		return nil, fmt.Errorf("failed to plan scaffold: %w", err)
	}

	var created []string
	if len(plan) == 0 {
		s.ui.Success("All scaffold paths already exist")
	} else {
		s.ui.Infof("%d scaffold path(s) missing:", len(plan))
		for _, entry := range plan {
			s.ui.Printf("  - %s", entry)
		}

		s.ui.Step("Select Paths to Create")
		selected, err := s.selectEntries(plan, opts.AssumeYes)
		if err != nil {
			return nil, err
		}

		version := ""
		for _, entry := range selected {
			if entry.Path == scaffold.VersionFile {
				if version, err = s.resolveVersion(opts.Version); err != nil {
					return nil, err
				}
			}
		}

		s.ui.Step("Creating Scaffold")
		for _, entry := range selected {
			if err := s.CreateEntry(opts.Root, entry, version); err != nil {
				return created, fmt.Errorf("failed to create %s: %w", entry, err)
			}
			s.log.Debug("created scaffold entry", zap.String("path", entry.Path), zap.Bool("dir", entry.IsDir))
			s.ui.Successf("  ✓ Created %s", entry)
			created = append(created, entry.Path)
		}
	}

	if opts.Language != "" {
		s.ui.Step("Framework Test")
		if err := s.InstallTemplate(opts.Root, opts.Language); err != nil {
			return created, err
		}
	}

	s.ui.Step("Verification")
	r := scaffold.NewVerifier(s.fs, s.log).Run(opts.Root, suite)
	displayResults(s.ui, r)

	s.ui.Print("")
	s.ui.Separator()
	if !r.OK() {
		s.ui.Warningf("Scaffold is still incomplete (%d failing check(s))", r.Failed())
		if res, ok := r.Result(scaffold.CheckGitRepository); ok && !res.Passed() {
			s.ui.Info("Initialize the repository with: git init")
		}
		return created, nil
	}

	s.ui.Success("✓ Scaffold installed successfully")
	return created, nil
}
