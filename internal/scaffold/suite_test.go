package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-first-sdlc/scaffold-check/internal/system"
)

// newProject creates a temp project root holding the given entries. Names
// ending in "/" become directories, everything else an empty file.
func newProject(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, e := range entries {
		path := filepath.Join(root, filepath.FromSlash(e))
		if e[len(e)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	return root
}

func minimalSuite(t *testing.T) *Suite {
	t.Helper()
	s, err := SuiteForProfile(ProfileMinimal, nil)
	require.NoError(t, err)
	return s
}

func TestMinimalProfile(t *testing.T) {
	v := NewVerifier(system.NewFileSystem(), nil)

	t.Run("complete scaffold passes every check", func(t *testing.T) {
		root := newProject(t, "docs/", "retrospectives/", "CLAUDE.md", "VERSION")

		report := v.Run(root, minimalSuite(t))

		require.Len(t, report.Results, 3)
		assert.True(t, report.OK())
		assert.Equal(t, 3, report.Passed())
		assert.Equal(t, 0, report.Failed())
		for _, res := range report.Results {
			assert.Equal(t, StatusPass, res.Status, res.Check.Name)
			assert.Empty(t, res.Message)
		}
	})

	t.Run("missing VERSION fails only version-file", func(t *testing.T) {
		root := newProject(t, "docs/", "retrospectives/", "CLAUDE.md")

		report := v.Run(root, minimalSuite(t))

		assert.False(t, report.OK())
		assert.Equal(t, 1, report.Failed())

		res, ok := report.Result(CheckVersionFile)
		require.True(t, ok)
		assert.Equal(t, StatusFail, res.Status)
		assert.Equal(t, []string{VersionFile}, res.Missing)
		assert.Contains(t, res.Message, "VERSION")

		for _, name := range []string{CheckFrameworkSetup, CheckProjectStructure} {
			res, ok := report.Result(name)
			require.True(t, ok)
			assert.Equal(t, StatusPass, res.Status, name)
		}
	})

	t.Run("each missing structure path is named", func(t *testing.T) {
		for _, missing := range []string{DocsDir, RetrospectivesDir, ClaudeFile} {
			t.Run(missing, func(t *testing.T) {
				var entries []string
				for _, e := range []string{"docs/", "retrospectives/", "CLAUDE.md", "VERSION"} {
					if filepath.Clean(e) != missing {
						entries = append(entries, e)
					}
				}
				root := newProject(t, entries...)

				report := v.Run(root, minimalSuite(t))

				res, _ := report.Result(CheckProjectStructure)
				assert.Equal(t, StatusFail, res.Status)
				assert.Equal(t, []string{missing}, res.Missing)
				assert.Contains(t, res.Message, missing)

				res, _ = report.Result(CheckVersionFile)
				assert.Equal(t, StatusPass, res.Status)
			})
		}
	})

	t.Run("framework-setup passes on an empty directory", func(t *testing.T) {
		root := newProject(t)

		report := v.Run(root, minimalSuite(t))

		res, ok := report.Result(CheckFrameworkSetup)
		require.True(t, ok)
		assert.Equal(t, StatusPass, res.Status)
		assert.Equal(t, 2, report.Failed())

		structure, _ := report.Result(CheckProjectStructure)
		assert.Equal(t, []string{DocsDir, RetrospectivesDir, ClaudeFile}, structure.Missing)
	})

	t.Run("presence checks accept any entry kind", func(t *testing.T) {
		// docs as a file and VERSION as a directory still exist
		root := newProject(t, "docs", "retrospectives/", "CLAUDE.md", "VERSION/")

		report := v.Run(root, minimalSuite(t))
		assert.True(t, report.OK())
	})
}

func TestRunIsIdempotent(t *testing.T) {
	v := NewVerifier(system.NewFileSystem(), nil)
	root := newProject(t, "docs/", "CLAUDE.md")

	before, err := os.ReadDir(root)
	require.NoError(t, err)

	first := v.Run(root, minimalSuite(t))
	second := v.Run(root, minimalSuite(t))

	require.Len(t, second.Results, len(first.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Status, second.Results[i].Status)
		assert.Equal(t, first.Results[i].Missing, second.Results[i].Missing)
		assert.Equal(t, first.Results[i].Message, second.Results[i].Message)
	}
	assert.NotEqual(t, first.RunID, second.RunID)

	after, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "verification must not write to the project")
}

func TestStatErrorFailsCheck(t *testing.T) {
	mock := system.NewMockFileSystem()
	require.NoError(t, mock.EnsureDirectory("/proj/docs", 0755))
	require.NoError(t, mock.EnsureDirectory("/proj/retrospectives", 0755))
	require.NoError(t, mock.WriteFile("/proj/CLAUDE.md", nil, 0644, false))
	mock.StatErrors["/proj/VERSION"] = os.ErrPermission

	report := NewVerifier(mock, nil).Run("/proj", minimalSuite(t))

	res, _ := report.Result(CheckVersionFile)
	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, []string{VersionFile}, res.Missing)
	assert.Contains(t, res.Message, "cannot check VERSION")

	res, _ = report.Result(CheckProjectStructure)
	assert.Equal(t, StatusPass, res.Status)
}

func TestKindMismatch(t *testing.T) {
	root := newProject(t, "README.md/", "CLAUDE.md")
	check := frameworkFilesCheck()

	res := NewVerifier(system.NewFileSystem(), nil).RunCheck(root, check)

	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, []string{ReadmeFile}, res.Missing)
	assert.Contains(t, res.Message, "README.md (not a file)")
}

func TestInspectRunsOnlyWhenRequirementsPresent(t *testing.T) {
	calls := 0
	check := Check{
		Name:         "inspected",
		Requirements: []Requirement{File(VersionFile)},
		Inspect: func(fs system.PathChecker, root string) error {
			calls++
			return errors.New("VERSION is empty")
		},
	}
	v := NewVerifier(system.NewFileSystem(), nil)

	res := v.RunCheck(newProject(t), check)
	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, 0, calls)

	res = v.RunCheck(newProject(t, "VERSION"), check)
	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, "VERSION is empty", res.Message)
	assert.Equal(t, 1, calls)
}

func TestSuiteAdd(t *testing.T) {
	s := NewSuite("custom", FrameworkSetupCheck())

	require.NoError(t, s.Add(VersionFileCheck()))
	assert.Error(t, s.Add(VersionFileCheck()), "duplicate names are rejected")
	assert.Error(t, s.Add(Check{}), "empty names are rejected")

	assert.Equal(t, []string{CheckFrameworkSetup, CheckVersionFile}, s.Names())

	_, ok := s.Lookup(CheckVersionFile)
	assert.True(t, ok)
	_, ok = s.Lookup(CheckGitRepository)
	assert.False(t, ok)

	assert.Panics(t, func() { NewSuite("dup", FrameworkSetupCheck(), FrameworkSetupCheck()) })
}
