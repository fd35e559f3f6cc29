// Package scaffoldtest runs the AI-First SDLC scaffold checks from Go tests.
//
// A project installs the framework by adding a test such as:
//
//	func TestScaffold(t *testing.T) {
//		scaffoldtest.FrameworkSetup(t)
//		scaffoldtest.ProjectStructure(t, "..")
//		scaffoldtest.VersionFile(t, "..")
//	}
//
// Every helper reports failures through t.Errorf, naming each missing path,
// and returns whether its check passed. An empty root means the working
// directory of the test.
package scaffoldtest

import (
	"testing"

	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
	"github.com/ai-first-sdlc/scaffold-check/internal/system"
)

func rootOrDefault(root string) string {
	if root == "" {
		return "."
	}
	return root
}

func run(t testing.TB, root string, c scaffold.Check) bool {
	t.Helper()
	res := scaffold.NewVerifier(system.NewFileSystem(), nil).RunCheck(rootOrDefault(root), c)
	report(t, res)
	return res.Passed()
}

func report(t testing.TB, res scaffold.Result) {
	t.Helper()
	switch res.Status {
	case scaffold.StatusFail:
		t.Errorf("%s: %s", res.Check.Name, res.Message)
	case scaffold.StatusWarn:
		t.Logf("warning: %s: %s", res.Check.Name, res.Message)
	}
}

// FrameworkSetup always passes. It shows the test harness itself runs.
func FrameworkSetup(t testing.TB) bool {
	t.Helper()
	return run(t, "", scaffold.FrameworkSetupCheck())
}

// ProjectStructure fails unless docs, retrospectives and CLAUDE.md exist
// under root.
func ProjectStructure(t testing.TB, root string) bool {
	t.Helper()
	return run(t, root, scaffold.ProjectStructureCheck())
}

// VersionFile fails unless VERSION exists under root.
func VersionFile(t testing.TB, root string) bool {
	t.Helper()
	return run(t, root, scaffold.VersionFileCheck())
}

// Require runs every check of a profile. Failed checks are reported with
// t.Errorf and warnings with t.Logf; an unknown profile is fatal.
func Require(t testing.TB, root, profile string) bool {
	t.Helper()

	suite, err := scaffold.SuiteForProfile(profile, nil)
	if err != nil {
		t.Fatalf("scaffold profile: %v", err)
		return false
	}

	r := scaffold.NewVerifier(system.NewFileSystem(), nil).Run(rootOrDefault(root), suite)
	for _, res := range r.Results {
		report(t, res)
	}
	return r.OK()
}
