package cli

import (
	"io/fs"
	"path/filepath"

	"github.com/ai-first-sdlc/scaffold-check/internal/config"
	"github.com/ai-first-sdlc/scaffold-check/internal/report"
	"github.com/ai-first-sdlc/scaffold-check/internal/scaffold"
)

// describeMode names the kind of entry found at a scaffold path
func describeMode(mode fs.FileMode) string {
	switch {
	case mode&fs.ModeSymlink != 0:
		return "symlink"
	case mode.IsDir():
		return "directory"
	case mode.IsRegular():
		return "file"
	default:
		return "other"
	}
}

// ShowStatus prints the state of every check and required path of a
// profile. Missing paths are reported, never returned as errors.
func (c *SetupContext) ShowStatus(profileFlag string) error {
	suite, err := scaffold.SuiteForProfile(c.Profile(profileFlag), c.Config.GetList(config.KeyExtraRequiredPaths))
	if err != nil {
		return err
	}

	c.UI.Header("Scaffold Status")
	c.UI.Infof("Project root: %s", c.Root)
	c.UI.Infof("Profile: %s", suite.Profile)

	r := scaffold.NewVerifier(c.FS, c.Log).Run(c.Root, suite)

	c.UI.Step("Checks")
	for _, res := range r.Results {
		switch res.Status {
		case scaffold.StatusPass:
			c.UI.CheckPassed(res.Check.Name)
		case scaffold.StatusWarn:
			c.UI.CheckWarned(res.Check.Name, res.Message)
		default:
			c.UI.CheckFailed(res.Check.Name, res.Message)
		}
	}

	c.UI.Step("Required Paths")
	for _, req := range scaffold.RequiredPaths(suite) {
		mode, err := c.FS.Mode(filepath.Join(c.Root, filepath.FromSlash(req.Path)))
		if err != nil {
			c.UI.Printf("  - %-28s missing", req.Path)
			continue
		}
		c.UI.Printf("  - %-28s %s", req.Path, describeMode(mode))
	}

	if entries, err := c.FS.ListDirectory(filepath.Join(c.Root, scaffold.RetrospectivesDir)); err == nil {
		n := 0
		for _, name := range entries {
			if name != ".gitkeep" {
				n++
			}
		}
		c.UI.Print("")
		c.UI.Infof("Retrospectives recorded: %d", n)
	}

	c.UI.Print("")
	c.UI.Separator()
	c.UI.Infof("Summary: %s", report.Summary(r))

	if exists, err := c.FS.FileExists(c.Config.FilePath()); err == nil && exists {
		c.UI.Infof("Configuration file: %s", c.Config.FilePath())
	} else {
		c.UI.Infof("Configuration file: %s (not created, using defaults)", c.Config.FilePath())
	}

	return nil
}
