package system

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FindGitRoot returns the top-level directory of the git work tree that
// contains dir.
func FindGitRoot(runner CommandRunner, dir string) (string, error) {
	output, err := runner.Run("git", "-C", dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to resolve git root for %s: %w\nOutput: %s", dir, err, strings.TrimSpace(output))
	}

	root := strings.TrimSpace(output)
	if root == "" {
		return "", fmt.Errorf("git returned an empty work tree path for %s", dir)
	}

	return filepath.Clean(root), nil
}
