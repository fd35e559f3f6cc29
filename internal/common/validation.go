package common

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ValidateRelativePath validates that a path is relative and stays inside the
// project root
func ValidateRelativePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if filepath.IsAbs(path) {
		return fmt.Errorf("path must be relative to the project root: %s", path)
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." {
		return fmt.Errorf("path must name an entry inside the project root: %s", path)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path escapes the project root: %s", path)
	}

	return nil
}

// ValidateVersion validates a semantic version (MAJOR.MINOR.PATCH with an
// optional -prerelease and +build suffix)
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}

	core := version
	if i := strings.IndexByte(core, '+'); i >= 0 {
		if i == len(core)-1 {
			return fmt.Errorf("empty build metadata in version: %s", version)
		}
		core = core[:i]
	}
	if i := strings.IndexByte(core, '-'); i >= 0 {
		if i == len(core)-1 {
			return fmt.Errorf("empty pre-release in version: %s", version)
		}
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return fmt.Errorf("version must be MAJOR.MINOR.PATCH: %s", version)
	}

	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("empty version component: %s", version)
		}
		if len(part) > 1 && part[0] == '0' {
			return fmt.Errorf("version component has a leading zero: %s", version)
		}
		if _, err := strconv.ParseUint(part, 10, 64); err != nil {
			return fmt.Errorf("version component is not numeric: %s", version)
		}
	}

	return nil
}

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateOneOf validates that value is one of the allowed choices
func ValidateOneOf(kind, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q (expected one of: %s)", kind, value, strings.Join(allowed, ", "))
}
