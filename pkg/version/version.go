// Package version reports the scaffold-check build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/ai-first-sdlc/scaffold-check/pkg/version.Version=..."
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// readBuildInfo is replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// resolved fills values left unset by ldflags from the module build info,
// which `go install module@version` records.
func resolved() (ver, commit, date string) {
	ver, commit, date = Version, GitCommit, BuildDate

	info, ok := readBuildInfo()
	if !ok {
		return
	}
	if ver == "0.1.0-dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" {
				commit = s.Value
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
	return
}

// Info returns formatted version information
func Info() string {
	ver, commit, date := resolved()
	return fmt.Sprintf("scaffold-check version %s (commit: %s, built: %s)", ver, commit, date)
}

// Short returns just the version number
func Short() string {
	ver, _, _ := resolved()
	return ver
}
