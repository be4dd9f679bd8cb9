// Package version holds build metadata for the tailcfg binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the current application version.
	// It should be populated by the build system (ldflags) or fall back to module build info.
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// Resolved returns Version, or the main module version recorded by the Go
// toolchain when no version was injected at link time.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// String formats the build metadata for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Resolved(), Commit, Date)
}
