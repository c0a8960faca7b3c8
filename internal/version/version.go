// Package version provides version information for closewatch.
package version

// Version is the closewatch version. Overridden at build time via ldflags.
var Version = "development"

// Commit is the git commit hash. Overridden at build time via ldflags.
var Commit = "unknown"

// String returns the version, with the commit hash appended when known.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}
