// Package version carries the build metadata stamped into the gitxray
// binary at link time via -ldflags.
package version

import "fmt"

// Build metadata. Overridden at release time with
// -ldflags "-X .../pkg/version.Version=v1.2.3 ...".
var (
	// Version is the semantic version of the binary.
	Version = "v0.1.0"

	// Commit is the short hash of the commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return fmt.Sprintf("gitxray %s (commit: %s, built: %s)", Version, Commit, Date)
}
