package version

import "fmt"

var (
	// Version is the current version of the budget planner
	Version = "0.1.0"

	// GitCommit is the git commit hash, injected at build time
	GitCommit string

	// BuildTime is the build timestamp, injected at build time
	BuildTime string
)

// String returns the full version string
func String() string {
	if len(GitCommit) >= 8 && BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit[:8], BuildTime)
	}
	return Version
}
