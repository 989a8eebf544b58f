// Package version exposes build information injected with -ldflags.
package version

import "fmt"

var (
	// Version is the semantic version (e.g. "1.0.0")
	Version = "dev"

	// GitCommit is the short git commit hash
	GitCommit = "unknown"

	// BuildTime is the build timestamp in RFC3339 format
	BuildTime = "unknown"
)

// VersionInfo holds all version-related information
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func Info() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("innermost %s (commit %s, built %s)", v.Version, v.GitCommit, v.BuildTime)
}
