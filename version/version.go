// Package version holds build metadata injected at link time.
package version

import "fmt"

// Populated via -ldflags at build time, e.g.
//
//	go build -ldflags "-X vsplit/version.Version=v1.2.0 \
//	  -X vsplit/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X vsplit/version.BuildDate=$(date -u +%Y-%m-%d)"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the short version string.
func String() string {
	return Version
}

// Info returns the full version description.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
