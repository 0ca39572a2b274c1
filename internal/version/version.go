// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "2.0.0"
	Commit  = "unknown"
	Date    = "unknown"
)
