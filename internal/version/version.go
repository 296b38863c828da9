// Package version holds build information, set via ldflags at release time.
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
