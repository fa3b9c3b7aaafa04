package cli

import (
	cmdpkg "github.com/berrythewa/copycopy/internal/cli/cmd"
)

// Execute runs the copycopy command line
func Execute() {
	cmdpkg.Execute()
}

// SetVersionInfo records build information printed by "copycopy version"
func SetVersionInfo(version, buildTime, commit string) {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}
