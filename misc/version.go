// Package misc keeps build time information.
package misc

// Set with -ldflags "-X stylekit/misc.version=... -X stylekit/misc.gitHash=...".
var (
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name.
func GetAppName() string {
	return "stylekit"
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git hash program was built from.
func GetGitHash() string {
	return gitHash
}
