// Package misc keeps build time program identification.
package misc

// Set by the linker: -X cssbc/misc.version=... -X cssbc/misc.gitHash=...
var (
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return "cssbc"
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
