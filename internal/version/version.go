// Package version implements the version() core operation (spec.md §4,
// §6.2): a static description of the running build and the configuration
// schema/years it understands. Grounded on the simple version-string
// constants the teacher's cmd/rpgo/main.go prints on --version.
package version

import "github.com/taxglide/taxglide/internal/domain"

// These are overridden at build time via -ldflags, matching the teacher's
// cmd/rpgo version-stamping convention.
var (
	Version       = "dev"
	SchemaVersion = "2025.1"
)

// SupportedYears lists the configuration years this build can load. It
// grows as testdata/config_<year>.yaml files are added.
var SupportedYears = []int{2025}

// Info returns the version() core operation's result.
func Info() domain.VersionInfo {
	years := make([]int, len(SupportedYears))
	copy(years, SupportedYears)
	return domain.VersionInfo{
		Version:        Version,
		SchemaVersion:  SchemaVersion,
		SupportedYears: years,
	}
}
