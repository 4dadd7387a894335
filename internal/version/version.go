package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/translit/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/translit/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/translit/internal/version.Date={{.Date}}
)

// String returns the multi-line build info printed by `translit version`
func String() string {
	return fmt.Sprintf("translit version %s\n  commit: %s\n  built:  %s", Version, Commit, Date)
}
