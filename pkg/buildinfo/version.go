// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/birch/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/birch/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/birch/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/birch
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the short git SHA.
	Commit = "none"
	// Date is the UTC build time.
	Date = "unknown"
)

// String returns the build information on one line.
func String() string {
	return fmt.Sprintf("birch %s (%s, built %s)", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt:  %s\n", Version, Commit, Date)
}
