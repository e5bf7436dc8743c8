// Package buildinfo carries version strings stamped in at link time:
//
//	go build -ldflags "-X github.com/cleared-dev/buy/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
