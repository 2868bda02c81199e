// Package version reports the build of the fixturekit CLI.
//
// Version, Commit and BuildTime are set at compile time via -ldflags;
// whatever is left empty is filled from the Go build info:
//
//	go build -ldflags "-X github.com/kbukum/fixturekit/version.Version=v0.4.0" ./cmd/fixturekit
package version
