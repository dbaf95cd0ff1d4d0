// Package version exposes the SDK release version and the User-Agent
// string the client sends.
//
// Version is set at release time via -ldflags:
//
//	go build -ldflags "-X github.com/loppen/marketplace-go/version.Version=1.2.0"
package version
