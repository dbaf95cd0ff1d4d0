package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the SDK release, set at build time via -ldflags. It falls
// back to the module version from build info, then "dev".
var Version = "dev"

// String returns the effective SDK version.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/loppen/marketplace-go" {
				return dep.Version
			}
		}
	}
	return Version
}

// UserAgent returns the User-Agent header the client sends,
// e.g. "marketplace-go/1.2.0".
func UserAgent() string {
	return fmt.Sprintf("marketplace-go/%s", String())
}
