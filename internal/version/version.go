// Package version exposes the application name and build identifier.
package version

import (
	"fmt"
	"runtime/debug"
)

// AppName is the human readable service name
const AppName = "Tokopedia Client API"

// Build is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/tokoclient/backend/internal/version.Build=$(git rev-parse --short HEAD)"
var Build = ""

// BuildID returns the ldflags build id, falling back to the VCS revision
// recorded by the toolchain and finally to "dev".
func BuildID() string {
	if Build != "" {
		return Build
	}
	return fromBuildInfo(debug.ReadBuildInfo)
}

func fromBuildInfo(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return "dev"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "dev"
}

// Description is the plain-text self description, e.g. "Tokopedia Client API (build abc123)"
func Description(build string) string {
	return fmt.Sprintf("%s (build %s)", AppName, build)
}
