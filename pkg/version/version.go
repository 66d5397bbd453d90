// Package version exposes build information about the binary.
package version

import (
	"runtime"
	"runtime/debug"
)

// version is the version number of the application, set at build time via
// -ldflags "-X github.com/wnzid/SQLparser/pkg/version.version=...".
var version string

// Version returns the version number of the application.
func Version() string {
	if version == "" {
		return "(devel)"
	}
	return version
}

// GoVersion returns the version of Go used to build the application.
func GoVersion() string {
	return runtime.Version()
}

func readBuildSetting(key string) string {
	bi, _ := debug.ReadBuildInfo()
	if bi == nil {
		return ""
	}
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}
	return ""
}

// Revision returns the VCS revision of the code the application was built
// from.
func Revision() string {
	return readBuildSetting("vcs.revision")
}

// LocalModified returns whether the build contains uncommitted changes.
func LocalModified() bool {
	return readBuildSetting("vcs.modified") == "true"
}
