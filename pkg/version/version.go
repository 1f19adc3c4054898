// Package version reports the library version and build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the library version. Overridden at build time via
// -ldflags "-X github.com/stepsim/actuation-go/pkg/version.Version=...".
var Version = "0.1.0-dev"

// Info describes the running build.
type Info struct {
	// Version is the library version string.
	Version string

	// GoVersion is the Go toolchain that built the binary.
	GoVersion string

	// Revision is the VCS revision, when embedded in the build.
	Revision string

	// Modified reports whether the build tree had local modifications.
	Modified bool
}

// Get returns the build information for the running binary.
func Get() Info {
	info := Info{Version: Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

// String returns a one-line human-readable description of the build.
func (i Info) String() string {
	s := i.Version
	if i.Revision != "" {
		rev := i.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		s = fmt.Sprintf("%s (%s", s, rev)
		if i.Modified {
			s += "+dirty"
		}
		s += ")"
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}
