// Package version exposes the build metadata stamped into chunkexport binaries.
package version

import (
	"fmt"
	"runtime"
)

// Release builds overwrite these with -ldflags, for example
// -X 'chunkexport/pkg/version.Version=1.2.3'. Local builds report the defaults.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// AppName is the name reported in logs and version output.
const AppName = "chunkexport"

// Info is a snapshot of the build metadata plus the runtime it runs on.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get collects the stamped metadata and the current runtime details.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders Info as the one-line banner printed by `chunkexport version`.
func (i Info) String() string {
	return fmt.Sprintf(
		"%s version %s (commit: %s) built at %s with %s on %s",
		AppName,
		i.Version,
		i.GitCommit,
		i.BuildTime,
		i.GoVersion,
		i.Platform,
	)
}
