// Package version reports which gprepo build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Release builds stamp these with -ldflags "-X gprepo/pkg/version.Version=...".
// Left at their defaults, Get falls back to what the Go toolchain embedded,
// so `go install gprepo@v1.2.3` still reports v1.2.3 and its revision.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// develVersion is what the toolchain records for a build from a checkout.
const develVersion = "(devel)"

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	Modified  bool // working tree had uncommitted changes at build time
	GoVersion string
	Platform  string
}

// Get returns the build information, preferring ldflags values.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != develVersion {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "none" {
				info.GitCommit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String renders the info on one line, e.g.
// gprepo version v1.2.3 (commit: 0123456789ab) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	commit := i.GitCommit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("gprepo version %s (commit: %s) built at %s with %s on %s",
		i.Version, commit, i.BuildTime, i.GoVersion, i.Platform)
}
