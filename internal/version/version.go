// Package version reports build metadata for the stylish binary.
package version

import "runtime/debug"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "" // -X github.com/dkoosis/stylish/internal/version.Version=v1.2.3
	CommitHash = ""
	BuildDate  = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get resolves build metadata.
// Priority: ldflags > debug.ReadBuildInfo > placeholder.
func Get() Info {
	info := Info{Version: Version, Commit: CommitHash, Date: BuildDate}

	bi, ok := debug.ReadBuildInfo()
	if info.Version == "" {
		info.Version = "(devel)"
		if ok && bi.Main.Version != "" {
			info.Version = bi.Main.Version
		}
	}
	if info.Commit == "" {
		info.Commit = buildSetting(bi, ok, "vcs.revision")
		if len(info.Commit) > 7 {
			info.Commit = info.Commit[:7]
		}
	}
	if info.Date == "" {
		info.Date = buildSetting(bi, ok, "vcs.time")
	}
	return info
}

func buildSetting(bi *debug.BuildInfo, ok bool, key string) string {
	if ok {
		for _, s := range bi.Settings {
			if s.Key == key && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}
