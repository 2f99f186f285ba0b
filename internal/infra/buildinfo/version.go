package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Stamped by release builds via -ldflags -X. Left at these defaults the
// binary reports "dev" plus whatever VCS metadata the toolchain embedded.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders a single version line for --version output and startup
// logs. Commit and date fall back to the VCS settings recorded by the Go
// toolchain when they were not stamped at build time.
func String() string {
	version, commit, date := Version, Commit, Date

	if info, ok := debug.ReadBuildInfo(); ok {
		var dirty bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if date == "" {
					date = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
		if dirty {
			version += "+dirty"
		}
	}

	var b strings.Builder
	b.WriteString(version)
	if commit != "" {
		if len(commit) > 12 {
			commit = commit[:12]
		}
		b.WriteString(" (")
		b.WriteString(commit)
		b.WriteString(")")
	}
	if date != "" {
		b.WriteString(" built ")
		b.WriteString(date)
	}
	return b.String()
}
