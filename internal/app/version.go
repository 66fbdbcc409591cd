package app

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/realty-crm/internal/app.Version=1.2.0 -X github.com/heartmarshall/realty-crm/internal/app.Commit=$(git rev-parse --short HEAD)"
//
// Without ldflags the commit and build time come from the VCS stamp the Go
// toolchain embeds, when there is one.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by the startup log and the /health endpoint.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromBuildSettings(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// fromBuildSettings fills values still at "unknown" from the embedded vcs
// settings. A dirty tree is flagged on the commit.
func fromBuildSettings(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, vcsTime string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if commit == "unknown" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		commit = revision
		if dirty {
			commit += "-dirty"
		}
	}
	if built == "unknown" && vcsTime != "" {
		built = vcsTime
	}
	return commit, built
}
