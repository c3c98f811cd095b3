// Package version reports the wifictrl build that is running.
//
// Release builds stamp Version and Commit through ldflags:
//
//	go build -ldflags="-X github.com/muurk/wifictrl/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/wifictrl/internal/version.Commit=abc123" ./cmd/wifictrl
//
// Unstamped builds (go install, go run) fall back to the VCS settings Go
// embeds in the binary, and finally to "dev" with a timestamp.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Version is the semantic version of wifictrl
	Version = ""
	// Commit is the git commit hash
	Commit = ""
	// GoVersion is the toolchain the binary was built with
	GoVersion = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info)
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// applyBuildInfo fills whatever ldflags left empty from the embedded build info
func applyBuildInfo(info *debug.BuildInfo) {
	if GoVersion == "" {
		GoVersion = info.GoVersion
	}

	// A tagged module version (go install ...@v1.2.3) beats a dev version
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision, modified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
		}
	}
}

// Full returns the version string with commit and toolchain
func Full() string {
	if GoVersion == "" {
		return fmt.Sprintf("%s (commit: %s)", Version, Commit)
	}
	return fmt.Sprintf("%s (commit: %s, %s)", Version, Commit, GoVersion)
}
