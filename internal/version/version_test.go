package version

import (
	"runtime/debug"
	"testing"
)

func resetVersion(t *testing.T) {
	t.Helper()
	v, c, g := Version, Commit, GoVersion
	Version, Commit, GoVersion = "", "", ""
	t.Cleanup(func() { Version, Commit, GoVersion = v, c, g })
}

func TestApplyBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name: "tagged module",
			info: debug.BuildInfo{
				GoVersion: "go1.24.10",
				Main:      debug.Module{Version: "v0.3.0"},
				Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			},
			wantVersion: "v0.3.0",
			wantCommit:  "0123456",
		},
		{
			name: "dirty checkout",
			info: debug.BuildInfo{
				GoVersion: "go1.24.10",
				Main:      debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abcdef0123"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
				},
			},
			wantVersion: "dev-20261001",
			wantCommit:  "abcdef0-dirty",
		},
		{
			name:        "no vcs",
			info:        debug.BuildInfo{GoVersion: "go1.24.10"},
			wantVersion: "",
			wantCommit:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetVersion(t)
			applyBuildInfo(&tt.info)

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
			if GoVersion != "go1.24.10" {
				t.Errorf("GoVersion = %q", GoVersion)
			}
		})
	}
}

func TestApplyBuildInfo_KeepsLdflags(t *testing.T) {
	resetVersion(t)
	Version, Commit = "v1.2.3", "abc123"

	applyBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.0.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
	})

	if Version != "v1.2.3" || Commit != "abc123" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}

func TestFull(t *testing.T) {
	resetVersion(t)
	Version, Commit = "v1.2.3", "abc123"

	if got := Full(); got != "v1.2.3 (commit: abc123)" {
		t.Errorf("Full() = %q", got)
	}

	GoVersion = "go1.24.10"
	if got := Full(); got != "v1.2.3 (commit: abc123, go1.24.10)" {
		t.Errorf("Full() = %q", got)
	}
}
