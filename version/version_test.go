package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func stubBuild(t *testing.T, version, commit, buildTime string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBuildTime, origRead := Version, Commit, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, BuildTime, readBuildInfo = origVersion, origCommit, origBuildTime, origRead
	})
	Version, Commit, BuildTime = version, commit, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return bi, bi != nil
	}
}

func TestGetDefaults(t *testing.T) {
	stubBuild(t, "dev", "", "", nil)

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease() {
		t.Error("dev should not be a release")
	}
	if !info.BuildTime.IsZero() {
		t.Errorf("expected zero build time, got %v", info.BuildTime)
	}
	if got := info.String(); got != "fixturekit dev" {
		t.Errorf("String() = %q", got)
	}
}

func TestGetFromLdflags(t *testing.T) {
	stubBuild(t, "v0.4.0", "1a2b3c4d5e6f", "2026-03-04T09:30:00Z", &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "ffffffffffff"},
			{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
		},
	})

	info := Get()
	if info.Version != "v0.4.0" {
		t.Errorf("expected ldflags version, got %q", info.Version)
	}
	if info.Commit != "1a2b3c4" {
		t.Errorf("expected truncated ldflags commit, got %q", info.Commit)
	}
	want := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	if !info.BuildTime.Equal(want) {
		t.Errorf("expected build time %v, got %v", want, info.BuildTime)
	}
	if !info.IsRelease() {
		t.Error("v0.4.0 should be a release")
	}
	if got := info.String(); got != "fixturekit v0.4.0-1a2b3c4 go1.26.0 (built 2026-03-04T09:30:00Z)" {
		t.Errorf("String() = %q", got)
	}
}

func TestGetFromBuildInfo(t *testing.T) {
	stubBuild(t, "dev", "", "", &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Version: "v0.5.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456789"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-05-06T07:08:09Z"},
		},
	})

	info := Get()
	if info.Version != "v0.5.1" {
		t.Errorf("expected module version, got %q", info.Version)
	}
	if info.Commit != "abcdef0" {
		t.Errorf("expected 'abcdef0', got %q", info.Commit)
	}
	if !info.Dirty {
		t.Error("expected dirty build")
	}
	if info.IsRelease() {
		t.Error("dirty build should not be a release")
	}
	if got := info.Short(); got != "v0.5.1-abcdef0-dirty" {
		t.Errorf("Short() = %q", got)
	}
	if info.BuildTime.Year() != 2026 {
		t.Errorf("expected vcs build time, got %v", info.BuildTime)
	}
}

func TestGetIgnoresDevelModule(t *testing.T) {
	stubBuild(t, "dev", "", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	if got := Get().Version; got != "dev" {
		t.Errorf("expected 'dev', got %q", got)
	}
}

func TestFields(t *testing.T) {
	info := Info{Version: "v1.0.0", Commit: "1234567", GoVersion: "go1.26.0"}
	fields := info.Fields()
	if fields["version"] != "v1.0.0-1234567" {
		t.Errorf("unexpected version field: %v", fields["version"])
	}
	if fields["release"] != true {
		t.Errorf("expected release=true, got %v", fields["release"])
	}
	if !strings.HasPrefix(info.String(), "fixturekit v1.0.0") {
		t.Errorf("String() = %q", info.String())
	}
}
