package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("expected non-empty version")
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected go version %q, got %q", runtime.Version(), info.GoVersion)
	}
	if info.OS != runtime.GOOS {
		t.Errorf("expected OS %q, got %q", runtime.GOOS, info.OS)
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Version: "1.2.3", Commit: "unknown"}
	if info.String() != "1.2.3" {
		t.Errorf("expected bare version, got %q", info.String())
	}

	info.Commit = "abcdef0123456789"
	if info.String() != "1.2.3 (abcdef0)" {
		t.Errorf("expected short commit suffix, got %q", info.String())
	}
}

func TestInfo_Full(t *testing.T) {
	full := Get().Full()

	for _, want := range []string{"Version:", "Commit:", "Build Time:", "Go Version:", "OS/Arch:"} {
		if !strings.Contains(full, want) {
			t.Errorf("expected %q in full output, got %q", want, full)
		}
	}
}
