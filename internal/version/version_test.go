package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()

	if info["name"] != "nodectl" {
		t.Errorf("Expected name 'nodectl', got %q", info["name"])
	}
	for _, key := range []string{"version", "gitCommit", "buildTime", "goVersion"} {
		if info[key] == "" {
			t.Errorf("Expected non-empty %s", key)
		}
	}
}

func TestString(t *testing.T) {
	s := String()

	if !strings.HasPrefix(s, "nodectl ") {
		t.Errorf("Expected string to start with 'nodectl ', got %q", s)
	}
	if !strings.Contains(s, Version) {
		t.Errorf("Expected string to contain version %q, got %q", Version, s)
	}
}
