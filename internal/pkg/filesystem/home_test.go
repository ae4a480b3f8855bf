package filesystem

import (
	"path/filepath"
	"testing"
)

func TestDefaultPathsHonourEnvironment(t *testing.T) {
	t.Setenv("HEY_CONFIG", "/tmp/hey/config.yaml")
	t.Setenv("HEY_HISTORY", "/tmp/hey/history.json")

	if got := DefaultConfigPath(); got != "/tmp/hey/config.yaml" {
		t.Fatalf("DefaultConfigPath() = %s", got)
	}
	if got := DefaultHistoryPath(); got != "/tmp/hey/history.json" {
		t.Fatalf("DefaultHistoryPath() = %s", got)
	}
}

func TestDefaultPathsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HEY_CONFIG", "")
	t.Setenv("HEY_HISTORY", "")

	if got, want := DefaultConfigPath(), filepath.Join(home, ".config", "hey", "config.json"); got != want {
		t.Fatalf("DefaultConfigPath() = %s, want %s", got, want)
	}
	if got, want := DefaultHistoryPath(), filepath.Join(home, ".local", "share", "hey", "history.json"); got != want {
		t.Fatalf("DefaultHistoryPath() = %s, want %s", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := ExpandPath("~/x/y.json"), filepath.Join(home, "x", "y.json"); got != want {
		t.Fatalf("ExpandPath() = %s, want %s", got, want)
	}
	if got := ExpandPath("/abs/../abs/file"); got != "/abs/file" {
		t.Fatalf("ExpandPath() = %s", got)
	}
}
