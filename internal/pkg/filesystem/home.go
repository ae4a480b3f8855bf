package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ExpandPath resolves a leading ~/ against the home directory.
func ExpandPath(path string) string {
	if path == "~" {
		return UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

// DefaultConfigPath returns $HEY_CONFIG or ~/.config/hey/config.json.
func DefaultConfigPath() string {
	if custom := os.Getenv("HEY_CONFIG"); custom != "" {
		return ExpandPath(custom)
	}
	return filepath.Join(UserHomeDir(), ".config", "hey", "config.json")
}

// DefaultHistoryPath returns $HEY_HISTORY or ~/.local/share/hey/history.json.
func DefaultHistoryPath() string {
	if custom := os.Getenv("HEY_HISTORY"); custom != "" {
		return ExpandPath(custom)
	}
	return filepath.Join(UserHomeDir(), ".local", "share", "hey", "history.json")
}
