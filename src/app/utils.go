package app

import (
	"os"
	"path/filepath"
)

func ExpandPath(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// SanitizeObjectsDir accepts either the objects directory itself or the
// game data directory containing it and returns the objects directory.
func SanitizeObjectsDir(path string) string {
	path = filepath.Clean(path)
	if filepath.Base(path) == "objects" {
		return path
	}
	nested := filepath.Join(path, "objects")
	if info, err := os.Stat(nested); err == nil && info.IsDir() {
		return nested
	}
	return path
}
