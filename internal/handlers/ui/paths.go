package ui

import (
	"os"
	"path/filepath"
	"strings"
)

// FriendlyPath shortens paths under the home directory to ~/... for display.
func FriendlyPath(absPath string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return absPath
	}
	if absPath == home {
		return "~"
	}
	sep := string(os.PathSeparator)
	if strings.HasPrefix(absPath, home+sep) {
		return filepath.Join("~", strings.TrimPrefix(absPath, home+sep))
	}
	return absPath
}
