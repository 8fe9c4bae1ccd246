// Package paths provides path expansion helpers for filemaid. Action
// destinations and the scan root are normalized here so the ignore-set
// comparisons in the engine work on one canonical form.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// Paths without a leading tilde are returned unchanged.
func ExpandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}

// Normalize expands the home directory and makes the path absolute.
func Normalize(path string) (string, error) {
	return filepath.Abs(ExpandHome(path))
}
