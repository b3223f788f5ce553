//go:build !linux && !darwin && !windows

package fontfind

import (
	"os"
	"path/filepath"
)

// BSDs and friends: assume an X11-ish layout.
func platformFontDirs() []string {
	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/usr/X11R6/lib/X11/fonts",
	}
}

func platformUserFontDirs() []string {
	home := os.Getenv("HOME")
	if home == "" {
		return nil
	}
	return []string{filepath.Join(home, ".fonts")}
}
