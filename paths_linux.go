package fontfind

import (
	"os"
	"path/filepath"
)

func platformFontDirs() []string {
	return []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/usr/X11R6/lib/X11/fonts",
		"/usr/X11/lib/X11/fonts",
		"/usr/lib/openoffice/share/fonts/truetype",
	}
}

func platformUserFontDirs() []string {
	home := os.Getenv("HOME")
	if home == "" {
		return nil
	}
	return []string{
		filepath.Join(home, ".local", "share", "fonts"),
		filepath.Join(home, ".fonts"),
	}
}
