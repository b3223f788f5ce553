package fontfind

import (
	"os"
	"path/filepath"
)

func platformFontDirs() []string {
	windir := os.Getenv("WINDIR")
	if windir == "" {
		return nil
	}
	return []string{filepath.Join(windir, "Fonts")}
}

// Per-user font installation exists since Windows 10 1809.
func platformUserFontDirs() []string {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		return nil
	}
	return []string{filepath.Join(local, "Microsoft", "Windows", "Fonts")}
}
