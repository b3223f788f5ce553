package fontfind

import (
	"os/user"
	"path/filepath"
)

func platformFontDirs() []string {
	return []string{
		"/Library/Fonts",
		"/Network/Library/Fonts",
		"/System/Library/Fonts",
		"/opt/local/share/fonts",
	}
}

func platformUserFontDirs() []string {
	usr, err := user.Current()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(usr.HomeDir, "Library", "Fonts")}
}
