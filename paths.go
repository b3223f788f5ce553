package fontfind

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// SystemFontDirs returns the platform's system font directories that
// actually exist on this host.
func SystemFontDirs() []string {
	return existingDirs(platformFontDirs())
}

// UserFontDirs returns the current user's font directories that actually
// exist on this host.
func UserFontDirs() []string {
	return existingDirs(platformUserFontDirs())
}

// FontconfigFonts returns the font files known to fontconfig, by asking
// fc-list. On hosts without fontconfig the result is empty; this is an
// optional extra source, not an error.
func FontconfigFonts() []string {
	fclist, err := exec.LookPath("fc-list")
	if err != nil {
		return nil
	}
	out, err := exec.Command(fclist, "--format=%{file}\\n").Output()
	if err != nil {
		tracer().Infof("fontfind: fc-list failed: %v", err)
		return nil
	}
	var files []string
	lines := bufio.NewScanner(bytes.NewReader(out))
	for lines.Scan() {
		if line := strings.TrimSpace(lines.Text()); line != "" {
			files = append(files, line)
		}
	}
	return files
}

// ListSystemFonts enumerates the font files of one kind installed on the
// host: system directories, user directories and fontconfig output,
// merged, filtered by extension, deduplicated and sorted for a stable
// scan order.
func ListSystemFonts(kind Kind) []string {
	var files []string
	dirs := append(SystemFontDirs(), UserFontDirs()...)
	for _, dir := range dirs {
		files = append(files, fontFilesBelow(dir, kind)...)
	}
	for _, file := range FontconfigFonts() {
		if k, ok := KindOfPath(file); ok && k == kind {
			files = append(files, file)
		}
	}
	return dedupSorted(files)
}

// fontFilesBelow walks one directory tree and collects files of the
// requested kind. Unreadable subtrees are skipped silently.
func fontFilesBelow(dir string, kind Kind) []string {
	var files []string
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if k, ok := KindOfPath(d.Name()); ok && k == kind {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func existingDirs(candidates []string) []string {
	var dirs []string
	for _, dir := range candidates {
		if isDir(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func dedupSorted(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		resolved := resolvePath(p)
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	}
	sort.Strings(out)
	return out
}
