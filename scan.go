package fontfind

import (
	"context"
	"path/filepath"

	"github.com/npillmayer/fontfind/inspect"
)

// Extractor is the metadata-extraction collaborator: it turns one font
// file into the faces it contains. [InspectExtractor] is the default;
// tests and embedders may substitute their own.
type Extractor func(path string) ([]FontEntry, error)

// InspectExtractor extracts font entries using package inspect.
func InspectExtractor(path string) ([]FontEntry, error) {
	infos, err := inspect.Properties(path)
	if err != nil {
		return nil, err
	}
	entries := make([]FontEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, entryFromInfo(path, info))
	}
	return entries, nil
}

// entryFromInfo converts extracted metadata into a corpus entry. Tokens
// the extractor could not classify degrade to "normal" rather than
// discarding the face.
func entryFromInfo(path string, info inspect.Info) FontEntry {
	style, err := ParseStyle(info.Style)
	if err != nil {
		style = StyleNormal
	}
	variant, err := ParseVariant(info.Variant)
	if err != nil {
		variant = VariantNormal
	}
	weight, err := WeightClass(info.Weight)
	if err != nil {
		weight, _ = WeightClass("normal")
	}
	stretch, err := StretchClass(info.Stretch)
	if err != nil {
		stretch, _ = StretchClass("normal")
	}
	size := ScalableSize()
	if !info.Scalable {
		size = PointSize(info.PointSize)
	}
	return FontEntry{
		Fname:   path,
		Name:    info.Family,
		Style:   style,
		Variant: variant,
		Weight:  weight,
		Stretch: stretch,
		Size:    size,
	}
}

// Scan inspects a set of font file paths and returns one entry per
// discovered face. Paths are deduplicated by resolved absolute path.
// Files that cannot be read or parsed are skipped and reported in the
// failure list; a corrupt font must never abort the scan. Scan mutates
// no shared state — assembling a corpus from the result is the caller's
// business.
//
// The scan checks ctx between files, so a stuck walk over a large font
// set can be abandoned; a canceled scan returns ctx.Err().
func Scan(ctx context.Context, paths []string, extract Extractor) ([]FontEntry, []ScanFailure, error) {
	if extract == nil {
		extract = InspectExtractor
	}
	var entries []FontEntry
	var failures []ScanFailure
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		resolved := resolvePath(path)
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		found, err := extract(resolved)
		if err != nil {
			failures = append(failures, ScanFailure{Path: resolved, Err: err})
			continue
		}
		entries = append(entries, found...)
	}
	return entries, failures, nil
}

// resolvePath normalizes a path for deduplication: absolute, with
// symlinks resolved where possible.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}
