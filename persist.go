package fontfind

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// cacheVersion tags the on-disk corpus format. Bump on any change to the
// document layout or to the metadata extraction, so that older caches
// are rebuilt instead of trusted.
const cacheVersion = 1

// cacheDocument is the persisted corpus: both partitions plus the format
// version tag.
type cacheDocument struct {
	Version int         `json:"version"`
	TTFList []FontEntry `json:"ttflist"`
	AFMList []FontEntry `json:"afmlist"`
}

// SaveCache serializes the manager's corpus to path. The round trip
// through [LoadCache] is exact for all entry fields.
func SaveCache(m *FontManager, path string) error {
	c := m.snapshot()
	if c == nil {
		return fmt.Errorf("fontfind: no corpus to save")
	}
	doc := cacheDocument{
		Version: cacheVersion,
		TTFList: c.ttf,
		AFMList: c.afm,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("fontfind: cannot marshal font cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fontfind: cannot write font cache %q: %w", path, err)
	}
	return nil
}

// LoadCache restores a FontManager from a corpus previously written by
// [SaveCache]. A missing file, a structurally invalid document, or a
// version tag other than the current one yields an error wrapping
// [ErrStaleCache]: the cache is never partially trusted, the caller
// rebuilds instead.
func LoadCache(path string, cfg Config, opts ...ManagerOption) (*FontManager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStaleCache, err)
	}
	var doc cacheDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStaleCache, err)
	}
	if doc.Version != cacheVersion {
		return nil, fmt.Errorf("%w: cache version %d, want %d",
			ErrStaleCache, doc.Version, cacheVersion)
	}
	m := New(cfg, opts...)
	entries := make([]FontEntry, 0, len(doc.TTFList)+len(doc.AFMList))
	entries = append(entries, doc.TTFList...)
	entries = append(entries, doc.AFMList...)
	m.publish(newCorpus(entries, m.cfg.LastResort))
	return m, nil
}

// LoadOrRebuild restores a FontManager from path, or — when the cache is
// missing, stale or unreadable — rebuilds the corpus from the system
// font set and writes a fresh cache. Cache invalidation goes to the
// trace log, never to the caller.
func LoadOrRebuild(ctx context.Context, path string, cfg Config, opts ...ManagerOption) (*FontManager, error) {
	m, err := LoadCache(path, cfg, opts...)
	if err == nil {
		tracer().Debugf("fontfind: font corpus restored from %q", path)
		return m, nil
	}
	tracer().Infof("fontfind: %v, rebuilding", err)

	m = New(cfg, opts...)
	if err := m.Rebuild(ctx); err != nil {
		return nil, err
	}
	if err := SaveCache(m, path); err != nil {
		// The manager is usable either way; the next run just re-scans.
		tracer().Errorf("fontfind: cannot persist font cache: %v", err)
	}
	return m, nil
}
