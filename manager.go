package fontfind

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Generic family names and their spelling variants.
var genericFamilies = map[string]string{
	"serif":      "serif",
	"sans-serif": "sans-serif",
	"sans serif": "sans-serif",
	"sans":       "sans-serif",
	"monospace":  "monospace",
	"cursive":    "cursive",
	"fantasy":    "fantasy",
}

// Default expansions of the generic families, in priority order.
var defaultFamilies = map[string][]string{
	"serif": {
		"DejaVu Serif", "Bitstream Vera Serif", "Computer Modern Roman",
		"New Century Schoolbook", "Century Schoolbook L", "Utopia",
		"ITC Bookman", "Bookman", "Nimbus Roman No9 L", "Times New Roman",
		"Times", "Palatino", "Charter",
	},
	"sans-serif": {
		"DejaVu Sans", "Bitstream Vera Sans", "Computer Modern Sans Serif",
		"Lucida Grande", "Verdana", "Geneva", "Lucid", "Arial",
		"Helvetica", "Avant Garde",
	},
	"monospace": {
		"DejaVu Sans Mono", "Bitstream Vera Sans Mono",
		"Computer Modern Typewriter", "Andale Mono", "Nimbus Mono L",
		"Courier New", "Courier", "Fixed", "Terminal",
	},
	"cursive": {
		"Apple Chancery", "Textile", "Zapf Chancery", "Sand", "Script MT",
		"Felipa",
	},
	"fantasy": {
		"Comic Sans MS", "Chicago", "Charcoal", "Impact", "Western", "xkcd",
	},
}

// Config holds the process-wide matching defaults of one [FontManager].
// The zero value is usable; unset fields fall back to the package
// defaults.
type Config struct {
	// Families maps the generic family names (serif, sans-serif,
	// monospace, cursive, fantasy) to ordered lists of concrete family
	// names tried in place of the generic.
	Families map[string][]string

	// Defaults for request axes left unset.
	DefaultFamily  []string
	DefaultStyle   Style
	DefaultVariant Variant
	DefaultWeight  Weight
	DefaultStretch Stretch
	DefaultSize    float64

	// LastResort is the family substituted when no requested family can
	// be matched at all.
	LastResort string

	// CacheDir is where the bundled fallback face is materialized.
	// Defaults to the user cache directory.
	CacheDir string

	// MatchCacheSize bounds the memoized request→path cache.
	MatchCacheSize int
}

func (c Config) withDefaults() Config {
	if c.Families == nil {
		c.Families = defaultFamilies
	}
	if len(c.DefaultFamily) == 0 {
		c.DefaultFamily = []string{"sans-serif"}
	}
	if c.DefaultStyle == "" {
		c.DefaultStyle = StyleNormal
	}
	if c.DefaultVariant == "" {
		c.DefaultVariant = VariantNormal
	}
	if !c.DefaultWeight.isSet() {
		c.DefaultWeight = WeightValue(400)
	}
	if !c.DefaultStretch.isSet() {
		c.DefaultStretch = StretchValue(500)
	}
	if c.DefaultSize <= 0 {
		c.DefaultSize = 12
	}
	if c.LastResort == "" {
		c.LastResort = "DejaVu Sans"
	}
	if c.CacheDir == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			c.CacheDir = filepath.Join(dir, "fontfind")
		} else {
			c.CacheDir = filepath.Join(os.TempDir(), "fontfind")
		}
	}
	if c.MatchCacheSize <= 0 {
		c.MatchCacheSize = 1024
	}
	return c
}

// corpus is the discovered font set: two entry lists partitioned by
// kind, the set of paths already inspected, and the per-kind last-resort
// entry. A corpus is immutable once published; rebuilds swap in a fresh
// one.
type corpus struct {
	ttf        []FontEntry
	afm        []FontEntry
	scanned    map[string]struct{}
	lastResort map[Kind]string

	// gen is assigned on publish; memo entries are keyed on it, so a
	// memo write racing a corpus swap can never serve a stale path.
	gen uint64
}

func newCorpus(entries []FontEntry, preferredLastResort string) *corpus {
	c := &corpus{
		scanned:    make(map[string]struct{}, len(entries)),
		lastResort: make(map[Kind]string, 2),
	}
	c.add(entries)
	c.computeLastResort(preferredLastResort)
	return c
}

func (c *corpus) add(entries []FontEntry) {
	for _, e := range entries {
		c.scanned[e.Fname] = struct{}{}
		if kind, ok := KindOfPath(e.Fname); ok && kind == KindMetric {
			c.afm = append(c.afm, e)
		} else {
			c.ttf = append(c.ttf, e)
		}
	}
}

func (c *corpus) list(kind Kind) []FontEntry {
	if kind == KindMetric {
		return c.afm
	}
	return c.ttf
}

// computeLastResort pins, per kind, the entry substituted for hopeless
// requests: the first face of the preferred family, or failing that the
// first face of the kind.
func (c *corpus) computeLastResort(preferred string) {
	folded := foldName(preferred)
	for _, kind := range []Kind{KindScalable, KindMetric} {
		entries := c.list(kind)
		if len(entries) == 0 {
			continue
		}
		c.lastResort[kind] = entries[0].Fname
		for _, e := range entries {
			if foldName(e.Name) == folded {
				c.lastResort[kind] = e.Fname
				break
			}
		}
	}
}

// bestMatch resolves a normalized request against one corpus partition.
// The expanded family chain is walked in priority order; for each family
// the whole partition is scored and the cheapest candidate wins, ties
// breaking to the earlier entry. A chain entry is accepted only if its
// best candidate actually matched on the family axis; otherwise the next
// chain entry is tried.
func (c *corpus) bestMatch(req FontProperties, kind Kind) (string, bool) {
	entries := c.list(kind)
	if len(entries) == 0 {
		return "", false
	}
	for _, family := range req.Family {
		pinned := req
		pinned.Family = []string{family}
		bestCost := noMatch * familyWeight
		bestFname := ""
		for _, e := range entries {
			famScore := ScoreFamily(pinned.Family, e.Name)
			if famScore >= noMatch {
				continue
			}
			cost := familyWeight*famScore +
				ScoreStyle(pinned.Style, e.Style) +
				ScoreVariant(pinned.Variant, e.Variant) +
				ScoreWeight(pinned.Weight, e.Weight) +
				ScoreStretch(pinned.Stretch, e.Stretch) +
				ScoreSize(pinned.Size, e.Size)
			if cost < bestCost {
				bestCost = cost
				bestFname = e.Fname
			}
		}
		if bestFname != "" {
			return bestFname, true
		}
	}
	return "", false
}

type matchKey struct {
	sig  string
	kind Kind
	gen  uint64
}

// FontManager owns a font corpus and matches font requests against it.
// It is an explicit handle: construct one with [New] (or restore one with
// [LoadCache]) and pass it around; [Default] offers a process-wide
// convenience instance.
//
// A FontManager is safe for concurrent use. Reads see a consistent
// corpus; a rebuild swaps the corpus wholesale and at most one rebuild
// is in flight at a time.
type FontManager struct {
	cfg       Config
	extract   Extractor
	listFonts func(Kind) []string

	mu     sync.RWMutex // guards corpus pointer and generation counter
	corpus *corpus
	gen    uint64

	rebuildMu sync.Mutex // serializes rebuilds

	match *lru.Cache[matchKey, string]
}

// ManagerOption configures a [FontManager] at construction time.
type ManagerOption func(*FontManager)

// WithExtractor substitutes the metadata-extraction collaborator.
func WithExtractor(extract Extractor) ManagerOption {
	return func(m *FontManager) {
		m.extract = extract
	}
}

// WithFontLister substitutes the system font enumeration collaborator.
func WithFontLister(list func(Kind) []string) ManagerOption {
	return func(m *FontManager) {
		m.listFonts = list
	}
}

// New creates a FontManager with an empty corpus. The corpus is built on
// the first match request, or explicitly with [FontManager.Rebuild].
func New(cfg Config, opts ...ManagerOption) *FontManager {
	m := &FontManager{
		cfg:       cfg.withDefaults(),
		extract:   InspectExtractor,
		listFonts: ListSystemFonts,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.match, _ = lru.New[matchKey, string](m.cfg.MatchCacheSize)
	return m
}

var (
	defaultManager     *FontManager
	defaultManagerOnce sync.Once
)

// Default returns the process-wide FontManager, constructing it with a
// default configuration on first use.
func Default() *FontManager {
	defaultManagerOnce.Do(func() {
		defaultManager = New(Config{})
	})
	return defaultManager
}

func (m *FontManager) snapshot() *corpus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.corpus
}

func (m *FontManager) publish(c *corpus) {
	m.mu.Lock()
	m.gen++
	c.gen = m.gen
	m.corpus = c
	m.mu.Unlock()
	// Memo entries of older generations are unreachable already; the
	// purge just frees them eagerly.
	m.match.Purge()
}

// Entries returns a copy of the corpus partition of the given kind, in
// scan order. Empty until the corpus has been built or loaded.
func (m *FontManager) Entries(kind Kind) []FontEntry {
	c := m.snapshot()
	if c == nil {
		return nil
	}
	entries := c.list(kind)
	out := make([]FontEntry, len(entries))
	copy(out, entries)
	return out
}

// Rebuild discards the current corpus and re-scans the system font set.
// Rebuilds are serialized; concurrent match requests keep reading the
// previous corpus until the new one is published in one swap. A
// canceled ctx aborts the scan and leaves the previous corpus in place.
func (m *FontManager) Rebuild(ctx context.Context) error {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	paths := append(m.listFonts(KindScalable), m.listFonts(KindMetric)...)
	entries, failures, err := Scan(ctx, paths, m.extract)
	if err != nil {
		return err
	}
	for _, f := range failures {
		tracer().Debugf("fontfind: skipping font file %s", f)
	}
	if len(failures) > 0 {
		tracer().Infof("fontfind: skipped %d unreadable font files during scan", len(failures))
	}
	if !hasScalable(entries) {
		if fallback, err := m.bundledFallback(); err == nil {
			entries = append(entries, fallback...)
		} else {
			tracer().Infof("fontfind: cannot materialize bundled fallback font: %v", err)
		}
	}
	c := newCorpus(entries, m.cfg.LastResort)
	m.publish(c)
	tracer().Infof("fontfind: corpus rebuilt, %d scalable and %d metric faces",
		len(c.ttf), len(c.afm))
	return nil
}

func hasScalable(entries []FontEntry) bool {
	for _, e := range entries {
		if kind, ok := KindOfPath(e.Fname); !ok || kind == KindScalable {
			return true
		}
	}
	return false
}

// bundledFallback materializes the embedded Go Regular face into the
// cache directory, guaranteeing at least one scalable font on hosts with
// no discoverable fonts at all.
func (m *FontManager) bundledFallback() ([]FontEntry, error) {
	if err := os.MkdirAll(m.cfg.CacheDir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(m.cfg.CacheDir, "GoRegular.ttf")
	if _, err := os.Stat(path); err != nil {
		if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
			return nil, err
		}
	}
	return m.extract(path)
}

// AddFonts registers additional font files — typically fonts embedded in
// the hosting application — into the live corpus. Files already known to
// the corpus are skipped; unreadable files are reported in the failure
// list without failing the call.
func (m *FontManager) AddFonts(ctx context.Context, paths ...string) ([]ScanFailure, error) {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	old := m.snapshot()
	var fresh []string
	for _, p := range paths {
		resolved := resolvePath(p)
		if old != nil {
			if _, ok := old.scanned[resolved]; ok {
				continue
			}
		}
		fresh = append(fresh, resolved)
	}
	entries, failures, err := Scan(ctx, fresh, m.extract)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return failures, nil
	}

	c := &corpus{
		scanned:    make(map[string]struct{}),
		lastResort: make(map[Kind]string, 2),
	}
	if old != nil {
		c.ttf = append(c.ttf, old.ttf...)
		c.afm = append(c.afm, old.afm...)
		for p := range old.scanned {
			c.scanned[p] = struct{}{}
		}
	}
	c.add(entries)
	c.computeLastResort(m.cfg.LastResort)
	m.publish(c)
	return failures, nil
}

// normalize expands generic families, fills unset axes from the
// configured defaults and validates every set token. The result has a
// non-empty family chain.
func (m *FontManager) normalize(p FontProperties) (FontProperties, error) {
	out := p
	families := p.Family
	if len(families) == 0 {
		families = m.cfg.DefaultFamily
	}
	var chain []string
	seen := make(map[string]struct{}, len(families))
	appendFamily := func(name string) {
		folded := foldName(name)
		if folded == "" {
			return
		}
		if _, ok := seen[folded]; ok {
			return
		}
		seen[folded] = struct{}{}
		chain = append(chain, name)
	}
	for _, fam := range families {
		if generic, ok := genericFamilies[foldName(fam)]; ok {
			for _, concrete := range m.cfg.Families[generic] {
				appendFamily(concrete)
			}
			continue
		}
		appendFamily(fam)
	}
	if len(chain) == 0 {
		return out, &InvalidRequestError{Field: "family", Value: "(empty)"}
	}
	out.Family = chain

	if out.Style == "" {
		out.Style = m.cfg.DefaultStyle
	} else if style, err := ParseStyle(string(out.Style)); err != nil {
		return out, err
	} else {
		out.Style = style
	}
	if out.Variant == "" {
		out.Variant = m.cfg.DefaultVariant
	} else if variant, err := ParseVariant(string(out.Variant)); err != nil {
		return out, err
	} else {
		out.Variant = variant
	}
	if !out.Weight.isSet() {
		out.Weight = m.cfg.DefaultWeight
	}
	if !out.Stretch.isSet() {
		out.Stretch = m.cfg.DefaultStretch
	}
	if !out.Size.isSet() {
		out.Size = PointSize(m.cfg.DefaultSize)
	}
	return out, nil
}

// FindFont resolves a font request to the path of the best-matching
// installed font file.
//
// The request is normalized (generic families expanded, unset axes
// filled from the configuration), then matched against the corpus along
// the family fallback chain. If no chain entry matches and rebuilding is
// permitted, the corpus is rebuilt once — the system font set may have
// changed — and matching is retried; after that, the configured
// last-resort font is substituted with a warning. FindFont fails only
// for invalid requests, a canceled rebuild, or a corpus with no usable
// font at all ([ErrEmptyCorpus]).
//
// Results are memoized per normalized request signature; the memo is
// invalidated wholesale on rebuild.
func (m *FontManager) FindFont(ctx context.Context, req FontProperties, opts ...MatchOption) (string, error) {
	q := matchQuery{kind: KindScalable, rebuild: true}
	for _, opt := range opts {
		opt(&q)
	}
	norm, err := m.normalize(req)
	if err != nil {
		return "", err
	}
	sig := norm.signature()

	// Phase one matches against the current corpus (building it first if
	// this manager never scanned); phase two re-scans once in case the
	// installed font set changed. Exactly one rebuild per request, no
	// recursion. Memo keys carry the corpus generation, so an entry
	// written here can only ever answer lookups against the very corpus
	// it was computed from.
	rebuilt := false
	for {
		c := m.snapshot()
		if c != nil {
			key := matchKey{sig: sig, kind: q.kind, gen: c.gen}
			if path, ok := m.match.Get(key); ok {
				return path, nil
			}
			if path, ok := c.bestMatch(norm, q.kind); ok {
				m.match.Add(key, path)
				return path, nil
			}
		}
		if q.rebuild && !rebuilt {
			if c != nil {
				tracer().Debugf("fontfind: no match for %v, rebuilding corpus", norm.Family)
			}
			if err := m.Rebuild(ctx); err != nil {
				return "", err
			}
			rebuilt = true
			continue
		}
		break
	}

	c := m.snapshot()
	if c == nil || len(c.list(q.kind)) == 0 {
		return "", ErrEmptyCorpus
	}
	path := c.lastResort[q.kind]
	tracer().Errorf("fontfind: font family %v not found, falling back to %q",
		norm.Family, path)
	m.match.Add(matchKey{sig: sig, kind: q.kind, gen: c.gen}, path)
	return path, nil
}
