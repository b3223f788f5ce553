package fontfind

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PersistTestEnviron struct {
	suite.Suite
	dir    string
	lister *fixtureLister
	cfg    Config
}

// listen for 'go test' command --> run test methods
func TestPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontfind")
	defer teardown()
	suite.Run(t, new(PersistTestEnviron))
}

func (env *PersistTestEnviron) SetupTest() {
	env.dir = env.T().TempDir()
	env.lister = &fixtureLister{}
	for _, p := range fixtureOrder {
		env.lister.add(p)
	}
	env.cfg = Config{
		LastResort: "Bitstream Vera Sans",
		CacheDir:   env.dir,
	}
}

func (env *PersistTestEnviron) newManager() *FontManager {
	return New(env.cfg, WithExtractor(fixtureExtract), WithFontLister(env.lister.list))
}

func (env *PersistTestEnviron) cachePath() string {
	return filepath.Join(env.dir, "fontlist.json")
}

// --- Tests -----------------------------------------------------------------

func (env *PersistTestEnviron) TestRoundTrip() {
	m := env.newManager()
	env.Require().NoError(m.Rebuild(context.Background()))
	env.Require().NoError(SaveCache(m, env.cachePath()))

	restored, err := LoadCache(env.cachePath(), env.cfg,
		WithExtractor(fixtureExtract), WithFontLister(env.lister.list))
	env.Require().NoError(err)
	env.Equal(m.Entries(KindScalable), restored.Entries(KindScalable))
	env.Equal(m.Entries(KindMetric), restored.Entries(KindMetric))
}

// A restored manager must answer every request exactly like the manager
// that wrote the cache, unmatched families included.
func (env *PersistTestEnviron) TestRoundTripMatchesEqually() {
	m := env.newManager()
	env.Require().NoError(m.Rebuild(context.Background()))
	env.Require().NoError(SaveCache(m, env.cachePath()))
	restored, err := LoadCache(env.cachePath(), env.cfg,
		WithExtractor(fixtureExtract), WithFontLister(env.lister.list))
	env.Require().NoError(err)

	requests := []FontProperties{
		{Family: []string{"Bitstream Vera Sans"}},
		{Family: []string{"Bitstream Vera Sans"}, Weight: WeightValue(700)},
		{Family: []string{"Stone Mono"}},
		{Family: []string{"No Such Family"}},
	}
	for _, req := range requests {
		want, err := m.FindFont(context.Background(), req, NoRebuild())
		env.Require().NoError(err)
		got, err := restored.FindFont(context.Background(), req, NoRebuild())
		env.Require().NoError(err)
		env.Equal(want, got, "families %v", req.Family)
	}
}

func (env *PersistTestEnviron) TestSaveWithoutCorpus() {
	env.Error(SaveCache(env.newManager(), env.cachePath()))
}

func (env *PersistTestEnviron) TestMissingCacheIsStale() {
	_, err := LoadCache(env.cachePath(), env.cfg)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrStaleCache))
}

func (env *PersistTestEnviron) TestCorruptCacheIsStale() {
	env.Require().NoError(os.WriteFile(env.cachePath(), []byte(`{"version": 1, "ttflist": [`), 0o644))
	_, err := LoadCache(env.cachePath(), env.cfg)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrStaleCache))
}

func (env *PersistTestEnviron) TestVersionMismatchIsStale() {
	env.Require().NoError(os.WriteFile(env.cachePath(),
		[]byte(`{"version": 99, "ttflist": [], "afmlist": []}`), 0o644))
	_, err := LoadCache(env.cachePath(), env.cfg)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrStaleCache))
}

func (env *PersistTestEnviron) TestLoadOrRebuild() {
	// First run: no cache yet, so the corpus is scanned and persisted.
	m, err := LoadOrRebuild(context.Background(), env.cachePath(), env.cfg,
		WithExtractor(fixtureExtract), WithFontLister(env.lister.list))
	env.Require().NoError(err)
	env.NotEmpty(m.Entries(KindScalable))
	env.Equal(1, env.lister.scans())
	_, err = os.Stat(env.cachePath())
	env.Require().NoError(err, "expected the first run to write the cache file")

	// Second run: restored from the cache, no scan.
	m, err = LoadOrRebuild(context.Background(), env.cachePath(), env.cfg,
		WithExtractor(fixtureExtract), WithFontLister(env.lister.list))
	env.Require().NoError(err)
	env.NotEmpty(m.Entries(KindScalable))
	env.Equal(1, env.lister.scans(), "expected the cached run to skip scanning")
}
