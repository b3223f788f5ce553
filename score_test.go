package fontfind

import (
	"math"
	"testing"
)

func mustWeightClass(t *testing.T, name string) Weight {
	t.Helper()
	w, err := WeightClass(name)
	if err != nil {
		t.Fatalf("cannot parse weight class %q: %v", name, err)
	}
	return w
}

func mustStretchClass(t *testing.T, name string) Stretch {
	t.Helper()
	s, err := StretchClass(name)
	if err != nil {
		t.Fatalf("cannot parse stretch class %q: %v", name, err)
	}
	return s
}

func TestScoreWeightSymmetry(t *testing.T) {
	weights := []Weight{
		mustWeightClass(t, "thin"),
		mustWeightClass(t, "light"),
		mustWeightClass(t, "normal"),
		mustWeightClass(t, "semibold"),
		mustWeightClass(t, "bold"),
		mustWeightClass(t, "black"),
		WeightValue(440),
	}
	for _, a := range weights {
		if ScoreWeight(a, a) != 0 {
			t.Errorf("expected ScoreWeight(%s, %s) to be 0", a, a)
		}
		for _, b := range weights {
			if ScoreWeight(a, b) != ScoreWeight(b, a) {
				t.Errorf("expected ScoreWeight(%s, %s) to be symmetric", a, b)
			}
		}
	}
}

func TestScoreWeightOrdering(t *testing.T) {
	normal := mustWeightClass(t, "normal")
	regular := mustWeightClass(t, "regular")
	bold := mustWeightClass(t, "bold")
	if got := ScoreWeight(WeightValue(400), WeightValue(400)); got != 0 {
		t.Errorf("expected ScoreWeight(400, 400) to be 0, is %g", got)
	}
	if ScoreWeight(normal, regular) != ScoreWeight(WeightValue(400), WeightValue(400)) {
		t.Error("expected normal/regular to score like 400/400 under the canonical mapping")
	}
	if !(ScoreWeight(normal, bold) > ScoreWeight(normal, regular)) {
		t.Error("expected normal/bold to score worse than normal/regular")
	}
}

func TestScoreWeightBounded(t *testing.T) {
	thin := mustWeightClass(t, "thin")
	black := mustWeightClass(t, "black")
	if got := ScoreWeight(thin, black); got >= noMatch {
		t.Errorf("expected maximum weight distance below the family ceiling, is %g", got)
	}
}

func TestScoreStretch(t *testing.T) {
	normal := mustStretchClass(t, "normal")
	condensed := mustStretchClass(t, "condensed")
	ultra := mustStretchClass(t, "ultra-condensed")
	if ScoreStretch(normal, normal) != 0 {
		t.Error("expected equal stretches to score 0")
	}
	if !(ScoreStretch(normal, ultra) > ScoreStretch(normal, condensed)) {
		t.Error("expected stretch score to grow with class distance")
	}
	if ScoreStretch(condensed, normal) != ScoreStretch(normal, condensed) {
		t.Error("expected stretch score to be symmetric")
	}
}

func TestScoreStyle(t *testing.T) {
	if got := ScoreStyle(StyleItalic, StyleItalic); got != 0 {
		t.Errorf("expected equal styles to score 0, is %g", got)
	}
	if got := ScoreStyle(StyleItalic, StyleOblique); got != slantPenalty {
		t.Errorf("expected italic/oblique substitution penalty %g, is %g", slantPenalty, got)
	}
	if got := ScoreStyle(StyleNormal, StyleItalic); got != noMatch {
		t.Errorf("expected normal/italic to score %g, is %g", noMatch, got)
	}
}

func TestScoreVariant(t *testing.T) {
	if ScoreVariant(VariantSmallCaps, VariantSmallCaps) != 0 {
		t.Error("expected equal variants to score 0")
	}
	if ScoreVariant(VariantNormal, VariantSmallCaps) != noMatch {
		t.Error("expected differing variants to score the ceiling")
	}
}

func TestScoreFamily(t *testing.T) {
	if got := ScoreFamily([]string{"DejaVu Sans"}, "dejavu sans"); got != 0 {
		t.Errorf("expected case-insensitive family match to score 0, is %g", got)
	}
	if got := ScoreFamily([]string{"DejaVu Sans"}, "DejaVuSans"); got != fuzzyPenalty {
		t.Errorf("expected fuzzy family match to score %g, is %g", fuzzyPenalty, got)
	}
	if got := ScoreFamily([]string{"DejaVu Sans"}, "Times"); got != noMatch {
		t.Errorf("expected unrelated family to score the ceiling, is %g", got)
	}
	first := ScoreFamily([]string{"Times", "DejaVu Sans"}, "Times")
	second := ScoreFamily([]string{"Times", "DejaVu Sans"}, "DejaVu Sans")
	if !(first < second && second < noMatch) {
		t.Errorf("expected list position to weight family scores: %g, %g", first, second)
	}
}

func TestScoreSize(t *testing.T) {
	if got := ScoreSize(PointSize(12), ScalableSize()); got != 0 {
		t.Errorf("expected scalable faces to match any size for free, is %g", got)
	}
	near := ScoreSize(PointSize(12), PointSize(14))
	far := ScoreSize(PointSize(12), PointSize(36))
	if !(0 < near && near < far) {
		t.Errorf("expected size distance to grow: %g, %g", near, far)
	}
	want := math.Abs(12-14) / 72
	if near != want {
		t.Errorf("expected size distance %g, is %g", want, near)
	}
}

func TestScoreTotalFamilyDominates(t *testing.T) {
	req := FontProperties{
		Family:  []string{"DejaVu Sans"},
		Style:   StyleNormal,
		Variant: VariantNormal,
		Weight:  WeightValue(400),
		Stretch: StretchValue(500),
		Size:    ScalableSize(),
	}
	rightFamily := FontEntry{
		Fname: "a.ttf", Name: "DejaVu Sans", Style: StyleItalic,
		Variant: VariantSmallCaps, Weight: WeightValue(900),
		Stretch: StretchValue(100), Size: ScalableSize(),
	}
	wrongFamily := FontEntry{
		Fname: "b.ttf", Name: "Times", Style: StyleNormal,
		Variant: VariantNormal, Weight: WeightValue(400),
		Stretch: StretchValue(500), Size: ScalableSize(),
	}
	if !(Score(req, rightFamily) < Score(req, wrongFamily)) {
		t.Error("expected any same-family face to beat a perfect face of another family")
	}
}
