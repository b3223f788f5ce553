package fontfind

import "math"

// Scoring: each axis scores a candidate against a request as a cost in
// [0, 1], with 0 a perfect match. The axes are combined by weighted sum
// in [Score]; the family axis carries an order of magnitude more weight
// than the others, so a family mismatch is practically disqualifying.
const (
	familyWeight = 10.0

	// noMatch is the per-axis ceiling. A family score at the ceiling
	// means "this font is not of the requested family at all", which
	// the matcher uses to advance the fallback chain.
	noMatch = 1.0

	// slantPenalty is charged when italic substitutes for oblique or
	// vice versa.
	slantPenalty = 0.1

	// fuzzyPenalty is charged for a family match that holds only after
	// stripping spaces and hyphens.
	fuzzyPenalty = 0.1
)

// ScoreFamily scores a provided family name against a prioritized list of
// requested families. An exact match (Unicode case folding) scores by
// list position, starting at 0 for the first entry; a fuzzy match
// (additionally ignoring spaces and hyphens) adds a small penalty; a name
// matching no entry scores the no-match ceiling 1.
func ScoreFamily(requested []string, provided string) float64 {
	if len(requested) == 0 {
		return noMatch
	}
	folded := foldName(provided)
	step := 0.8 / float64(len(requested))
	for i, fam := range requested {
		if foldName(fam) == folded {
			return float64(i) * step
		}
	}
	canon := canonName(provided)
	for i, fam := range requested {
		if canonName(fam) == canon {
			return float64(i)*step + fuzzyPenalty
		}
	}
	return noMatch
}

// ScoreStyle scores slant distance. Italic and oblique are mutually
// substitutable at a small penalty.
func ScoreStyle(requested, provided Style) float64 {
	if requested == provided {
		return 0
	}
	if requested != StyleNormal && provided != StyleNormal {
		return slantPenalty
	}
	return noMatch
}

// ScoreVariant scores the small-caps axis: equal or not.
func ScoreVariant(requested, provided Variant) float64 {
	if requested == provided {
		return 0
	}
	return noMatch
}

// ScoreWeight scores the distance between two weights on the normalized
// 100–900 scale. The score is symmetric, zero exactly for equal weights,
// grows linearly with distance, and is bounded well below the family
// weight so that weight can never outvote family.
func ScoreWeight(requested, provided Weight) float64 {
	return scaleDistance(requested.Value(), provided.Value())
}

// ScoreStretch scores stretch distance, with the same scheme as
// [ScoreWeight] over the nine stretch classes.
func ScoreStretch(requested, provided Stretch) float64 {
	return scaleDistance(requested.Value(), provided.Value())
}

func scaleDistance(a, b int) float64 {
	return 0.95 * math.Abs(float64(a-b)) / 1000
}

// ScoreSize scores the size axis. A scalable provided face matches any
// request for free; a fixed-size face is scored by point distance, in
// units of 72pt, against a concrete requested size.
func ScoreSize(requested, provided Size) float64 {
	if provided.IsScalable() {
		return 0
	}
	if requested.IsScalable() {
		return noMatch
	}
	d := math.Abs(requested.Points()-provided.Points()) / 72
	return math.Min(d, noMatch)
}

// Score is the total cost of a candidate font entry for a request, the
// weighted sum over all six axes. Lower is better; the caller selects the
// minimum, breaking ties in favor of the earlier corpus entry.
func Score(requested FontProperties, entry FontEntry) float64 {
	return familyWeight*ScoreFamily(requested.Family, entry.Name) +
		ScoreStyle(requested.Style, entry.Style) +
		ScoreVariant(requested.Variant, entry.Variant) +
		ScoreWeight(requested.Weight, entry.Weight) +
		ScoreStretch(requested.Stretch, entry.Stretch) +
		ScoreSize(requested.Size, entry.Size)
}
