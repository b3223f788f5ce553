package fontfind

// matchQuery collects the per-call options of a match request.
type matchQuery struct {
	kind    Kind
	rebuild bool
}

// MatchOption adjusts a single [FontManager.FindFont] call.
type MatchOption func(*matchQuery)

// WithKind selects the corpus partition to match against. The default is
// [KindScalable].
func WithKind(kind Kind) MatchOption {
	return func(q *matchQuery) {
		q.kind = kind
	}
}

// NoRebuild forbids the one-shot corpus rebuild that is otherwise
// attempted when no requested family matches.
func NoRebuild() MatchOption {
	return func(q *matchQuery) {
		q.rebuild = false
	}
}
