package fontfind

import (
	"errors"
	"fmt"
)

// ErrEmptyCorpus means no usable font could be discovered anywhere. The
// engine cannot even produce a last-resort face in this situation, so it
// is a hard failure rather than a degraded match.
var ErrEmptyCorpus = errors.New("fontfind: no usable fonts in corpus")

// ErrStaleCache marks a persisted font corpus as unusable: missing,
// truncated, structurally invalid, or written by an incompatible version.
// Callers treat all of these identically to "not found" and rebuild.
var ErrStaleCache = errors.New("fontfind: stale or unreadable font cache")

// InvalidRequestError reports a font request token that cannot be
// normalized, such as an unknown weight class. Requests are rejected at
// normalization time, never silently coerced.
type InvalidRequestError struct {
	Field string
	Value string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("fontfind: invalid %s in font request: %q", e.Field, e.Value)
}

// ScanFailure records one font file that could not be inspected during a
// corpus scan. Failures never abort a scan; they are collected for
// diagnostic reporting.
type ScanFailure struct {
	Path string
	Err  error
}

func (f ScanFailure) String() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}
