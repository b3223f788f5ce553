/*
Package fontfind locates installed fonts.

Given a logical font request — family names, style, stretch, weight and
size — the package finds the best-matching font file installed on the
host system and returns its path, usable as a stable handle for text
layout and rendering. Matching is a weighted multi-criterion scoring over
a corpus of discovered fonts; the corpus is serializable, so repeated
program runs avoid re-scanning the system font directories.

The matching algorithm is an independent, simpler scheme inspired by
fontconfig; it does not implement fontconfig's own semantics.

# Status

Discovers TrueType/OpenType files (including collections) and AFM metric
files. Bitmap-only font formats are not inspected.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontfind

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontfind'
func tracer() tracing.Trace {
	return tracing.Select("fontfind")
}
