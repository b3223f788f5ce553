/*
Package inspect extracts matching-relevant metadata from font files.

It answers one question per file: which family, slant, weight and stretch
does this font declare? Full table parsing, glyph outlines and kerning
are out of scope; the package reads just enough of a font to describe it.

TrueType/OpenType files (including collections) are read with
golang.org/x/image/font/sfnt, AFM metric files with
seehuhn.de/go/postscript/afm.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package inspect

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Info describes one font face in plain tokens. Weight and stretch are
// named classes as declared (or inferred from) the font's name entries;
// normalization to numeric scales is the caller's business.
type Info struct {
	Family     string  // family name
	Style      string  // "normal", "italic" or "oblique"
	Variant    string  // "normal" or "small-caps"
	Weight     string  // named weight class, e.g. "semibold"
	Stretch    string  // named stretch class, e.g. "condensed"
	Scalable   bool    // outline font, renderable at any size
	PointSize  float64 // fixed size in points, when not scalable
	FixedPitch bool    // monospaced
}

// Properties extracts the faces contained in a font file. Collection
// files (.ttc/.otc) yield one Info per face. The error is non-nil for
// unreadable or unparsable files; a scan treats that as skip-and-continue.
func Properties(path string) ([]Info, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".afm":
		info, err := afmProperties(path)
		if err != nil {
			return nil, err
		}
		return []Info{info}, nil
	case ".ttf", ".otf", ".ttc", ".otc":
		return sfntProperties(path)
	}
	return nil, fmt.Errorf("inspect: %s: not a known font file format", path)
}
