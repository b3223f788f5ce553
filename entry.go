package fontfind

import (
	"path/filepath"
	"strings"
)

// Kind partitions the corpus into scalable outline fonts and metric-only
// (AFM) fonts. The two kinds never compete against each other in a match.
type Kind int

// The two corpus partitions.
const (
	KindScalable Kind = iota // TrueType/OpenType outline fonts
	KindMetric               // Adobe font metric files
)

func (k Kind) String() string {
	if k == KindMetric {
		return "afm"
	}
	return "ttf"
}

var kindExtensions = map[Kind]map[string]struct{}{
	KindScalable: {".ttf": {}, ".otf": {}, ".ttc": {}, ".otc": {}},
	KindMetric:   {".afm": {}},
}

// KindOfPath derives the corpus partition from a file name extension.
// The boolean is false for files of neither kind.
func KindOfPath(path string) (Kind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for kind, exts := range kindExtensions {
		if _, ok := exts[ext]; ok {
			return kind, true
		}
	}
	return 0, false
}

// FontEntry is one discovered font face: the attributes relevant for
// matching, extracted from a font file without parsing glyph data.
// Entries are immutable once created and replaced wholesale on corpus
// rebuild.
type FontEntry struct {
	Fname   string  `json:"fname"` // absolute file path
	Name    string  `json:"name"`  // family name as declared by the font
	Style   Style   `json:"style"`
	Variant Variant `json:"variant"`
	Weight  Weight  `json:"weight"`
	Stretch Stretch `json:"stretch"`
	Size    Size    `json:"size"` // "scalable", or a fixed point size
}
