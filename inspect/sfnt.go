package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// sfntProperties reads the faces of a TrueType/OpenType file. Collections
// are enumerated face by face; a face without a decodable family name is
// skipped, and a file yielding no usable face at all is an error.
func sfntProperties(path string) ([]Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fonts []*sfnt.Font
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		for i := 0; i < coll.NumFonts(); i++ {
			f, err := coll.Font(i)
			if err != nil {
				continue
			}
			fonts = append(fonts, f)
		}
	default:
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil, err
		}
		fonts = []*sfnt.Font{f}
	}

	var infos []Info
	for _, f := range fonts {
		if info, ok := sfntFaceInfo(f); ok {
			infos = append(infos, info)
		}
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("inspect: %s: no usable face", path)
	}
	return infos, nil
}

// sfntFaceInfo derives matchable attributes from a face's name records
// and post table. Weight and stretch come from keyword matching over the
// subfamily and full name; that is what the font formats in the wild
// actually encode reliably.
func sfntFaceInfo(f *sfnt.Font) (Info, bool) {
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil || family == "" {
		return Info{}, false
	}
	subfamily, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	fullname, _ := f.Name(&buf, sfnt.NameIDFull)

	sub := strings.ToLower(subfamily)
	full := strings.ToLower(fullname)
	probe := sub + " " + full

	var italicAngle float64
	var fixedPitch bool
	if post := f.PostTable(); post != nil {
		italicAngle = post.ItalicAngle
		fixedPitch = post.IsFixedPitch
	}

	var style string
	switch {
	case strings.Contains(probe, "oblique"):
		style = "oblique"
	case strings.Contains(probe, "italic"):
		style = "italic"
	case strings.Contains(sub, "regular"):
		style = "normal"
	case italicAngle != 0:
		style = "italic"
	default:
		style = "normal"
	}

	return Info{
		Family:     family,
		Style:      style,
		Variant:    "normal",
		Weight:     weightFromName(probe),
		Stretch:    stretchFromName(probe),
		Scalable:   true,
		FixedPitch: fixedPitch,
	}, true
}
