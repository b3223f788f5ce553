package inspect

import (
	"os"
	"strings"

	"seehuhn.de/go/postscript/afm"
)

// afmProperties reads an Adobe font metrics file. AFM files describe
// Type 1 outline fonts, so the resulting face is scalable.
func afmProperties(path string) (Info, error) {
	fd, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer fd.Close()

	metrics, err := afm.Read(fd)
	if err != nil {
		return Info{}, err
	}
	return afmFaceInfo(metrics), nil
}

// afmFaceInfo derives matchable attributes from parsed AFM metrics. AFM
// headers carry no family record we can rely on, so the family is
// recovered from the PostScript font name with style suffixes stripped.
func afmFaceInfo(metrics *afm.Metrics) Info {
	fontname := metrics.FontName
	probe := strings.ToLower(fontname)

	var style string
	switch {
	case strings.Contains(probe, "oblique"):
		style = "oblique"
	case strings.Contains(probe, "italic"):
		style = "italic"
	case metrics.ItalicAngle != 0:
		style = "italic"
	default:
		style = "normal"
	}

	variant := "normal"
	if strings.Contains(probe, "capitals") || strings.Contains(probe, "smallcap") {
		variant = "small-caps"
	}

	return Info{
		Family:     familyFromFontName(fontname),
		Style:      style,
		Variant:    variant,
		Weight:     weightFromName(probe),
		Stretch:    stretchFromName(probe),
		Scalable:   true,
		FixedPitch: metrics.IsFixedPitch,
	}
}
