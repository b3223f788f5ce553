package inspect

import "strings"

// Weight keywords in order of specificity: compound names must win over
// their substrings ("semibold" before "bold", "extralight" before
// "light").
var weightKeywords = []struct {
	keyword string
	class   string
}{
	{"extrabold", "extrabold"},
	{"extra bold", "extrabold"},
	{"ultrabold", "extrabold"},
	{"semibold", "semibold"},
	{"semi bold", "semibold"},
	{"demibold", "demibold"},
	{"demi bold", "demibold"},
	{"extralight", "extralight"},
	{"extra light", "extralight"},
	{"ultralight", "ultralight"},
	{"ultra light", "ultralight"},
	{"black", "black"},
	{"heavy", "heavy"},
	{"bold", "bold"},
	{"demi", "demi"},
	{"medium", "medium"},
	{"light", "light"},
	{"thin", "thin"},
	{"book", "book"},
	{"roman", "roman"},
}

// weightFromName finds the weight class declared in a face's name
// strings; "normal" when nothing matches.
func weightFromName(name string) string {
	name = strings.ToLower(name)
	for _, w := range weightKeywords {
		if strings.Contains(name, w.keyword) {
			return w.class
		}
	}
	return "normal"
}

// stretchFromName finds the stretch class declared in a face's name
// strings; "normal" when nothing matches. "demi cond" style names mean
// semi-condensed and must be tested before the plain condensed keywords.
func stretchFromName(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "semi condensed"),
		strings.Contains(name, "semicondensed"),
		strings.Contains(name, "demi cond"):
		return "semicondensed"
	case strings.Contains(name, "narrow"),
		strings.Contains(name, "condensed"),
		strings.Contains(name, "cond"):
		return "condensed"
	case strings.Contains(name, "wide"),
		strings.Contains(name, "expanded"),
		strings.Contains(name, "extended"):
		return "expanded"
	}
	return "normal"
}

// Style suffix tokens stripped from PostScript font names to recover the
// family name, e.g. "Times-BoldItalic" → "Times".
var styleSuffixes = []string{
	"regular", "roman", "book", "thin", "light", "medium", "semibold",
	"demibold", "demi", "bold", "extrabold", "heavy", "black", "italic",
	"oblique", "condensed", "narrow", "expanded", "smallcaps", "capitals",
	"mt", "ps",
}

// familyFromFontName recovers a family name from a PostScript-style font
// name by splitting off hyphenated parts and trailing style tokens.
func familyFromFontName(fontname string) string {
	base := fontname
	if i := strings.IndexByte(base, '-'); i > 0 {
		base = base[:i]
	}
	words := splitCamel(base)
	for len(words) > 1 && isStyleSuffix(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func isStyleSuffix(word string) bool {
	w := strings.ToLower(word)
	for _, s := range styleSuffixes {
		if w == s {
			return true
		}
	}
	return false
}

// splitCamel splits "NewCenturySchlbk" into its capitalized words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}
