package inspect

import "testing"

func TestWeightFromName(t *testing.T) {
	cases := []struct {
		name  string
		class string
	}{
		{"DejaVu Sans", "normal"},
		{"DejaVu Sans Bold", "bold"},
		{"Foo SemiBold Italic", "semibold"},
		{"Foo Extra Bold", "extrabold"},
		{"Foo UltraLight", "ultralight"},
		{"Foo Black", "black"},
		{"Foo Book", "book"},
	}
	for _, c := range cases {
		if got := weightFromName(c.name); got != c.class {
			t.Errorf("weightFromName(%q) = %q, want %q", c.name, got, c.class)
		}
	}
}

func TestCompoundWeightBeatsSubstring(t *testing.T) {
	// "semibold" contains "bold"; the compound class must win.
	if got := weightFromName("foo semibold"); got != "semibold" {
		t.Errorf("expected semibold, got %q", got)
	}
	if got := weightFromName("foo extralight"); got != "extralight" {
		t.Errorf("expected extralight, got %q", got)
	}
}

func TestStretchFromName(t *testing.T) {
	cases := []struct {
		name  string
		class string
	}{
		{"DejaVu Sans", "normal"},
		{"Arial Narrow", "condensed"},
		{"Foo Condensed Bold", "condensed"},
		{"Foo Semi Condensed", "semicondensed"},
		{"Helvetica Neue LT Std 53 Ext", "normal"},
		{"Foo Expanded", "expanded"},
		{"Foo Wide", "expanded"},
	}
	for _, c := range cases {
		if got := stretchFromName(c.name); got != c.class {
			t.Errorf("stretchFromName(%q) = %q, want %q", c.name, got, c.class)
		}
	}
}

func TestFamilyFromFontName(t *testing.T) {
	cases := []struct {
		fontname string
		family   string
	}{
		{"Times-BoldItalic", "Times"},
		{"Courier-BoldOblique", "Courier"},
		{"Helvetica", "Helvetica"},
		{"NewCenturySchlbk-Roman", "New Century Schlbk"},
		{"TimesBold", "Times"},
		{"ZapfDingbats", "Zapf Dingbats"},
	}
	for _, c := range cases {
		if got := familyFromFontName(c.fontname); got != c.family {
			t.Errorf("familyFromFontName(%q) = %q, want %q", c.fontname, got, c.family)
		}
	}
}

func TestSplitCamel(t *testing.T) {
	words := splitCamel("NewCenturySchlbk")
	if len(words) != 3 || words[0] != "New" || words[2] != "Schlbk" {
		t.Errorf("unexpected split: %v", words)
	}
}
