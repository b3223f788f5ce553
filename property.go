package fontfind

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Style is the slant classification of a font face.
type Style string

// Slant classes.
const (
	StyleNormal  Style = "normal"
	StyleItalic  Style = "italic"
	StyleOblique Style = "oblique"
)

// ParseStyle parses a slant token.
func ParseStyle(tok string) (Style, error) {
	switch s := Style(strings.ToLower(strings.TrimSpace(tok))); s {
	case StyleNormal, StyleItalic, StyleOblique:
		return s, nil
	}
	return "", &InvalidRequestError{Field: "style", Value: tok}
}

// Variant is the small-caps classification of a font face.
type Variant string

// Variant classes.
const (
	VariantNormal    Variant = "normal"
	VariantSmallCaps Variant = "small-caps"
)

// ParseVariant parses a variant token.
func ParseVariant(tok string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(tok))); v {
	case VariantNormal, VariantSmallCaps:
		return v, nil
	}
	return "", &InvalidRequestError{Field: "variant", Value: tok}
}

// Size is either "scalable" or a concrete point size. The zero value is
// unset and will be filled from the configured default on normalization.
type Size struct {
	scalable bool
	points   float64
}

// ScalableSize returns the size of an outline font renderable at any size.
func ScalableSize() Size {
	return Size{scalable: true}
}

// PointSize returns a fixed size in typographic points.
func PointSize(pt float64) Size {
	return Size{points: pt}
}

// Relative size names scale a base size, CSS-fashion.
var sizeScalings = map[string]float64{
	"xx-small": 0.579,
	"x-small":  0.694,
	"small":    0.833,
	"medium":   1.0,
	"large":    1.2,
	"x-large":  1.44,
	"xx-large": 1.728,
	"smaller":  0.833,
	"larger":   1.2,
}

// ParseSize parses a size token: "scalable", a number, or a relative size
// name (xx-small … xx-large, smaller, larger) scaled against base.
func ParseSize(tok string, base float64) (Size, error) {
	t := strings.ToLower(strings.TrimSpace(tok))
	if t == "scalable" {
		return ScalableSize(), nil
	}
	if scale, ok := sizeScalings[t]; ok {
		return PointSize(base * scale), nil
	}
	if pt, err := strconv.ParseFloat(t, 64); err == nil && pt > 0 {
		return PointSize(pt), nil
	}
	return Size{}, &InvalidRequestError{Field: "size", Value: tok}
}

// IsScalable reports whether the size denotes an arbitrarily scalable face.
func (s Size) IsScalable() bool {
	return s.scalable
}

// Points returns the point size; 0 for scalable or unset sizes.
func (s Size) Points() float64 {
	if s.scalable {
		return 0
	}
	return s.points
}

func (s Size) isSet() bool {
	return s.scalable || s.points > 0
}

func (s Size) String() string {
	if s.scalable {
		return "scalable"
	}
	return strconv.FormatFloat(s.points, 'g', -1, 64)
}

// MarshalJSON encodes the size as the string "scalable" or as a number.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.scalable {
		return json.Marshal("scalable")
	}
	return json.Marshal(s.points)
}

// UnmarshalJSON accepts "scalable" or a number.
func (s *Size) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "scalable" {
			return fmt.Errorf("fontfind: invalid size %q", str)
		}
		*s = ScalableSize()
		return nil
	}
	var pt float64
	if err := json.Unmarshal(data, &pt); err != nil {
		return err
	}
	*s = PointSize(pt)
	return nil
}

// FontProperties describes a font request or, with a single family entry,
// a font descriptor. Unset axes of a request are filled from the
// process-wide configuration during normalization; family order is
// priority order.
type FontProperties struct {
	Family  []string
	Style   Style
	Variant Variant
	Weight  Weight
	Stretch Stretch
	Size    Size
}

// foldName normalizes a family name for case-insensitive comparison.
// Unicode case folding, not ASCII lowercasing: family names are not
// ASCII-only. A cases.Caser is stateful, so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// canonName additionally strips spaces and hyphens, for fuzzy comparison.
func canonName(name string) string {
	f := foldName(name)
	f = strings.ReplaceAll(f, " ", "")
	return strings.ReplaceAll(f, "-", "")
}

// signature is the canonical cache key of a normalized request.
func (p FontProperties) signature() string {
	var sb strings.Builder
	for i, fam := range p.Family {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(foldName(fam))
	}
	fmt.Fprintf(&sb, ";%s;%s;%d;%d;%s", p.Style, p.Variant,
		p.Weight.Value(), p.Stretch.Value(), p.Size)
	return sb.String()
}
