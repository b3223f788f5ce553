package fontfind

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Weight is the boldness of a font face: a named class or a numeric value
// on the usual 100–900 scale. Either form normalizes to an integer, and
// scoring only ever sees the integer; the tagged form survives
// serialization. The zero value is unset.
type Weight struct {
	name  string
	value int
}

// Named weight classes and their canonical numeric values.
var weightClasses = map[string]int{
	"thin":       100,
	"extralight": 200,
	"ultralight": 200,
	"light":      300,
	"normal":     400,
	"regular":    400,
	"book":       400,
	"roman":      400,
	"medium":     500,
	"semibold":   600,
	"demibold":   600,
	"demi":       600,
	"bold":       700,
	"extrabold":  800,
	"heavy":      800,
	"black":      900,
}

// WeightClass returns the named weight class, or an error for an unknown
// name.
func WeightClass(name string) (Weight, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	if v, ok := weightClasses[key]; ok {
		return Weight{name: key, value: v}, nil
	}
	return Weight{}, &InvalidRequestError{Field: "weight", Value: name}
}

// WeightValue returns a numeric weight. Values are clamped to 100–900.
func WeightValue(v int) Weight {
	return Weight{value: clampScale(v)}
}

// ParseWeight parses a weight token, either a class name or a number.
func ParseWeight(tok string) (Weight, error) {
	if v, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
		return WeightValue(v), nil
	}
	return WeightClass(tok)
}

// Value returns the normalized numeric weight; 0 if unset.
func (w Weight) Value() int {
	return w.value
}

func (w Weight) isSet() bool {
	return w.value != 0
}

func (w Weight) String() string {
	if w.name != "" {
		return w.name
	}
	return strconv.Itoa(w.value)
}

// MarshalJSON keeps the tagged form: named classes encode as strings,
// numeric weights as numbers.
func (w Weight) MarshalJSON() ([]byte, error) {
	if w.name != "" {
		return json.Marshal(w.name)
	}
	return json.Marshal(w.value)
}

// UnmarshalJSON accepts a class name or a number.
func (w *Weight) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := WeightClass(name)
		if err != nil {
			return err
		}
		*w = parsed
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*w = WeightValue(v)
	return nil
}

// Stretch is the horizontal width classification of a font face, named or
// numeric on the same 100–900 scale as weight. The zero value is unset.
type Stretch struct {
	name  string
	value int
}

// The nine stretch classes.
var stretchClasses = map[string]int{
	"ultracondensed": 100,
	"extracondensed": 200,
	"condensed":      300,
	"semicondensed":  400,
	"normal":         500,
	"semiexpanded":   600,
	"expanded":       700,
	"extraexpanded":  800,
	"ultraexpanded":  900,
}

// StretchClass returns the named stretch class, or an error for an
// unknown name.
func StretchClass(name string) (Stretch, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	if v, ok := stretchClasses[key]; ok {
		return Stretch{name: key, value: v}, nil
	}
	return Stretch{}, &InvalidRequestError{Field: "stretch", Value: name}
}

// StretchValue returns a numeric stretch. Values are clamped to 100–900.
func StretchValue(v int) Stretch {
	return Stretch{value: clampScale(v)}
}

// ParseStretch parses a stretch token, either a class name or a number.
func ParseStretch(tok string) (Stretch, error) {
	if v, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
		return StretchValue(v), nil
	}
	return StretchClass(tok)
}

// Value returns the normalized numeric stretch; 0 if unset.
func (s Stretch) Value() int {
	return s.value
}

func (s Stretch) isSet() bool {
	return s.value != 0
}

func (s Stretch) String() string {
	if s.name != "" {
		return s.name
	}
	return strconv.Itoa(s.value)
}

// MarshalJSON keeps the tagged form, like [Weight.MarshalJSON].
func (s Stretch) MarshalJSON() ([]byte, error) {
	if s.name != "" {
		return json.Marshal(s.name)
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts a class name or a number.
func (s *Stretch) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := StretchClass(name)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StretchValue(v)
	return nil
}

func clampScale(v int) int {
	if v < 100 {
		return 100
	}
	if v > 900 {
		return 900
	}
	return v
}
