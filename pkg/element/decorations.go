package element

import (
	"strconv"
	"strings"
)

// Well-known decoration keys.
const (
	KeyTitle  = "title"
	KeyXLabel = "xlabel"
	KeyYLabel = "ylabel"
	KeyXLim   = "xlim"
	KeyYLim   = "ylim"
)

// Decoration is one displayed metadata entry.
type Decoration struct {
	Key   string
	Value string
}

// Decorations is an ordered mapping of decoration keys to values.
// Methods never mutate the receiver; modifying methods return a copy.
type Decorations []Decoration

// Get returns the value for key and whether it is present.
func (d Decorations) Get(key string) (string, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Value returns the value for key, or the empty string.
func (d Decorations) Value(key string) string {
	v, _ := d.Get(key)
	return v
}

// With returns a copy with key set to value. An existing key keeps its
// position; a new key is appended.
func (d Decorations) With(key, value string) Decorations {
	out := make(Decorations, len(d), len(d)+1)
	copy(out, d)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Decoration{Key: key, Value: value})
}

// Without returns a copy with key removed.
func (d Decorations) Without(key string) Decorations {
	out := make(Decorations, 0, len(d))
	for _, e := range d {
		if e.Key != key {
			out = append(out, e)
		}
	}
	return out
}

// Equal reports whether both sets hold the same pairs in the same order.
func (d Decorations) Equal(o Decorations) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i] != o[i] {
			return false
		}
	}
	return true
}

// Title returns the title decoration.
func (d Decorations) Title() string { return d.Value(KeyTitle) }

// XLabel returns the x-axis label decoration.
func (d Decorations) XLabel() string { return d.Value(KeyXLabel) }

// YLabel returns the y-axis label decoration.
func (d Decorations) YLabel() string { return d.Value(KeyYLabel) }

// String formats the set as "k=v, k=v" for logs.
func (d Decorations) String() string {
	parts := make([]string, len(d))
	for i, e := range d {
		parts[i] = e.Key + "=" + strconv.Quote(e.Value)
	}
	return strings.Join(parts, ", ")
}

// FormatLimits renders axis limits the way they are stored in decorations.
func FormatLimits(lo, hi float64) string {
	return strconv.FormatFloat(lo, 'g', 4, 64) + "," + strconv.FormatFloat(hi, 'g', 4, 64)
}

// ParseLimits parses a value written by [FormatLimits].
func ParseLimits(s string) (lo, hi float64, ok bool) {
	a, b, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
