package exif

import (
	"sort"
	"strconv"
	"strings"
)

// Attributes is one photo's EXIF metadata as a flat mapping from attribute
// name to string value. Keys are group-prefixed the way exiftool -G reports
// them (e.g. "MakerNotes:PictureMode"). Missing attributes are absent keys,
// never empty strings. An Attributes value is built once per file and never
// mutated afterwards.
type Attributes map[string]string

// Get returns the value for tag. An exact key match wins; otherwise any key
// with suffix ":<tag>" matches, resolved in sorted key order so lookups are
// deterministic when several groups carry the same tag.
func (a Attributes) Get(tag string) (string, bool) {
	if v, ok := a[tag]; ok {
		return v, true
	}
	suffix := ":" + tag
	keys := make([]string, 0, len(a))
	for k := range a {
		if strings.HasSuffix(k, suffix) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Strings(keys)
	return a[keys[0]], true
}

// Int returns the tag value parsed as an integer, or 0 when the attribute is
// absent or not numeric.
func (a Attributes) Int(tag string) int {
	v, ok := a.Get(tag)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// SortedKeys returns the attribute names in lexical order, for deterministic
// diagnostic dumps.
func (a Attributes) SortedKeys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
