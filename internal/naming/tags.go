package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/backmassage/fujitag/internal/exif"
)

// TagSet is the derived set of filename tags for one photo. Zero values mean
// "no tag". A TagSet is built once per file from immutable inputs, so
// deriving twice from the same attributes yields the identical set.
type TagSet struct {
	HDR             bool
	Sequence        int    // burst/bracket frame index; tagged only when > 0
	DriveCode       string // "CL", "CH", "EB", ...; only set alongside Sequence
	FilmLabel       string // matched recipe name or raw film simulation
	FilterLabel     string // advanced filter, if any
	SaturationLabel string // only when no film label was produced
}

// Derive builds the TagSet for attrs. matchedRecipe is the name of the
// recipe that fully matched, or "" when none did. Derive is pure and reads
// only its inputs.
func Derive(attrs exif.Attributes, matchedRecipe string, rules *TagRules) TagSet {
	var t TagSet

	if pm, ok := attrs.Get(rules.PictureModeTag); ok {
		for _, marker := range rules.HDRMarkers {
			if strings.Contains(pm, marker) {
				t.HDR = true
				break
			}
		}
	}

	if seq := attrs.Int(rules.SequenceTag); seq > 0 {
		t.Sequence = seq
		drive, _ := attrs.Get(rules.DriveModeTag)
		for _, rule := range rules.DriveModes {
			if !strings.Contains(drive, rule.Match) {
				continue
			}
			if rule.When != nil {
				extra, _ := attrs.Get(rule.When.Tag)
				if !strings.Contains(extra, rule.When.Contains) {
					continue
				}
			}
			t.DriveCode = rule.Code
			break
		}
	}

	if matchedRecipe != "" {
		t.FilmLabel = safeLabel(matchedRecipe)
	} else if film, ok := attrs.Get(rules.FilmModeTag); ok && strings.TrimSpace(film) != "" {
		t.FilmLabel = safeLabel(parenName(film))
	}

	if filter, ok := attrs.Get(rules.AdvancedFilterTag); ok && strings.TrimSpace(filter) != "" {
		t.FilterLabel = safeLabel(filter)
	}

	if t.FilmLabel == "" {
		if sat, ok := attrs.Get(rules.SaturationTag); ok {
			sc := strings.TrimSpace(sat)
			if sc != "" && !strings.EqualFold(sc, rules.SaturationNormal) {
				t.SaturationLabel = safeLabel(sc)
			}
		}
	}

	return t
}

// Empty reports whether no tag at all was derived.
func (t TagSet) Empty() bool {
	return !t.HDR && t.Sequence <= 0 && t.FilmLabel == "" &&
		t.FilterLabel == "" && t.SaturationLabel == ""
}

// Tags returns the bracketed tag strings in their fixed order:
// HDR, sequence/drive, film label, advanced filter, saturation.
func (t TagSet) Tags() []string {
	var tags []string
	if t.HDR {
		tags = append(tags, "[HDR]")
	}
	if t.Sequence > 0 {
		tags = append(tags, fmt.Sprintf("[%s%02d]", t.DriveCode, t.Sequence))
	}
	if t.FilmLabel != "" {
		tags = append(tags, "["+t.FilmLabel+"]")
	}
	if t.FilterLabel != "" {
		tags = append(tags, "["+t.FilterLabel+"]")
	}
	if t.SaturationLabel != "" {
		tags = append(tags, "["+t.SaturationLabel+"]")
	}
	return tags
}

// parenName extracts the human name from film-simulation values like
// "F2/Fujichrome (Velvia)". Values without parentheses are returned whole.
func parenName(film string) string {
	open := strings.Index(film, "(")
	end := strings.Index(film, ")")
	if open >= 0 && end > open {
		return strings.TrimSpace(film[open+1 : end])
	}
	return strings.TrimSpace(film)
}

// safeLabel makes a tag value filename-safe: whitespace is removed and path
// separators replaced, so labels never split the name or escape the directory.
func safeLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			// dropped
		case r == '/' || r == '\\':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
