package recipe

import (
	"sort"

	"github.com/backmassage/fujitag/internal/exif"
)

// Mismatch records one settings key that prevented a recipe from matching,
// for diagnostic logging. Got is empty and Missing is true when the photo
// carries no such attribute at all.
type Mismatch struct {
	Key     string
	Want    string
	Got     string
	Missing bool
}

// Report is the evaluation trace for one candidate recipe.
type Report struct {
	Recipe     string
	Matched    bool
	Mismatches []Mismatch
}

// Match reports whether r applies to attrs: every settings key must be
// present with an exactly equal value (case-sensitive, no normalization).
// Attribute keys not named by the recipe are ignored, so a photo carrying
// extra metadata still matches. The returned mismatches are sorted by key;
// settings key order never affects the result.
//
// Match is pure: it reads attrs and r and touches nothing else.
func Match(attrs exif.Attributes, r Recipe) (bool, []Mismatch) {
	var mismatches []Mismatch
	for key, want := range r.Settings {
		got, ok := attrs.Get(key)
		if ok && got == want {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			Key:     key,
			Want:    want,
			Got:     got,
			Missing: !ok,
		})
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Key < mismatches[j].Key })
	return len(mismatches) == 0, mismatches
}

// FirstMatch evaluates candidates in list order and returns the first full
// match, or nil when none applies. When two recipes could both match, the
// earlier one in the configured list wins. The reports cover every recipe
// evaluated (including the match, which ends the scan).
//
// No match is an ordinary outcome, not an error.
func FirstMatch(attrs exif.Attributes, recipes []Recipe) (*Recipe, []Report) {
	reports := make([]Report, 0, len(recipes))
	for i := range recipes {
		ok, mismatches := Match(attrs, recipes[i])
		reports = append(reports, Report{
			Recipe:     recipes[i].Name,
			Matched:    ok,
			Mismatches: mismatches,
		})
		if ok {
			return &recipes[i], reports
		}
	}
	return nil, reports
}
