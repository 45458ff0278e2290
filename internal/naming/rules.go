// Package naming derives filename tags from photo attributes and performs
// the rename itself. Tag derivation is pure; only [Rename] touches the
// filesystem.
package naming

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Condition is an extra attribute requirement attached to a drive-mode rule.
// The camera reports exposure bracketing as DriveMode "Single" plus
// ExposureMode "Auto bracket", so the EB rule needs a secondary check.
type Condition struct {
	Tag      string `json:"tag" yaml:"tag"`
	Contains string `json:"contains" yaml:"contains"`
}

// DriveModeRule maps a drive-mode attribute value (substring match) to a
// short filename code. Rules are evaluated in order; first match wins.
type DriveModeRule struct {
	Match string     `json:"match" yaml:"match"`
	Code  string     `json:"code" yaml:"code"`
	When  *Condition `json:"when,omitempty" yaml:"when,omitempty"`
}

// TagRules holds the lookup data driving tag derivation. The camera-reported
// enumeration strings are only partially documented, so everything here is
// configuration: [LoadRules] overlays a user file onto [DefaultTagRules].
type TagRules struct {
	// Attribute names, looked up group-agnostically (see exif.Attributes.Get).
	PictureModeTag    string `json:"picture_mode_tag" yaml:"picture_mode_tag"`
	SequenceTag       string `json:"sequence_tag" yaml:"sequence_tag"`
	DriveModeTag      string `json:"drive_mode_tag" yaml:"drive_mode_tag"`
	FilmModeTag       string `json:"film_mode_tag" yaml:"film_mode_tag"`
	AdvancedFilterTag string `json:"advanced_filter_tag" yaml:"advanced_filter_tag"`
	SaturationTag     string `json:"saturation_tag" yaml:"saturation_tag"`

	// HDRMarkers are substrings of PictureMode that mark an HDR capture
	// (the X-T5 reports values like "HDR400%").
	HDRMarkers []string `json:"hdr_markers" yaml:"hdr_markers"`

	// DriveModes maps drive-mode values to filename codes, in order.
	DriveModes []DriveModeRule `json:"drive_modes" yaml:"drive_modes"`

	// SaturationNormal is the saturation value that produces no tag
	// (compared case-insensitively).
	SaturationNormal string `json:"saturation_normal" yaml:"saturation_normal"`
}

// DefaultTagRules returns the rule set matching the Fujifilm X-T5 defaults.
func DefaultTagRules() TagRules {
	return TagRules{
		PictureModeTag:    "PictureMode",
		SequenceTag:       "SequenceNumber",
		DriveModeTag:      "DriveMode",
		FilmModeTag:       "FilmMode",
		AdvancedFilterTag: "AdvancedFilter",
		SaturationTag:     "Saturation",
		HDRMarkers:        []string{"HDR"},
		DriveModes: []DriveModeRule{
			{Match: "Continuous Low", Code: "CL"},
			{Match: "Continuous High", Code: "CH"},
			{Match: "Single", Code: "EB", When: &Condition{Tag: "ExposureMode", Contains: "Auto bracket"}},
		},
		SaturationNormal: "0 (normal)",
	}
}

// LoadRules reads rule overrides from path (YAML or JSON by extension) and
// applies them on top of the defaults. Fields absent from the document keep
// their default values; list fields present in the document replace the
// default lists entirely.
func LoadRules(path string) (TagRules, error) {
	rules := DefaultTagRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rules)
	default:
		err = json.NewDecoder(bytes.NewReader(data)).Decode(&rules)
	}
	if err != nil {
		return DefaultTagRules(), fmt.Errorf("parse rules %q: %w", path, err)
	}
	if err := rules.validate(); err != nil {
		return DefaultTagRules(), fmt.Errorf("rules %q: %w", path, err)
	}
	return rules, nil
}

func (r *TagRules) validate() error {
	for i, dm := range r.DriveModes {
		if dm.Match == "" || dm.Code == "" {
			return fmt.Errorf("drive mode rule %d: match and code are required", i+1)
		}
		if dm.When != nil && (dm.When.Tag == "" || dm.When.Contains == "") {
			return fmt.Errorf("drive mode rule %d: when clause needs tag and contains", i+1)
		}
	}
	return nil
}
