// Package recipe defines film-simulation recipes and the matching of photo
// attributes against them. A recipe is a named set of camera-setting values;
// it applies to a photo when every one of its settings is present in the
// photo's EXIF attributes with an exactly equal value.
package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Recipe is one named camera-settings profile. Settings hold the minimal
// attribute/value pairs that must all match for the recipe to apply. Values
// are stored as strings; numeric values from the config document keep their
// exact source text.
type Recipe struct {
	Name     string
	Settings map[string]string
}

// rawRecipe is the wire form of a recipe record in JSON or YAML documents.
// Settings values may be strings, numbers, or bools; they are coerced to
// strings during validation.
type rawRecipe struct {
	Name     string                 `json:"name" yaml:"name"`
	Settings map[string]interface{} `json:"settings" yaml:"settings"`
}

// Load reads a recipes document from path. The format is chosen by file
// extension: .yaml/.yml is parsed as YAML, anything else as JSON.
func Load(path string) ([]Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON parses a JSON array of recipe records. Malformed documents and
// malformed records are rejected here, before any file is processed, so the
// matcher can assume well-formed input.
func ParseJSON(data []byte) ([]Recipe, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []rawRecipe
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse recipes JSON: %w", err)
	}
	return build(raw)
}

// ParseYAML parses a YAML sequence of recipe records.
func ParseYAML(data []byte) ([]Recipe, error) {
	var raw []rawRecipe
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse recipes YAML: %w", err)
	}
	return build(raw)
}

// build validates and converts raw records, preserving document order.
// List order is meaningful: earlier recipes win ties during matching.
func build(raw []rawRecipe) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("recipe %d: missing name", i+1)
		}
		if len(r.Settings) == 0 {
			return nil, fmt.Errorf("recipe %d (%q): missing settings", i+1, r.Name)
		}
		settings := make(map[string]string, len(r.Settings))
		for key, val := range r.Settings {
			s, err := scalarString(val)
			if err != nil {
				return nil, fmt.Errorf("recipe %d (%q): setting %q: %v", i+1, r.Name, key, err)
			}
			settings[key] = s
		}
		recipes = append(recipes, Recipe{Name: r.Name, Settings: settings})
	}
	return recipes, nil
}

// scalarString coerces a decoded settings value to its string form.
// Numbers are compared as their string representation during matching.
func scalarString(val interface{}) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", fmt.Errorf("value must not be null")
	default:
		return "", fmt.Errorf("value must be a string, number, or bool (got %T)", val)
	}
}
