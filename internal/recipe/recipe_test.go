package recipe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `[
  {
    "name": "Vibrant Arizona",
    "settings": {
      "FilmMode": "F0/Standard (Provia)",
      "Saturation": "+2 (high)",
      "DynamicRange": 400
    }
  },
  {
    "name": "Pacific Blues",
    "settings": {
      "FilmMode": "F2/Fujichrome (Velvia)",
      "WhiteBalance": "Auto"
    }
  }
]`

const sampleYAML = `- name: Vibrant Arizona
  settings:
    FilmMode: F0/Standard (Provia)
    Saturation: "+2 (high)"
    DynamicRange: 400
- name: Pacific Blues
  settings:
    FilmMode: F2/Fujichrome (Velvia)
    WhiteBalance: Auto
`

func TestParseJSON(t *testing.T) {
	recipes, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("got %d recipes, want 2", len(recipes))
	}
	if recipes[0].Name != "Vibrant Arizona" || recipes[1].Name != "Pacific Blues" {
		t.Errorf("document order not preserved: %q, %q", recipes[0].Name, recipes[1].Name)
	}
	// Numeric settings keep their exact source text.
	if got := recipes[0].Settings["DynamicRange"]; got != "400" {
		t.Errorf("DynamicRange = %q, want %q", got, "400")
	}
}

func TestParseYAML(t *testing.T) {
	recipes, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("got %d recipes, want 2", len(recipes))
	}
	if got := recipes[0].Settings["DynamicRange"]; got != "400" {
		t.Errorf("DynamicRange = %q, want %q", got, "400")
	}
	if got := recipes[1].Settings["WhiteBalance"]; got != "Auto" {
		t.Errorf("WhiteBalance = %q, want %q", got, "Auto")
	}
}

func TestParseJSON_MalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"not an array", `{"name": "x"}`, "parse recipes JSON"},
		{"missing name", `[{"settings": {"FilmMode": "x"}}]`, "missing name"},
		{"blank name", `[{"name": "  ", "settings": {"FilmMode": "x"}}]`, "missing name"},
		{"missing settings", `[{"name": "Bare"}]`, "missing settings"},
		{"empty settings", `[{"name": "Bare", "settings": {}}]`, "missing settings"},
		{"null setting value", `[{"name": "N", "settings": {"FilmMode": null}}]`, "must not be null"},
		{"nested setting value", `[{"name": "N", "settings": {"FilmMode": {"a": 1}}}]`, "must be a string"},
		{"array setting value", `[{"name": "N", "settings": {"FilmMode": [1, 2]}}]`, "must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.doc))
			if err == nil {
				t.Fatal("ParseJSON() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FormatByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "recipes.json")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "recipes.yaml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		recipes, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s): %v", filepath.Base(path), err)
			continue
		}
		if len(recipes) != 2 {
			t.Errorf("Load(%s): got %d recipes, want 2", filepath.Base(path), len(recipes))
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
