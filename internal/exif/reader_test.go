package exif

import (
	"strings"
	"testing"
)

// Realistic exiftool -json -G output for an X-T5 burst frame: group-prefixed
// keys, mixed string/number values, and a null tag.
const sampleBurst = `[{
  "SourceFile": "/photos/DSCF1234.RAF",
  "File:FileName": "DSCF1234.RAF",
  "EXIF:Make": "FUJIFILM",
  "EXIF:Model": "X-T5",
  "EXIF:ISO": 800,
  "MakerNotes:PictureMode": "HDR400%",
  "MakerNotes:DriveMode": "Continuous Low",
  "MakerNotes:SequenceNumber": 3,
  "MakerNotes:FilmMode": "F2/Fujichrome (Velvia)",
  "MakerNotes:Saturation": "0 (normal)",
  "MakerNotes:AdvancedFilter": null,
  "Composite:Aperture": 5.6
}]`

func TestParse(t *testing.T) {
	attrs, err := Parse([]byte(sampleBurst))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"EXIF:Make", "FUJIFILM"},
		{"MakerNotes:PictureMode", "HDR400%"},
		{"MakerNotes:SequenceNumber", "3"}, // number flattened to source text
		{"EXIF:ISO", "800"},
		{"Composite:Aperture", "5.6"}, // no float round-trip mangling
	}
	for _, tt := range tests {
		if got := attrs[tt.key]; got != tt.want {
			t.Errorf("attrs[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}

	// Null tags are absent keys, not empty strings.
	if _, ok := attrs["MakerNotes:AdvancedFilter"]; ok {
		t.Error("null value should not produce a key")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", "exiftool: file not readable"},
		{"empty array", "[]"},
		{"object instead of array", `{"EXIF:Make": "FUJIFILM"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestGet_GroupSuffix(t *testing.T) {
	attrs, err := Parse([]byte(sampleBurst))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		tag   string
		want  string
		found bool
	}{
		{"PictureMode", "HDR400%", true},
		{"MakerNotes:PictureMode", "HDR400%", true}, // exact key also works
		{"SequenceNumber", "3", true},
		{"NoSuchTag", "", false},
	}
	for _, tt := range tests {
		got, ok := attrs.Get(tt.tag)
		if ok != tt.found || got != tt.want {
			t.Errorf("Get(%q) = %q, %v; want %q, %v", tt.tag, got, ok, tt.want, tt.found)
		}
	}
}

func TestGet_ExactBeatsSuffix(t *testing.T) {
	attrs := Attributes{
		"FileName":      "exact.RAF",
		"File:FileName": "grouped.RAF",
	}
	if got, _ := attrs.Get("FileName"); got != "exact.RAF" {
		t.Errorf("Get(FileName) = %q, want the exact key's value", got)
	}
}

func TestGet_SuffixDeterministic(t *testing.T) {
	// Two groups carry the same tag; the sorted-first group must win every time.
	attrs := Attributes{
		"MakerNotes:Rating": "5",
		"XMP:Rating":        "3",
	}
	for i := 0; i < 20; i++ {
		if got, _ := attrs.Get("Rating"); got != "5" {
			t.Fatalf("Get(Rating) = %q, want %q (sorted group order)", got, "5")
		}
	}
}

func TestGet_NoPartialKeyMatch(t *testing.T) {
	attrs := Attributes{"MakerNotes:MySequenceNumber": "9"}
	if _, ok := attrs.Get("SequenceNumber"); ok {
		t.Error("suffix matching must respect the ':' group boundary")
	}
}

func TestInt(t *testing.T) {
	attrs := Attributes{
		"MakerNotes:SequenceNumber": "12",
		"MakerNotes:Padded":         " 7 ",
		"MakerNotes:NotANumber":     "Continuous Low",
	}

	tests := []struct {
		tag  string
		want int
	}{
		{"SequenceNumber", 12},
		{"Padded", 7},
		{"NotANumber", 0},
		{"Absent", 0},
	}
	for _, tt := range tests {
		if got := attrs.Int(tt.tag); got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.tag, got, tt.want)
		}
	}
}

func TestSortedKeys(t *testing.T) {
	attrs := Attributes{"b": "2", "a": "1", "c": "3"}
	got := attrs.SortedKeys()
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("SortedKeys() = %v", got)
	}
}
