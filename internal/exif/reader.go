// Package exif reads photo metadata by invoking exiftool and flattening its
// JSON output into an [Attributes] map. No EXIF binary parsing happens here;
// exiftool is the single source of truth for attribute names and values.
package exif

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// Read runs a single "exiftool -json -G" call against path and returns the
// flattened attribute map. Any execution or parse failure means the file's
// metadata is unavailable; callers skip the file and continue.
func Read(ctx context.Context, path string) (Attributes, error) {
	cmd := exec.CommandContext(ctx, "exiftool", "-json", "-G", path)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("exiftool %q: %w", path, err)
	}

	return Parse(out)
}

// Parse converts raw exiftool JSON output into Attributes.
// Exported for testing without a real exiftool binary.
func Parse(data []byte) (Attributes, error) {
	// UseNumber keeps numeric tags (SequenceNumber, ISO, ...) as their exact
	// source text instead of going through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objects []map[string]interface{}
	if err := dec.Decode(&objects); err != nil {
		return nil, fmt.Errorf("parse exiftool JSON: %w", err)
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("parse exiftool JSON: no metadata objects")
	}
	return flatten(objects[0]), nil
}

// flatten converts the mixed-type exiftool object into string values.
// Null values are dropped entirely so they read as absent attributes.
func flatten(raw map[string]interface{}) Attributes {
	attrs := make(Attributes, len(raw))
	for key, val := range raw {
		switch v := val.(type) {
		case nil:
			continue
		case string:
			attrs[key] = v
		case json.Number:
			attrs[key] = v.String()
		case bool:
			if v {
				attrs[key] = "true"
			} else {
				attrs[key] = "false"
			}
		default:
			// Arrays and objects (e.g. composite tags) are rare; keep their
			// textual form so they stay inspectable in verbose dumps.
			attrs[key] = fmt.Sprint(v)
		}
	}
	return attrs
}
