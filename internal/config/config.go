// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the legacy xt5_exif_tool.py behavior for parity.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultRecipesFile is the recipes document loaded when --recipes is not
// given. A missing default file is not an error; a missing user-specified
// file is.
const DefaultRecipesFile = "custom_recipes.json"

// RecipesEnvVar names the environment variable consulted when --recipes-json
// is not given. Its value is the same inline JSON array the flag accepts.
const RecipesEnvVar = "FUJITAG_RECIPES"

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Inputs (set from positional args, or stdin when piped).
	Inputs []string

	// Recipe and tag-rule sources.
	RecipesFile string // Default: "custom_recipes.json".
	RecipesJSON string // Inline JSON array, prepended to the file recipes.
	RulesFile   string // Optional tag-rule overrides (YAML or JSON).

	// File selection.
	MatchGlob string // doublestar pattern applied to paths under walked dirs.

	// Behavior flags.
	Rename bool // Default: false (preview only; print new names).
	Force  bool // Skip the on-disk target-exists check before renaming.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		RecipesFile: DefaultRecipesFile,
		Rename:      false,
		Force:       false,
		Verbose:     false,
		ColorMode:   ColorAuto,
		CheckOnly:   false,
	}
}

// NormalizePathArg strips trailing slashes from a path argument.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizePathArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and the --match pattern. When not in CheckOnly
// mode, it also requires at least one input path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.MatchGlob != "" && !doublestar.ValidatePattern(c.MatchGlob) {
		return fmt.Errorf("invalid --match pattern %q", c.MatchGlob)
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.Inputs) == 0 {
		return errors.New("no input files (pass image paths, or pipe them on stdin)")
	}
	return nil
}
