package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into recipes, selection, behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, bad --match pattern).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("fujitag", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineRecipeFlags(fs, cfg)
	defineSelectionFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "fujitag v"+version)
		os.Exit(0)
	}

	if cfg.RecipesJSON == "" {
		cfg.RecipesJSON = os.Getenv(RecipesEnvVar)
	}

	for _, arg := range fs.Args() {
		cfg.Inputs = append(cfg.Inputs, NormalizePathArg(arg))
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noColor -> ColorMode=never) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineRecipeFlags registers -r/--recipes, --recipes-json, --rules.
func defineRecipeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.RecipesFile, "recipes", cfg.RecipesFile, "Recipes file (JSON or YAML)")
	fs.StringVar(&cfg.RecipesFile, "r", cfg.RecipesFile, "Same as --recipes")
	fs.StringVar(&cfg.RecipesJSON, "recipes-json", "", "Inline JSON recipe array, prepended to the file recipes")
	fs.StringVar(&cfg.RulesFile, "rules", "", "Tag-rule overrides file (JSON or YAML)")
}

// defineSelectionFlags registers -m/--match.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.MatchGlob, "match", "", "Glob filter for files under input directories (e.g. '**/*.RAF')")
	fs.StringVar(&cfg.MatchGlob, "m", "", "Same as --match")
}

// defineBehaviorFlags registers --rename and -f/--force.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Rename, "rename", false, "Actually rename files (default: preview only)")
	fs.BoolVar(&cfg.Force, "force", false, "Rename even when the target file already exists")
	fs.BoolVar(&cfg.Force, "f", false, "Same as --force")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (attribute dumps, per-recipe match traces)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noColor -> ColorMode=never).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "fujitag v" + version + " — EXIF recipe matcher & photo renamer"},
		{"", ""},
		{"  fujitag [OPTIONS] <file-or-dir>...", ""},
		{"  (with no paths, file names are read from stdin, one per line)", ""},
		{"", ""},
		{"Recipes", ""},
		{"  -r, --recipes <file>", "Recipes file, JSON or YAML (default: " + DefaultRecipesFile + ")"},
		{"  --recipes-json <json>", "Inline JSON recipe array, prepended to the file recipes"},
		{"  --rules <file>", "Tag-rule overrides (HDR markers, drive-mode codes)"},
		{"", ""},
		{"Selection", ""},
		{"  -m, --match <glob>", "Only process matching files under input dirs (e.g. '**/*.RAF')"},
		{"", ""},
		{"Behavior", ""},
		{"  --rename", "Actually rename files (default: preview only)"},
		{"  -f, --force", "Rename even when the target file already exists"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (attribute dumps, match traces)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (exiftool, recipes, rules)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
