// Command fujitag is the CLI entrypoint for the Fujifilm EXIF recipe renamer.
//
// It parses flags, loads the recipe and tag-rule configuration, and either
// runs system diagnostics (--check) or the read/match/rename pipeline.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/fujitag/internal/check"
	"github.com/backmassage/fujitag/internal/config"
	"github.com/backmassage/fujitag/internal/display"
	"github.com/backmassage/fujitag/internal/logging"
	"github.com/backmassage/fujitag/internal/naming"
	"github.com/backmassage/fujitag/internal/pipeline"
	"github.com/backmassage/fujitag/internal/recipe"
	"github.com/backmassage/fujitag/internal/term"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "fujitag: %v\n", err)
		return 1
	}

	// With no positional paths and piped stdin, read file names from stdin,
	// one per line.
	if len(cfg.Inputs) == 0 && !term.IsTerminal(os.Stdin) {
		inputs, err := readStdinPaths()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fujitag: read stdin: %v\n", err)
			return 1
		}
		cfg.Inputs = inputs
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fujitag: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fujitag: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Malformed recipe or rule config is fatal here, before any file is
	// processed; applying a partial recipe list would be misleading.
	recipes, err := loadRecipes(&cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	rules := naming.DefaultTagRules()
	if cfg.RulesFile != "" {
		rules, err = naming.LoadRules(cfg.RulesFile)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	log.Info("=== fujitag v%s (%s) ===", version, commit)
	if !cfg.Rename {
		log.Warn("PREVIEW — no files will be renamed")
	}
	log.Info("")

	// Fail fast if exiftool is unavailable.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline stops between files without leaving a half-renamed batch
	// unreported.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → read → match → derive → rename).
	stats := pipeline.Run(ctx, &cfg, log, recipes, &rules)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// loadRecipes assembles the recipe list: inline --recipes-json (or env)
// recipes are prepended to the file recipes, so user-supplied recipes win
// ties against the defaults. A missing default recipes file is tolerated;
// a missing user-specified one is not.
func loadRecipes(cfg *config.Config, log *logging.Logger) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe

	if cfg.RecipesJSON != "" {
		extras, err := recipe.ParseJSON([]byte(cfg.RecipesJSON))
		if err != nil {
			return nil, fmt.Errorf("inline recipes: %w", err)
		}
		recipes = append(recipes, extras...)
		log.Debug(cfg.Verbose, "Loaded %d inline recipes", len(extras))
	}

	if _, err := os.Stat(cfg.RecipesFile); err != nil {
		if cfg.RecipesFile != config.DefaultRecipesFile {
			return nil, fmt.Errorf("recipes file not found: %s", cfg.RecipesFile)
		}
		log.Debug(cfg.Verbose, "No recipes file at %s", cfg.RecipesFile)
		return recipes, nil
	}

	base, err := recipe.Load(cfg.RecipesFile)
	if err != nil {
		return nil, fmt.Errorf("recipes file %s: %w", cfg.RecipesFile, err)
	}
	log.Debug(cfg.Verbose, "Loaded %d recipes from %s", len(base), cfg.RecipesFile)
	return append(recipes, base...), nil
}

// readStdinPaths reads newline-separated file paths from stdin, skipping
// blank lines.
func readStdinPaths() ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		paths = append(paths, config.NormalizePathArg(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
