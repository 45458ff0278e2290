// Package pipeline orchestrates file discovery, per-file processing, and
// batch summary reporting.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/fujitag/internal/config"
	"github.com/backmassage/fujitag/internal/exif"
	"github.com/backmassage/fujitag/internal/logging"
	"github.com/backmassage/fujitag/internal/naming"
	"github.com/backmassage/fujitag/internal/recipe"
)

// Run is the top-level batch entry point. It discovers files, processes each
// one sequentially to completion, and returns aggregate stats. Every per-file
// failure is reported individually while the batch continues; context
// cancellation stops between files.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger,
	recipes []recipe.Recipe, rules *naming.TagRules) RunStats {

	var stats RunStats

	files, err := Discover(cfg.Inputs, cfg.MatchGlob)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	claims := naming.NewClaimTracker()

	logBatchHeader(cfg, log, &stats, len(recipes))

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, path, &stats, recipes, rules, claims)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one photo: read metadata → match recipes → derive tags
// → rename (or preview). No state survives beyond the stats counters.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	recipes []recipe.Recipe,
	rules *naming.TagRules,
	claims *naming.ClaimTracker,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	// --- Validate ---
	if _, err := os.Stat(path); err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Read metadata (single exiftool JSON call per file) ---
	attrs, err := exif.Read(ctx, path)
	if err != nil {
		log.Error("Metadata unavailable: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}

	if cfg.Verbose {
		logAttributes(log, attrs)
	}

	// --- Match recipes (first full match wins) ---
	matched, reports := recipe.FirstMatch(attrs, recipes)
	logMatchReports(cfg, log, reports)

	recipeName := ""
	if matched != nil {
		recipeName = matched.Name
		log.Match("Recipe: %s", matched.Name)
	}

	// --- Derive tags and the new name ---
	tags := naming.Derive(attrs, recipeName, rules)
	newName := naming.NewName(basename, tags)

	if tags.Empty() || newName == basename {
		log.Info("No tags derived, leaving unchanged")
		stats.Unchanged++
		fmt.Println()
		return
	}

	log.Info("  -> %s", newName)

	// --- In-run collision check: two inputs must not compute one target ---
	target := filepath.Join(filepath.Dir(path), newName)
	if err := claims.Claim(path, target); err != nil {
		log.Warn("Skip (target claimed by another file): %s", newName)
		stats.Skipped++
		fmt.Println()
		return
	}

	// --- Preview mode ---
	if !cfg.Rename {
		log.Success("[DRY] Would rename to %s", newName)
		stats.Renamed++
		fmt.Println()
		return
	}

	// --- Rename ---
	if _, err := naming.Rename(path, newName, cfg.Force); err != nil {
		if errors.Is(err, naming.ErrTargetExists) {
			log.Warn("Skip (target exists): %s", newName)
			stats.Skipped++
		} else {
			log.Error("Rename failed: %v", err)
			stats.Failed++
		}
		fmt.Println()
		return
	}

	log.Success("Renamed to %s", newName)
	stats.Renamed++
	fmt.Println()
}

// logAttributes dumps the full attribute map in sorted order, one line per
// tag, for user troubleshooting.
func logAttributes(log *logging.Logger, attrs exif.Attributes) {
	log.Debug(true, "EXIF attributes (%d):", len(attrs))
	for _, key := range attrs.SortedKeys() {
		log.Debug(true, "  %s: %s", key, attrs[key])
	}
}

// logMatchReports traces every evaluated recipe and the keys that ruled it
// out. Verbose only: this is diagnostic output, not part of the result.
func logMatchReports(cfg *config.Config, log *logging.Logger, reports []recipe.Report) {
	if !cfg.Verbose {
		return
	}
	for _, rep := range reports {
		if rep.Matched {
			log.Debug(true, "Recipe %q: all settings match", rep.Recipe)
			continue
		}
		parts := make([]string, 0, len(rep.Mismatches))
		for _, m := range rep.Mismatches {
			if m.Missing {
				parts = append(parts, fmt.Sprintf("%s: want %q, attribute absent", m.Key, m.Want))
			} else {
				parts = append(parts, fmt.Sprintf("%s: want %q, got %q", m.Key, m.Want, m.Got))
			}
		}
		log.Debug(true, "Recipe %q: no match (%s)", rep.Recipe, strings.Join(parts, "; "))
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, recipeCount int) {
	log.Info("Found %d files", stats.Total)
	log.Info("Recipes: %d configured", recipeCount)

	if cfg.Rename {
		log.Info("Mode: rename")
	} else {
		log.Info("Mode: preview (pass --rename to apply)")
	}
	if cfg.MatchGlob != "" {
		log.Info("Match: %s", cfg.MatchGlob)
	}
	if cfg.Force {
		log.Warn("Force: existing targets will be overwritten")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	verb := "renamed"
	if !cfg.Rename {
		verb = "would rename"
	}
	log.Info("Done: %d %s, %d unchanged, %d skipped, %d failed",
		stats.Renamed, verb, stats.Unchanged, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d", stats.Current)
}
