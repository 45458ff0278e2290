// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for exiftool and the configured recipe
// and rule documents.
package check

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/fujitag/internal/config"
	"github.com/backmassage/fujitag/internal/naming"
	"github.com/backmassage/fujitag/internal/recipe"
)

// ErrExiftoolNotFound is returned by CheckDeps when the metadata extractor is missing.
var ErrExiftoolNotFound = errors.New("exiftool not found on PATH")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: exiftool availability and
// version, recipes document load, and rules document load. Returns false
// when something the pipeline would need is broken.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkExiftool(log)
	ok = checkRecipes(cfg, log) && ok
	ok = checkRules(cfg, log) && ok
	return ok
}

// checkExiftool verifies exiftool is on PATH and logs its version.
func checkExiftool(log Logger) bool {
	if _, err := exec.LookPath("exiftool"); err != nil {
		log.Error("exiftool not found")
		return false
	}
	out, err := exec.Command("exiftool", "-ver").Output()
	if err != nil {
		log.Warn("exiftool found but -ver failed: %v", err)
		return true
	}
	log.Success("exiftool: v%s", strings.TrimSpace(string(out)))
	return true
}

// checkRecipes loads the configured recipes document and reports the count.
// A missing default file is fine (no recipes, film-simulation fallback only);
// a missing user-specified file is an error.
func checkRecipes(cfg *config.Config, log Logger) bool {
	if _, err := os.Stat(cfg.RecipesFile); err != nil {
		if cfg.RecipesFile == config.DefaultRecipesFile {
			log.Info("No recipes file at %s (film-simulation fallback only)", cfg.RecipesFile)
			return true
		}
		log.Error("Recipes file not found: %s", cfg.RecipesFile)
		return false
	}
	recipes, err := recipe.Load(cfg.RecipesFile)
	if err != nil {
		log.Error("Recipes file invalid: %v", err)
		return false
	}
	log.Success("Recipes: %d loaded from %s", len(recipes), cfg.RecipesFile)
	return true
}

// checkRules loads the optional tag-rule overrides.
func checkRules(cfg *config.Config, log Logger) bool {
	if cfg.RulesFile == "" {
		log.Info("Tag rules: built-in defaults")
		return true
	}
	rules, err := naming.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Error("Rules file invalid: %v", err)
		return false
	}
	log.Success("Tag rules: %d drive-mode rules from %s", len(rules.DriveModes), cfg.RulesFile)
	return true
}

// CheckDeps is the pre-pipeline validation: exiftool must be on PATH.
// Returns a sentinel error on failure so main can fail fast before any file
// is touched.
func CheckDeps() error {
	if _, err := exec.LookPath("exiftool"); err != nil {
		return ErrExiftoolNotFound
	}
	return nil
}
