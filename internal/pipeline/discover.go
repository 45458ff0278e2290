package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Supported photo file extensions (lowercase, with leading dot).
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".raf":  true,
	".tif":  true,
	".tiff": true,
	".png":  true,
	".heif": true,
	".heic": true,
	".dng":  true,
	".webp": true,
	".mov":  true,
	".mp4":  true,
}

// Discover resolves the input arguments to the list of files to process.
// Files are taken as-is; directories are walked, filtered by photo extension
// and the optional doublestar glob (matched against the path relative to the
// walked directory). The result is deduplicated and sorted lexicographically
// for deterministic processing order. Inputs that do not exist are kept, so
// the runner can report them individually instead of aborting the batch.
func Discover(inputs []string, matchGlob string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, input := range inputs {
		fi, err := os.Stat(input)
		if err != nil || !fi.IsDir() {
			add(input)
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !photoExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			if matchGlob != "" {
				rel, err := filepath.Rel(input, path)
				if err != nil {
					return err
				}
				ok, err := doublestar.Match(matchGlob, filepath.ToSlash(rel))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
