package app

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog/log"
)

// ObjectFile is one candidate object definition file: its name within
// the objects directory and its raw text.
type ObjectFile struct {
	Name string
	Raw  string
}

// Bookkeeping files the game keeps next to the object definitions.
var nonObjectFilePattern = regexp.MustCompile(`^(nextObjectNumber|groundHeat_\d+)\.txt$`)

func isObjectFile(name string) bool {
	if filepath.Ext(name) != ".txt" {
		return false
	}
	return !nonObjectFilePattern.MatchString(name)
}

// StreamObjectFiles opens the objects directory and streams candidate
// files as they are read. Unreadable files are logged and skipped; only
// directory-level failures are sent on errs and terminate the stream.
func StreamObjectFiles(dir string) (<-chan ObjectFile, <-chan error) {
	out := make(chan ObjectFile)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		info, err := os.Stat(dir)
		if err != nil {
			errs <- fmt.Errorf("objects directory: %w", err)
			return
		}
		if !info.IsDir() {
			errs <- fmt.Errorf("objects directory: %s is not a directory", dir)
			return
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			errs <- fmt.Errorf("read objects directory: %w", err)
			return
		}

		for _, e := range entries {
			if e.IsDir() || !isObjectFile(e.Name()) {
				continue
			}
			path := filepath.Join(dir, e.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				log.Warn().Str("file", path).Err(err).Msg("skipping unreadable file")
				continue
			}
			out <- ObjectFile{Name: e.Name(), Raw: string(data)}
		}
	}()

	return out, errs
}

// CountObjectFiles returns how many candidate object files the
// directory holds, for progress reporting.
func CountObjectFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read objects directory: %w", err)
	}

	total := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isObjectFile(e.Name()) {
			total++
		}
	}

	return total, nil
}
