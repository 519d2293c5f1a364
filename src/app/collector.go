package app

import (
	"os"

	"github.com/rs/zerolog/log"
	bar "github.com/schollz/progressbar/v3"
)

// Stats summarizes one collection run.
type Stats struct {
	Parsed int
	Failed int
}

// CollectObjects parses every object file in dir and returns the
// successfully parsed objects in file enumeration order. Files that
// fail to parse are logged and counted, never emitted. Only a
// directory-level failure returns an error.
func CollectObjects(dir string) ([]Object, Stats, error) {
	var stats Stats

	total, err := CountObjectFiles(dir)
	if err != nil {
		return nil, stats, err
	}

	progress := bar.NewOptions(
		total,
		bar.OptionSetWriter(os.Stderr), // stdout is reserved for the JSON output
		bar.OptionSetDescription("Parsing objects"),
		bar.OptionShowCount(),
		bar.OptionShowIts(),
		bar.OptionSetItsString("files"),
		bar.OptionThrottle(100),
		bar.OptionClearOnFinish(),
	)

	objects := make([]Object, 0, total)
	files, errs := StreamObjectFiles(dir)

	for f := range files {
		obj, err := ParseObject(f.Raw)
		if err != nil {
			stats.Failed++
			log.Warn().Str("file", f.Name).Err(err).Msg("skipping unparseable object file")
			_ = progress.Add(1)
			continue
		}
		objects = append(objects, obj)
		stats.Parsed++
		_ = progress.Add(1)
	}
	_ = progress.Finish()

	if err, ok := <-errs; ok && err != nil {
		return nil, stats, err
	}

	log.Debug().
		Int("parsed", stats.Parsed).
		Int("failed", stats.Failed).
		Str("dir", dir).
		Msg("collected objects")

	return objects, stats, nil
}
