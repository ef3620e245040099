package walker

import (
	"log/slog"
	"path/filepath"

	"github.com/idelchi/dirtotal/internal/frontier"
)

// Visit is the outcome of listing a single directory.
// Subdirectories are not part of it; they go back onto the frontier.
type Visit struct {
	// Bytes is the size of the regular files directly inside the directory.
	Bytes uint64
	// Files is the number of those files.
	Files int64
	// Dirs is the number of subdirectories pushed onto the frontier.
	Dirs int64
	// Errors counts entries (or the directory itself) that could not be read.
	Errors int64
}

// visit lists dir, sums its regular files and pushes its subdirectories onto pending.
// A directory that cannot be listed contributes nothing.
func visit(dir string, pending *frontier.Frontier, lister Lister, log *slog.Logger) Visit {
	entries, err := lister.ReadDir(dir)
	if err != nil {
		log.Debug("skipping unreadable directory", "dir", dir, "error", err)

		return Visit{Errors: 1}
	}

	var v Visit

	for _, d := range entries { //nolint:varnamelen // d is standard for DirEntry
		switch {
		case d.IsDir():
			pending.Push(filepath.Join(dir, d.Name()))
			v.Dirs++
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				log.Debug("skipping unreadable file", "path", filepath.Join(dir, d.Name()), "error", err)

				v.Errors++

				continue
			}

			v.Bytes += uint64(info.Size()) //nolint:gosec // Regular file sizes are never negative
			v.Files++
		}
	}

	return v
}
