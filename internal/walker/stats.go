package walker

import (
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// DefaultWorkers is the worker pool size used when none is configured.
const DefaultWorkers = 8

// Stats holds the aggregate result of a walk.
type Stats struct {
	// Root is the directory the walk started from.
	Root string `json:"root"`
	// TotalBytes is the cumulative size of all regular files under Root.
	TotalBytes uint64 `json:"total_bytes"`
	// FileCount is the number of regular files counted.
	FileCount int64 `json:"file_count"`
	// DirCount is the number of directory visits that completed.
	DirCount int64 `json:"dir_count"`
	// ErrorCount is the number of listing, stat and task errors absorbed.
	ErrorCount int64 `json:"error_count"`
	// Workers is the size of the worker pool used.
	Workers int `json:"workers"`
	// Elapsed is the wall-clock duration of the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// add folds one visit into the totals. Only the dispatcher calls it.
func (s *Stats) add(v Visit) {
	s.TotalBytes += v.Bytes
	s.FileCount += v.Files
	s.ErrorCount += v.Errors
	s.DirCount++
}

// Options configures a walk and CLI behavior.
type Options struct {
	// Path is the directory to measure.
	Path string
	// Workers is the worker pool size (<= 0 selects DefaultWorkers).
	Workers int
	// Logger receives per-visit debug events. Nil discards them.
	Logger *slog.Logger
	// Lister lists directories. Nil uses the operating system.
	Lister Lister
	// Output represents output format (table or json).
	Output string
	// Debug indicates whether debug logging is enabled.
	Debug bool
	// LogFormat is the log handler format (text or json, empty = auto).
	LogFormat string
	// Verify indicates whether to cross-check the total with a reference walk.
	Verify bool
	// Version indicates whether to show version and exit.
	Version bool
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

func (o Options) lister() Lister {
	if o.Lister == nil {
		return osLister{}
	}

	return o.Lister
}

// Lister lists the immediate entries of a directory.
// fstest.MapFS and other fs.ReadDirFS implementations satisfy it.
type Lister interface {
	ReadDir(name string) ([]fs.DirEntry, error)
}

type osLister struct{}

func (osLister) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
