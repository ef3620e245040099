package walker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/idelchi/dirtotal/internal/pool"
)

// ErrInvalidRoot is returned when the root path does not exist or is not a directory.
var ErrInvalidRoot = errors.New("invalid root")

// ValidateRoot checks that path exists and is a directory.
func ValidateRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: accessing path %q: %w", ErrInvalidRoot, path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: path %q is not a directory", ErrInvalidRoot, path)
	}

	return nil
}

// Run validates opt.Path, walks it on a pool of opt.Workers goroutines and
// returns the aggregated statistics. The pool is shut down before Run returns.
func Run(opt Options) (*Stats, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	if err := ValidateRoot(opt.Path); err != nil {
		return nil, err
	}

	if opt.Workers <= 0 {
		opt.Workers = DefaultWorkers
	}

	workers := pool.New[Visit](opt.Workers)
	defer workers.Shutdown()

	opt.logger().Debug("starting walk", "root", opt.Path, "workers", opt.Workers)

	start := time.Now()

	stats := Walk(opt.Path, workers, opt)

	stats.Elapsed = time.Since(start)

	return stats, nil
}

// ComputeTotalSize returns the number of bytes held by regular files under root,
// using a pool of workerCount goroutines.
func ComputeTotalSize(root string, workerCount int) (uint64, error) {
	stats, err := Run(Options{Path: root, Workers: workerCount})
	if err != nil {
		return 0, err
	}

	return stats.TotalBytes, nil
}
