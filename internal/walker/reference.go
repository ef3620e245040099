package walker

import (
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Reference sums the regular files under root with fastwalk, independently of
// the frontier and pool. It follows the same rules as Walk: symlinks are not
// followed and unreadable entries are skipped.
func Reference(root string) (uint64, error) {
	var total atomic.Uint64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d == nil {
			return nil // Silently skip errors
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total.Add(uint64(info.Size())) //nolint:gosec // Regular file sizes are never negative

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reference walk of %q: %w", root, err)
	}

	return total.Load(), nil
}
