// Package frontier provides the shared set of directories still waiting to be visited.
package frontier

import "sync"

// Frontier is a concurrency-safe multiset of directory paths.
// Workers push discovered subdirectories while the dispatcher pops work.
// Entries are not deduplicated and no ordering is guaranteed.
type Frontier struct {
	mu    sync.Mutex // Protect concurrent access
	items []string
}

// New returns a Frontier seeded with the given directories.
func New(seed ...string) *Frontier {
	items := make([]string, 0, len(seed))
	items = append(items, seed...)

	return &Frontier{items: items}
}

// Push adds a directory. Safe to call from any goroutine.
func (f *Frontier) Push(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, dir)
}

// Pop removes and returns one directory.
// The second return value is false if the frontier was empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.items)
	if n == 0 {
		return "", false
	}

	dir := f.items[n-1]
	f.items[n-1] = ""
	f.items = f.items[:n-1]

	return dir, true
}

// Empty reports whether the frontier held no entries at the time of the call.
// The answer may be stale by the time the caller acts on it.
func (f *Frontier) Empty() bool {
	return f.Len() == 0
}

// Len returns a snapshot of the number of pending entries.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.items)
}
