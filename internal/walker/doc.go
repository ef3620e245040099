// Package walker computes the total size of a directory tree.
//
// Directories waiting to be listed live in a shared frontier. A single
// dispatcher pops entries, hands each one to a fixed-size worker pool and
// folds the byte count of every finished visit into a running total. Workers
// push the subdirectories they discover back onto the frontier, and the walk
// ends once the frontier is empty and no visit is still running.
package walker
