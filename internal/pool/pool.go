// Package pool implements a fixed-size worker pool whose tasks report a single result each.
package pool

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultSize is the number of workers used when a non-positive size is requested.
const DefaultSize = 8

var (
	// ErrClosed is returned by Submit after Shutdown has been called.
	ErrClosed = errors.New("pool is shut down")
	// ErrTaskPanic wraps the value recovered from a panicking task.
	ErrTaskPanic = errors.New("task panicked")
)

// Task is a unit of work. worker is the index of the goroutine executing it.
type Task[T any] func(worker int) (T, error)

// Result is what a worker reports once a task has finished.
type Result[T any] struct {
	// Value is the task's return value.
	Value T
	// Err is the task's error, or a wrapped ErrTaskPanic.
	Err error
	// Worker is the index of the worker that ran the task.
	Worker int
}

type job[T any] struct {
	task Task[T]
	done chan<- Result[T]
}

// Pool runs submitted tasks on a fixed number of goroutines.
type Pool[T any] struct {
	size int
	jobs chan job[T]

	mu     sync.RWMutex // Guards closed against concurrent Submit
	closed bool

	group *errgroup.Group
	once  sync.Once
}

// New starts a pool with size workers.
func New[T any](size int) *Pool[T] {
	if size < 1 {
		size = DefaultSize
	}

	p := &Pool[T]{
		size:  size,
		jobs:  make(chan job[T], size),
		group: new(errgroup.Group),
	}

	for worker := range size {
		p.group.Go(func() error {
			for j := range p.jobs {
				j.done <- run(worker, j.task)
			}

			return nil
		})
	}

	return p
}

// Size returns the number of workers.
func (p *Pool[T]) Size() int {
	return p.size
}

// Submit queues task. The worker that executes it sends exactly one Result on done,
// so done must have room for it or be drained by the caller.
// Submit blocks while the queue is full.
func (p *Pool[T]) Submit(task Task[T], done chan<- Result[T]) error {
	if task == nil {
		return errors.New("nil task")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	p.jobs <- job[T]{task: task, done: done}

	return nil
}

// Shutdown stops accepting tasks, lets queued tasks finish and waits for all workers.
// It is safe to call more than once.
func (p *Pool[T]) Shutdown() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()

		_ = p.group.Wait() // workers never return an error
	})
}

func run[T any](worker int, task Task[T]) (res Result[T]) {
	res.Worker = worker

	defer func() {
		if r := recover(); r != nil {
			var zero T

			res.Value = zero
			res.Err = fmt.Errorf("%w on worker %d: %v", ErrTaskPanic, worker, r)
		}
	}()

	res.Value, res.Err = task(worker)

	return res
}
