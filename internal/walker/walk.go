package walker

import (
	"log/slog"

	"github.com/idelchi/dirtotal/internal/frontier"
	"github.com/idelchi/dirtotal/internal/pool"
)

// Walk measures the tree under root using workers and returns the aggregated stats.
// It assumes root is an existing directory; see ValidateRoot.
// Per-directory failures are absorbed and counted, so Walk always produces a total.
// Elapsed is left for the caller to fill in.
func Walk(root string, workers *pool.Pool[Visit], opts Options) *Stats {
	stats := dispatch(frontier.New(root), workers, opts)
	stats.Root = root

	return stats
}

// dispatch drains pending through workers.
//
// Up to workers.Size() visits are kept in flight. Each finished visit is folded
// into the stats exactly once. A worker pushes the subdirectories it finds
// before it reports back, so once nothing is in flight an empty frontier
// means the walk is complete.
func dispatch(pending *frontier.Frontier, workers *pool.Pool[Visit], opts Options) *Stats {
	log := opts.logger()
	lister := opts.lister()

	limit := workers.Size()
	done := make(chan pool.Result[Visit], limit)
	inFlight := 0

	stats := &Stats{Workers: limit}

	for {
		for inFlight < limit {
			dir, ok := pending.Pop()
			if !ok {
				break
			}

			if err := workers.Submit(visitTask(dir, pending, lister, log), done); err != nil {
				log.Error("submitting visit", "dir", dir, "error", err)

				stats.ErrorCount++

				continue
			}

			inFlight++
		}

		if inFlight == 0 {
			break
		}

		res := <-done
		inFlight--

		if res.Err != nil {
			log.Error("visit failed", "worker", res.Worker, "error", res.Err)

			stats.ErrorCount++

			continue
		}

		stats.add(res.Value)
	}

	log.Debug("walk complete",
		"bytes", stats.TotalBytes,
		"dirs", stats.DirCount,
		"errors", stats.ErrorCount,
		"pending", pending.Len(),
	)

	return stats
}

func visitTask(dir string, pending *frontier.Frontier, lister Lister, log *slog.Logger) pool.Task[Visit] {
	return func(worker int) (Visit, error) {
		log.Debug("visiting directory", "dir", dir, "worker", worker)

		return visit(dir, pending, lister, log), nil
	}
}
