package tree

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/dcsaszar/jasmine/pkg/suite"
)

// MaxWorkers is the maximum number of concurrent workers allowed.
const MaxWorkers = 1024

// FoldConcurrent applies fn to each direct child of root with bounded
// parallelism and returns the produced values in declaration order,
// regardless of completion order. Sibling subtrees are safe to process
// concurrently because each branch's fixture context is an independent
// snapshot. workers <= 0 uses GOMAXPROCS; the first error cancels the
// remaining work.
func FoldConcurrent[T any](ctx context.Context, root *suite.Suite, workers int, fn func(context.Context, suite.Child) (T, error)) ([]T, error) {
	children := root.Children()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	// One slot per child keeps declaration order without sorting.
	results := make([]T, len(children))

	for i, c := range children {
		i, c := i, c

		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			v, err := fn(gCtx, c)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WalkConcurrent visits each direct child of root on its own goroutine with
// bounded parallelism. It is FoldConcurrent without a produced value.
func WalkConcurrent(ctx context.Context, root *suite.Suite, workers int, fn func(context.Context, suite.Child) error) error {
	_, err := FoldConcurrent(ctx, root, workers, func(ctx context.Context, c suite.Child) (struct{}, error) {
		return struct{}{}, fn(ctx, c)
	})
	return err
}
