// Package fanout runs one function over many items with bounded concurrency.
// The services use it to load todos by id or by owner and to apply bulk todo
// updates; results keep the order of the input.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item. Err is set when fn failed or the
// context ended before the item got a worker.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. A maxWorkers below 1 is treated as 1.
//
// Items still waiting for a worker when ctx ends get ctx.Err() without fn
// being called. Calls already running are left to observe ctx themselves.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		}()
	}
	wg.Wait()
	return results
}
