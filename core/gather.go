package core

import (
	"context"
	"sync"
	"time"
)

// Outcome is the per-slot result of a fan-out: a value or an error,
// never both meaningful at once.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Gather runs fn concurrently for indices 0..n-1 and waits for the full
// set to settle (join semantics). Results are placed by input index, so
// output order always matches input order regardless of completion order.
// A failing branch fills its own slot only; siblings are unaffected.
// When timeout is positive each branch gets its own deadline.
func Gather[T any](ctx context.Context, n int, timeout time.Duration, fn func(ctx context.Context, i int) (T, error)) []Outcome[T] {
	outcomes := make([]Outcome[T], n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			branchCtx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				branchCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			value, err := fn(branchCtx, i)
			outcomes[i] = Outcome[T]{Value: value, Err: err}
		}(i)
	}
	wg.Wait()

	return outcomes
}
