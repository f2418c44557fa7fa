package main

import (
	"context"
	"runtime"
	"sync"
)

// runPool calls work for every index in [0, n) on at most size goroutines
// and returns the results in index order. Once ctx is canceled, remaining
// jobs are not started and report ctx.Err() through skipped.
func runPool[T any](ctx context.Context, size, n int, work func(ctx context.Context, i int) T, skipped func(i int, err error) T) []T {
	if n == 0 {
		return nil
	}
	if size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}

	results := make([]T, n)
	jobs := make(chan int, n)
	var wg sync.WaitGroup

	for w := 0; w < size; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = skipped(idx, err)
					continue
				}
				results[idx] = work(ctx, idx)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return max(1, runtime.GOMAXPROCS(0))
}
