// Package parallel provides small helpers for distributing independent work
// items across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across up to runtime.NumCPU() workers and calls
// fn with a half-open range [start, end) on each worker. It returns after
// every worker has finished.
//
// fn must only write to item-local state (distinct indices), never to state
// shared between ranges.
func Parallelize(items int, fn func(start, end int)) {
	ParallelizeN(runtime.NumCPU(), items, fn)
}

// ParallelizeN is Parallelize with an explicit worker cap.
func ParallelizeN(workers, items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > items {
		workers = items
	}

	// Ceiling division so every item lands in exactly one chunk.
	chunkSize := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
