// Package workers runs index-addressed jobs on a fixed number of goroutines.
package workers

import "sync"

// Run calls fn(i) for every i in [0, n), splitting the range into contiguous
// chunks over at most count goroutines. fn must only write to state owned
// by index i. With count <= 1 (or n <= 1) everything runs on the caller's
// goroutine.
func Run(count, n int, fn func(i int)) {
	if count <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	count = min(count, n)

	var wg sync.WaitGroup
	chunkSize := (n + count - 1) / count

	for workerID := 0; workerID < count; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, n)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
