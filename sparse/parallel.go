// SPDX-License-Identifier: MIT

package sparse

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	// parallelThreshold is the minimum row count before row kernels fan out.
	// Narrower inputs run inline to keep cache locality.
	parallelThreshold = 64

	// maxParallelWorkers caps the goroutines per kernel call.
	maxParallelWorkers = 8
)

// forEachRow calls fn(i) for i in [0, n), splitting the range into chunks
// that run concurrently. fn must only write state owned by row i.
func forEachRow(n int, fn func(i int)) {
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	workers := min(runtime.GOMAXPROCS(0), maxParallelWorkers)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait() // row kernels cannot fail
}

func sortInts(a []int) { sort.Ints(a) }
