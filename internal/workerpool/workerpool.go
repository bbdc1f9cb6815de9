// Package workerpool fans independent boolean checks out over a bounded set of
// goroutines and folds the verdicts back with a logical AND.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Options controls a Run.
type Options struct {
	// Workers is the number of parallel workers (0 = auto-detect based on CPU cores)
	Workers int

	// FailFast stops dispatching new work after the first false verdict.
	FailFast bool
}

// Result holds the verdicts of a Run.
type Result struct {
	Verdicts []bool // Verdicts[i] is check(i); unchecked entries stay false
	Checked  int    // Number of checks that ran
	Passed   bool   // Every index was checked and returned true
}

// Run evaluates check(i) for every i in [0, n).
//
// check must be safe to call from multiple goroutines. Run returns the
// parent context's error if it is cancelled before all work is done.
func Run(ctx context.Context, n int, opts Options, check func(i int) bool) (*Result, error) {
	result := &Result{Verdicts: make([]bool, n)}
	if n == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Passed = true
		return result, nil
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > n {
		numWorkers = n
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan int, numWorkers*2)

	var checked int64
	var rejected int32

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(runCtx, workChan, func(idx int) {
				ok := check(idx)
				result.Verdicts[idx] = ok
				atomic.AddInt64(&checked, 1)
				if !ok {
					atomic.StoreInt32(&rejected, 1)
					if opts.FailFast {
						cancel()
					}
				}
			})
		}()
	}

dispatch:
	for i := 0; i < n; i++ {
		select {
		case <-runCtx.Done():
			break dispatch
		case workChan <- i:
		}
	}
	close(workChan)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Checked = int(atomic.LoadInt64(&checked))
	result.Passed = atomic.LoadInt32(&rejected) == 0 && result.Checked == n
	return result, nil
}

// worker processes indices from the work channel until it is closed or the
// context is cancelled.
func worker(ctx context.Context, workChan <-chan int, process func(int)) {
	for {
		select {
		case <-ctx.Done():
			return
		case idx, ok := <-workChan:
			if !ok {
				return // Channel closed, no more work
			}
			process(idx)
		}
	}
}
