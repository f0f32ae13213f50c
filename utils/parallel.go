package utils

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	gutils "go.viam.com/utils"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// WorkFunc runs for a single index of a ParallelFor loop.
type WorkFunc func(ctx context.Context, workNum int) error

// ParallelFor calls work for every index in [0, totalSize). The indices are split into at most
// ParallelFactor contiguous groups, each run on its own goroutine. The first failure cancels the
// context handed to the remaining work, and every failure other than the resulting cancellations
// is returned. A panic in work is returned as an error.
func ParallelFor(ctx context.Context, totalSize int, work WorkFunc) error {
	if totalSize <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numGroups := ParallelFactor
	if numGroups > totalSize {
		numGroups = totalSize
	}
	groupSize := totalSize / numGroups
	extra := totalSize % numGroups

	var bigError error
	var bigErrorMutex sync.Mutex
	storeError := func(err error) {
		bigErrorMutex.Lock()
		defer bigErrorMutex.Unlock()
		if bigError == nil || !errors.Is(err, context.Canceled) {
			bigError = multierr.Combine(bigError, err)
		}
		cancel()
	}

	var wait sync.WaitGroup
	wait.Add(numGroups)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		from := groupSize * groupNum
		to := from + groupSize
		if groupNum == numGroups-1 {
			to += extra
		}
		runGroup := func() {
			for workNum := from; workNum < to; workNum++ {
				if err := ctx.Err(); err != nil {
					storeError(err)
					return
				}
				if err := work(ctx, workNum); err != nil {
					storeError(err)
					return
				}
			}
		}
		// A panicking group never reaches Done in the first func, so the callback releases it.
		gutils.PanicCapturingGoWithCallback(func() {
			runGroup()
			wait.Done()
		}, func(thePanic interface{}) {
			storeError(fmt.Errorf("got panic running work in parallel: %v", thePanic))
			wait.Done()
		})
	}
	wait.Wait()
	return bigError
}
