// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs process over items on workerCount goroutines and returns the
// results index-aligned with items. The first error cancels the remaining
// work; onCancel, when set, is invoked once at that point.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
	onCancel func(),
) ([]R, error) {
	if workerCount <= 0 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type task struct {
		index int
		item  T
	}

	results := make([]R, len(items))
	tasks := make(chan task, workerCount)
	errs := make(chan error, 1)
	var cancelOnce sync.Once
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-tasks:
					if !ok {
						return
					}
					res, err := process(ctx, t.item)
					if err != nil {
						select {
						case errs <- err:
						default:
						}
						cancelOnce.Do(func() {
							if onCancel != nil {
								onCancel()
							}
							cancel()
						})
						return
					}
					results[t.index] = res
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- task{index: i, item: item}:
			}
		}
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
