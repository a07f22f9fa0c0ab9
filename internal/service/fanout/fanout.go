// Package fanout runs the concurrent request groups behind bulk
// actions. Sub-requests are issued together and awaited jointly;
// one failure never cancels its siblings, matching the backend
// contract where bulk operations are not atomic.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Each runs fn once per item, concurrently, and waits for the whole
// group. The returned error joins every individual failure.
func Each[K any](ctx context.Context, items []K, fn func(ctx context.Context, item K) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(items))
	for i, item := range items {
		wg.Add(1)
		go func(i int, item K) {
			defer wg.Done()
			errs[i] = fn(ctx, item)
		}(i, item)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Collect runs fn once per item, concurrently, and returns the
// results in input order. The first failure (by input order) is
// returned and the results are discarded.
func Collect[K, R any](ctx context.Context, items []K, fn func(ctx context.Context, item K) (R, error)) ([]R, error) {
	var wg sync.WaitGroup
	results := make([]R, len(items))
	errs := make([]error, len(items))
	for i, item := range items {
		wg.Add(1)
		go func(i int, item K) {
			defer wg.Done()
			results[i], errs[i] = fn(ctx, item)
		}(i, item)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
