package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel runs fns concurrently and returns their results in order.
// The shared context is canceled as soon as one function fails.
//
// Example:
//
//	counts, err := Parallel(ctx,
//	    func(ctx context.Context) (int64, error) { return repo.Count(ctx, views...) },
//	    func(ctx context.Context) (int64, error) { return repo.Count(ctx, clicks...) },
//	)
func Parallel[T any](ctx context.Context, fns ...func(context.Context) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]T, len(fns))

	for i, fn := range fns {
		g.Go(func() error {
			result, err := fn(ctx)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parallel execution failed: %w", err)
	}

	return results, nil
}

// Parallel2 runs two differently typed functions concurrently.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r1, err = fn1(ctx)
		return err
	})
	g.Go(func() (err error) {
		r2, err = fn2(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return r1, r2, nil
}

// Parallel3 runs three differently typed functions concurrently.
func Parallel3[T1, T2, T3 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
	fn3 func(context.Context) (T3, error),
) (T1, T2, T3, error) {
	var (
		r1 T1
		r2 T2
		r3 T3
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r1, err = fn1(ctx)
		return err
	})
	g.Go(func() (err error) {
		r2, err = fn2(ctx)
		return err
	})
	g.Go(func() (err error) {
		r3, err = fn3(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
			zero3 T3
		)

		return zero1, zero2, zero3, fmt.Errorf("parallel execution failed: %w", err)
	}

	return r1, r2, r3, nil
}
