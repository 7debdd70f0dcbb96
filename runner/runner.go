// Package runner runs groups of Runnable components.
package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runnable represents a component that can be run with a context.
type Runnable interface {
	Run(ctx context.Context) error
}

// RunAll runs all the provided runnables concurrently and waits for all of them to finish.
//
// This method is blocking and will return an error if any of the runnables returns an error.
func RunAll(parentCtx context.Context, runnables ...Runnable) error {
	group, ctx := errgroup.WithContext(parentCtx)

	for _, runnable := range runnables {
		runnable := runnable
		group.Go(func() error {
			return runnable.Run(ctx)
		})
	}

	return group.Wait()
}

// RunSequential runs the provided runnables one after the other, in the given
// order, stopping at the first failure or context cancellation.
func RunSequential(ctx context.Context, runnables ...Runnable) error {
	for _, runnable := range runnables {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := runnable.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
