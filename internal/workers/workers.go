// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs indexed jobs on a bounded set of goroutines.
//
// Jobs receive their position in the input so that callers can write
// results into a pre-sized slice and keep the original order regardless of
// which goroutine finishes first.
package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job processes the i-th unit of work. Returning an error cancels the
// context passed to the remaining jobs.
type Job func(ctx context.Context, i int) error

// Pool bounds how many jobs run at the same time.
type Pool struct {
	limit int
}

// NewPool returns a pool running at most limit jobs concurrently. A limit
// below one is treated as one, which runs jobs sequentially in index order.
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Limit reports the pool's concurrency bound.
func (p *Pool) Limit() int {
	return p.limit
}

// Run executes job for every index in [0, n) and waits for all started jobs
// to finish. It returns the first job error, or ctx.Err() if ctx was
// cancelled before every job was started.
func (p *Pool) Run(ctx context.Context, n int, job Job) error {
	if p.limit == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := job(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
