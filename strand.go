// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Strand serializes multi-goroutine access to one Connection: the core
// itself performs no locking, so concurrent callers must funnel access
// through something that serializes it. Strand runs queued operations
// one at a time on a single worker goroutine, supervised by an
// errgroup.Group.
type Strand struct {
	conn  *Connection
	queue chan strandJob
	group *errgroup.Group
	stop  context.CancelFunc
}

type strandJob struct {
	fn   func(*Connection) error
	done chan error
}

// NewStrand starts a Strand serializing access to conn. Call Close when
// done to stop the worker goroutine.
func NewStrand(ctx context.Context, conn *Connection) *Strand {
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	s := &Strand{
		conn:  conn,
		queue: make(chan strandJob),
		group: g,
		stop:  cancel,
	}
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case job := <-s.queue:
				job.done <- job.fn(s.conn)
			}
		}
	})
	return s
}

// Do queues fn to run exclusively against the Strand's Connection and
// blocks until it has run (or ctx is done first). Multiple goroutines
// may call Do concurrently; fn calls never overlap.
func (s *Strand) Do(ctx context.Context, fn func(*Connection) error) error {
	done := make(chan error, 1)
	select {
	case s.queue <- strandJob{fn: fn, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker goroutine and waits for it to exit.
func (s *Strand) Close() error {
	s.stop()
	err := s.group.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}
