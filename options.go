// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Options configures a Connection via the functional options pattern:
// an Options struct, a private package-level defaultOptions, and
// With... constructors, rather than a config file or environment
// variables.
type Options struct {
	// RetryDelay controls how Connection handles ErrWouldBlock from the
	// underlying Stream:
	//   - negative: nonblock, return ErrWouldBlock to the caller immediately
	//   - zero: cooperative yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration (via Clock) and retry
	RetryDelay time.Duration

	// Clock is the time source used for the positive-RetryDelay sleep.
	// Swapping in clock.NewMock() makes retry/backoff behavior
	// deterministic in tests.
	Clock clock.Clock

	// ReadChunk is how many bytes Connection requests from
	// DynamicBuffer.Prepare per underlying Read call while a
	// MatchCondition is not yet satisfied.
	ReadChunk int
}

var defaultOptions = Options{
	RetryDelay: -1, // nonblock by default
	Clock:      clock.New(),
	ReadChunk:  4096,
}

// Option configures a Connection at construction time.
type Option func(*Options)

// WithRetryDelay sets the retry/wait policy used when the underlying
// Stream returns ErrWouldBlock.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on
// ErrWouldBlock.
func WithBlock() Option { return WithRetryDelay(0) }

// WithNonblock forces non-blocking behavior: ErrWouldBlock is returned
// to the caller immediately instead of being retried.
func WithNonblock() Option { return WithRetryDelay(-1) }

// WithClock overrides the time source used for positive RetryDelay
// sleeps. Tests should pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(o *Options) { o.Clock = c }
}

// WithReadChunk overrides how many bytes Connection requests per
// underlying Read call while filling a DynamicBuffer.
func WithReadChunk(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ReadChunk = n
		}
	}
}
