// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import (
	"context"
	"io"
	"runtime"
	"time"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock and ErrMore are re-exported from code.hybscloud.com/iox,
// the same non-blocking control-flow signals a Stream implementation
// surfaces from a nonblocking socket or pipe.
var (
	ErrWouldBlock = iox.ErrWouldBlock
	ErrMore       = iox.ErrMore
)

// Stream is the byte-stream carrier a Connection is polymorphic over:
// anything offering ordinary io.Reader/io.Writer semantics. A Stream
// may additionally implement Deadliner to participate in
// context-based cancellation of async operations.
type Stream interface {
	io.Reader
	io.Writer
}

// Deadliner is implemented by streams that support unblocking a
// pending Read/Write by arming a deadline (net.Conn does). When the
// Stream passed to NewConnection implements it, AsyncRead/AsyncWrite
// arm a past deadline on context cancellation: cancellation is
// delegated to the underlying stream rather than handled separately.
type Deadliner interface {
	SetDeadline(t time.Time) error
}

// Connection is the I/O adaptor: it owns a Stream exclusively and
// composes MatchCondition-driven reads with Parse to deliver whole
// replies, while serializing commands for writes. The core performs no
// internal locking; concurrent access to one Connection from multiple
// goroutines must be funneled through a Strand.
type Connection struct {
	stream Stream
	opts   Options
}

// NewConnection constructs a Connection over stream. stream must not be
// nil.
func NewConnection(stream Stream, opts ...Option) (*Connection, error) {
	if stream == nil {
		return nil, ErrInvalidArgument
	}
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Connection{stream: stream, opts: o}, nil
}

// Stream returns the underlying Stream for direct access: cancellation,
// deadlines, or stream-level options the core itself has no opinion on.
func (c *Connection) Stream() Stream { return c.stream }

func (c *Connection) waitOnceOnWouldBlock() bool {
	if c.opts.RetryDelay < 0 {
		return false
	}
	if c.opts.RetryDelay == 0 {
		runtime.Gosched()
		return true
	}
	c.opts.Clock.Sleep(c.opts.RetryDelay)
	return true
}

func (c *Connection) writeOnce(p []byte) (int, error) {
	n, err := c.stream.Write(p)
	if len(p) != 0 && n == 0 && err == nil {
		return 0, io.ErrShortWrite
	}
	return n, err
}

func (c *Connection) readOnce(p []byte) (int, error) {
	n, err := c.stream.Read(p)
	if len(p) != 0 && n == 0 && err == nil {
		return 0, io.ErrNoProgress
	}
	return n, err
}

// flush drains buf's entire readable region to the stream, retrying on
// ErrWouldBlock per the configured RetryDelay policy and retrying
// immediately (no wait) on ErrMore, which signals guaranteed further
// progress rather than backpressure.
func (c *Connection) flush(buf *DynamicBuffer) (int, error) {
	total := 0
	for buf.Size() > 0 {
		n, err := c.writeOnce(buf.Data())
		if n > 0 {
			buf.Consume(n)
			total += n
		}
		if err != nil {
			if err == ErrMore {
				continue
			}
			if err == ErrWouldBlock {
				if c.waitOnceOnWouldBlock() {
					continue
				}
			}
			return total, err
		}
	}
	return total, nil
}

// Write serializes cmd into buf and drains the encoding to the stream,
// returning the number of bytes written.
func (c *Connection) Write(buf *DynamicBuffer, cmd Command) (int, error) {
	if err := Serialize(buf, cmd); err != nil {
		return 0, err
	}
	return c.flush(buf)
}

// fill reads more bytes from the stream into buf's writable region,
// retrying on ErrWouldBlock per the configured RetryDelay policy and
// retrying immediately (no wait) on ErrMore, which signals guaranteed
// further progress rather than backpressure. Progress (n > 0) is
// reported to the caller as a plain success even if it arrived
// alongside one of these signals: the caller's own read loop re-drives
// fill on the next iteration if it still needs more.
func (c *Connection) fill(buf *DynamicBuffer) (int, error) {
	for {
		p := buf.Prepare(c.opts.ReadChunk)
		n, err := c.readOnce(p)
		if n > 0 {
			buf.Commit(n)
			return n, nil
		}
		if err != nil {
			if err == ErrMore {
				continue
			}
			if err == ErrWouldBlock {
				if c.waitOnceOnWouldBlock() {
					continue
				}
			}
			return 0, err
		}
	}
}

// readReplies drives an underlying read loop with a MatchCondition
// until n replies' worth of bytes have accumulated, then Parses
// exactly that window under policy. It does not Consume buf itself;
// the caller consumes Outcome.Consumed bytes once it is done with the
// result.
func (c *Connection) readReplies(buf *DynamicBuffer, n int, policy Policy) (Outcome, error) {
	if n < 1 {
		return Outcome{}, ErrInvalidArgument
	}
	mc := NewMatchCondition(n)
	for {
		data := buf.Data()
		end, done := mc.Check(data, 0)
		if done {
			if end == 0 {
				// MatchCondition hit a protocol error before matching
				// all n replies (possibly after already matching some
				// of them). data already holds enough bytes to
				// reproduce exactly which reply failed and why;
				// decodeWindow re-walks from the front and surfaces
				// that reply's own Outcome instead of a Positive
				// result over whatever replies preceded it.
				o := decodeWindow(data, n, policy)
				return o, o.Err()
			}
			return decodeWindow(data[:end], n, policy), nil
		}
		if _, err := c.fill(buf); err != nil {
			return Outcome{}, err
		}
	}
}

// decodeWindow decodes up to n replies from the front of window. If
// every one of them parses cleanly it returns a single Positive
// Outcome: the lone reply's Marker when n == 1, or a KindArray Marker
// of n elements when n > 1, with Marker ranges reported relative to
// window (i.e. to buf.Data() at call time), matching Parse's normal
// contract. If any of the n replies fails to parse, decodeWindow stops
// and returns that reply's own Outcome (NotEnoughData or Error)
// unchanged, instead of a spurious Positive result covering only the
// replies that came before it.
func decodeWindow(window []byte, n int, policy Policy) Outcome {
	if n == 1 {
		return Parse(window, policy)
	}
	c := NewCursor(window)
	var elems []Marker
	if policy == KeepResult {
		elems = make([]Marker, 0, n)
	}
	at := 0
	for i := 0; i < n; i++ {
		sub := parseOne(c, at, policy)
		if sub.Status != Positive {
			return sub
		}
		if policy == KeepResult {
			elems = append(elems, sub.Result)
		}
		at += sub.Consumed
	}
	if policy != KeepResult {
		return Outcome{Status: Positive, Consumed: at}
	}
	return Outcome{Status: Positive, Consumed: at, Result: arrayMarker(elems)}
}

// Read reads and decodes exactly one reply under the keep-result
// Policy.
func (c *Connection) Read(buf *DynamicBuffer) (Outcome, error) {
	return c.readReplies(buf, 1, KeepResult)
}

// ReadN reads and decodes exactly n replies under policy. A pipelined
// caller that wrote P commands and wants the matching replies calls
// ReadN(buf, P, KeepResult).
func (c *Connection) ReadN(buf *DynamicBuffer, n int, policy Policy) (Outcome, error) {
	return c.readReplies(buf, n, policy)
}

// AsyncWrite runs Write on a new goroutine and invokes cb exactly once
// with its result. If stream implements Deadliner, ctx cancellation
// arms an immediate deadline to unblock a pending Write.
func (c *Connection) AsyncWrite(ctx context.Context, buf *DynamicBuffer, cmd Command, cb func(n int, err error)) {
	go func() {
		stop := c.armCancellation(ctx)
		defer stop()
		n, err := c.Write(buf, cmd)
		cb(n, err)
	}()
}

// AsyncRead runs ReadN(buf, n, policy) on a new goroutine and invokes
// cb exactly once with its result.
func (c *Connection) AsyncRead(ctx context.Context, buf *DynamicBuffer, n int, policy Policy, cb func(Outcome, error)) {
	go func() {
		stop := c.armCancellation(ctx)
		defer stop()
		o, err := c.ReadN(buf, n, policy)
		cb(o, err)
	}()
}

// WriteFuture is the future-style completion for AsyncWriteFuture.
type WriteFuture struct {
	done chan struct{}
	n    int
	err  error
}

// Wait blocks until the write completes or ctx is done, whichever comes
// first.
func (f *WriteFuture) Wait(ctx context.Context) (int, error) {
	select {
	case <-f.done:
		return f.n, f.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// AsyncWriteFuture is the future-based completion style: the same
// Connection serves callback, future, and plain-goroutine callers
// equivalently.
func (c *Connection) AsyncWriteFuture(ctx context.Context, buf *DynamicBuffer, cmd Command) *WriteFuture {
	f := &WriteFuture{done: make(chan struct{})}
	c.AsyncWrite(ctx, buf, cmd, func(n int, err error) {
		f.n, f.err = n, err
		close(f.done)
	})
	return f
}

// ReadFuture is the future-style completion for AsyncReadFuture.
type ReadFuture struct {
	done    chan struct{}
	outcome Outcome
	err     error
}

// Wait blocks until the read completes or ctx is done, whichever comes
// first.
func (f *ReadFuture) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-f.done:
		return f.outcome, f.err
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// AsyncReadFuture is the future-based completion style for reads.
func (c *Connection) AsyncReadFuture(ctx context.Context, buf *DynamicBuffer, n int, policy Policy) *ReadFuture {
	f := &ReadFuture{done: make(chan struct{})}
	c.AsyncRead(ctx, buf, n, policy, func(o Outcome, err error) {
		f.outcome, f.err = o, err
		close(f.done)
	})
	return f
}

// armCancellation arms a past deadline on the stream when ctx is
// cancelled, if the stream supports it, and returns a stop function the
// caller must invoke once the operation completes to release the
// watcher goroutine.
func (c *Connection) armCancellation(ctx context.Context) (stop func()) {
	if ctx == nil || ctx.Done() == nil {
		return func() {}
	}
	d, ok := c.stream.(Deadliner)
	if !ok {
		return func() {}
	}
	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = d.SetDeadline(time.Unix(0, 1))
		case <-stopped:
		}
	}()
	return func() { close(stopped) }
}
