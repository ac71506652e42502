// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

// DynamicBuffer is a growable byte region with a readable front region
// and a writable tail region: Data exposes the readable bytes, Prepare
// reserves writable capacity, Commit moves bytes from writable to
// readable, and Consume discards bytes from the front of the readable
// region.
//
// DynamicBuffer is the concrete buffer Serialize and Connection are
// written against (Parse and MatchCondition take its Data() slice); it
// plays the same "reusable
// scratch buffer" role a stream codec typically gives its internal
// read/write fields, generalized into a standalone type so callers can
// hold one per Connection.
type DynamicBuffer struct {
	buf []byte
	r   int // start of readable region
	w   int // end of readable region / start of writable region

	// generation increments on every Consume call. It is informational
	// only — respio does not itself track which generation a Marker
	// tree was produced under — but a caller that records Generation()
	// alongside a Marker tree it intends to keep can compare it against
	// a later Generation() call to detect that Consume has since
	// invalidated the bytes that Marker borrows.
	generation uint64
}

// NewDynamicBuffer returns an empty DynamicBuffer with capacity hint
// bytes pre-allocated.
func NewDynamicBuffer(capacityHint int) *DynamicBuffer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &DynamicBuffer{buf: make([]byte, 0, capacityHint)}
}

// Data returns the current readable region. The returned slice is only
// valid until the next Prepare, Commit, or Consume call.
func (b *DynamicBuffer) Data() []byte { return b.buf[b.r:b.w] }

// Size returns the number of readable bytes.
func (b *DynamicBuffer) Size() int { return b.w - b.r }

// Generation returns the buffer's current consume generation, for
// callers that want to detect use-after-consume of a borrowed Marker.
func (b *DynamicBuffer) Generation() uint64 { return b.generation }

// Prepare reserves n writable bytes at the tail of the buffer, growing
// and/or compacting the backing array as needed, and returns that
// region for the caller to fill (typically via an io.Reader). The
// returned slice is only valid until the next Prepare/Commit/Consume
// call.
func (b *DynamicBuffer) Prepare(n int) []byte {
	if n < 0 {
		n = 0
	}
	need := b.w + n
	if need <= cap(b.buf) {
		b.buf = b.buf[:cap(b.buf)]
		return b.buf[b.w : b.w+n]
	}
	// Compact first: dropping already-consumed bytes may free enough
	// room without growing the backing array.
	if b.r > 0 {
		copy(b.buf, b.buf[b.r:b.w])
		b.w -= b.r
		b.r = 0
		if b.w+n <= cap(b.buf) {
			b.buf = b.buf[:cap(b.buf)]
			return b.buf[b.w : b.w+n]
		}
	}
	grown := make([]byte, b.w+n, nextCap(b.w+n))
	copy(grown, b.buf[:b.w])
	b.buf = grown
	return b.buf[b.w : b.w+n]
}

// Commit moves n bytes from the writable region into the readable
// region, after the caller has filled the slice Prepare returned.
func (b *DynamicBuffer) Commit(n int) {
	if n < 0 {
		n = 0
	}
	b.w += n
	if b.w > len(b.buf) {
		b.w = len(b.buf)
	}
}

// Consume discards n bytes from the front of the readable region,
// typically after the caller has finished with a Positive Outcome's
// Consumed byte count. Consume invalidates any Marker tree produced by
// a Parse call over bytes at or beyond the discarded region's start; see
// Generation.
func (b *DynamicBuffer) Consume(n int) {
	if n < 0 || n > b.Size() {
		n = b.Size()
	}
	b.r += n
	b.generation++
	if b.r == b.w {
		b.r, b.w = 0, 0
	}
}

func nextCap(need int) int {
	c := 64
	for c < need {
		c *= 2
	}
	return c
}
