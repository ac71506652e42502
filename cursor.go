// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

// Cursor abstracts the byte source Parse scans. It generalizes over a
// single contiguous slice (the common case, backed by a DynamicBuffer)
// and a gather list of slices shaped like net.Buffers, so the parser
// tolerates storage split across many segments without requiring the
// caller to coalesce it first.
//
// The parser uses Len, At (dereference), FindCRLF (a bounded forward
// scan), and Slice (to read a count field).
type Cursor struct {
	segs    [][]byte
	offsets []int // offsets[i] = logical start of segs[i]
	total   int
}

// NewCursor wraps a single contiguous slice.
func NewCursor(b []byte) Cursor {
	return Cursor{segs: [][]byte{b}, offsets: []int{0}, total: len(b)}
}

// NewSegmentedCursor wraps a gather list of slices, presenting them as
// one logical byte sequence in order.
func NewSegmentedCursor(segs [][]byte) Cursor {
	offsets := make([]int, len(segs))
	total := 0
	for i, s := range segs {
		offsets[i] = total
		total += len(s)
	}
	return Cursor{segs: segs, offsets: offsets, total: total}
}

// Len returns the total number of bytes available through the cursor.
func (c Cursor) Len() int { return c.total }

func (c Cursor) locate(i int) (seg, off int) {
	// Linear scan: gather lists encountered in practice (a handful of
	// read(2)/readv segments) are short enough that this beats the
	// bookkeeping of a binary search.
	for s := len(c.offsets) - 1; s >= 0; s-- {
		if i >= c.offsets[s] {
			return s, i - c.offsets[s]
		}
	}
	return 0, i
}

// At dereferences the byte at logical offset i. The caller must ensure
// 0 <= i < Len().
func (c Cursor) At(i int) byte {
	s, off := c.locate(i)
	return c.segs[s][off]
}

// FindCRLF performs a bounded forward scan for CRLF starting at logical
// offset from, scanning up to (but not including) offset to. It
// returns the logical index of the CR byte, or -1 if not found.
func (c Cursor) FindCRLF(from, to int) int {
	if to > c.total {
		to = c.total
	}
	if c.contiguous() {
		return findCRLF(c.segs[0], from, to)
	}
	for i := from; i+1 < to; i++ {
		if c.At(i) == cr && c.At(i+1) == lf {
			return i
		}
	}
	return -1
}

// Slice materializes the logical range [from, to). When the range lies
// entirely within one segment it is returned zero-copy; otherwise the
// bytes are copied into a freshly allocated slice, which is unavoidable
// once a value spans a segment boundary.
func (c Cursor) Slice(from, to int) []byte {
	if from >= to {
		return nil
	}
	s, off := c.locate(from)
	seg := c.segs[s]
	if off+(to-from) <= len(seg) {
		return seg[off : off+(to-from)]
	}
	out := make([]byte, 0, to-from)
	remaining := to - from
	for remaining > 0 {
		seg = c.segs[s]
		avail := len(seg) - off
		n := avail
		if n > remaining {
			n = remaining
		}
		out = append(out, seg[off:off+n]...)
		remaining -= n
		s++
		off = 0
	}
	return out
}

// contiguous reports whether the cursor is backed by exactly one
// segment, the fast path most callers (DynamicBuffer-backed) take.
func (c Cursor) contiguous() bool { return len(c.segs) == 1 }
