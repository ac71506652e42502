// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

// MatchCondition drives a stream read loop: it is invoked after each
// underlying read with the bytes accumulated so far and reports
// whether enough bytes have arrived to complete N replies.
//
// Check is a two-phase, resumable state machine: each call picks up
// exactly where the last one left off rather than re-scanning from the
// start, so a MatchCondition is safe to drive across any number of
// partial reads.
type MatchCondition struct {
	expected int
	matched  int
	consumed int // bytes already accounted for, relative to begin
}

// NewMatchCondition constructs a MatchCondition expecting n replies.
// n must be >= 1.
func NewMatchCondition(n int) *MatchCondition {
	return &MatchCondition{expected: n}
}

// Expected returns the number of replies this condition waits for.
func (m *MatchCondition) Expected() int { return m.expected }

// Matched returns how many replies have been fully decoded so far.
func (m *MatchCondition) Matched() int { return m.matched }

// Check attempts to decode up to Expected()-Matched() more replies from
// buf[begin:] using the drop-result Policy, resuming from wherever the
// previous call left off. It returns:
//
//   - (begin, false) when more bytes are needed before the next reply
//     can be decoded.
//   - (begin+totalConsumed, true) once Expected() replies have been
//     seen across all calls.
//   - (begin, true) with no advance if a protocol error was hit; the
//     caller's subsequent Parse call over buf[begin:] re-derives the
//     specific error Kind.
func (m *MatchCondition) Check(buf []byte, begin int) (newBegin int, done bool) {
	if m.matched >= m.expected {
		return begin + m.consumed, true
	}
	data := buf[begin:]
	cur := m.consumed
	for m.matched < m.expected {
		o := Parse(data[cur:], DropResult)
		switch o.Status {
		case NotEnoughData:
			m.consumed = cur
			return begin, false
		case Error:
			return begin, true
		default: // Positive
			cur += o.Consumed
			m.matched++
		}
	}
	m.consumed = cur
	return begin + cur, true
}
