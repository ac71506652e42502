// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio_test

import (
	"testing"

	"code.hybscloud.com/respio"
)

func TestMatchCondition_SingleReplyAcrossPartialReads(t *testing.T) {
	mc := respio.NewMatchCondition(1)
	full := []byte("+PONG\r\n")

	end, done := mc.Check(full[:3], 0)
	if done {
		t.Fatalf("matched on a truncated buffer")
	}
	if end != 0 {
		t.Fatalf("end = %d, want 0 while not done", end)
	}

	end, done = mc.Check(full, 0)
	if !done {
		t.Fatalf("want done once the full reply has arrived")
	}
	if end != len(full) {
		t.Fatalf("end = %d, want %d", end, len(full))
	}
}

func TestMatchCondition_MultipleReplies(t *testing.T) {
	buf := []byte(":1\r\n:2\r\n:3\r\n")
	mc := respio.NewMatchCondition(3)
	end, done := mc.Check(buf, 0)
	if !done || end != len(buf) {
		t.Fatalf("end=%d done=%v", end, done)
	}
	if mc.Matched() != 3 {
		t.Fatalf("matched = %d, want 3", mc.Matched())
	}
}

func TestMatchCondition_ResumesAcrossCalls(t *testing.T) {
	buf := []byte(":1\r\n:2\r\n:3\r\n")
	mc := respio.NewMatchCondition(3)

	// Feed it one reply's worth of bytes at a time, as a Connection's
	// read loop would after each underlying Read.
	end, done := mc.Check(buf[:4], 0)
	if done {
		t.Fatalf("should not be done with only one of three replies")
	}
	_ = end

	end, done = mc.Check(buf[:8], 0)
	if done {
		t.Fatalf("should not be done with only two of three replies")
	}
	_ = end

	end, done = mc.Check(buf, 0)
	if !done || end != len(buf) {
		t.Fatalf("end=%d done=%v", end, done)
	}
}

func TestMatchCondition_ProtocolErrorReportsDoneWithoutAdvancing(t *testing.T) {
	mc := respio.NewMatchCondition(1)
	end, done := mc.Check([]byte("!bad\r\n"), 5)
	if !done {
		t.Fatalf("a protocol error must report done so the caller can re-derive it")
	}
	if end != 5 {
		t.Fatalf("end = %d, want begin (5) unchanged", end)
	}
}

func TestMatchCondition_ExpectedAccessor(t *testing.T) {
	mc := respio.NewMatchCondition(4)
	if mc.Expected() != 4 {
		t.Fatalf("expected = %d, want 4", mc.Expected())
	}
}
