// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio_test

import (
	"testing"

	"code.hybscloud.com/respio"
)

func TestParse_SimpleString(t *testing.T) {
	o := respio.Parse([]byte("+OK\r\n"), respio.KeepResult)
	if o.Status != respio.Positive {
		t.Fatalf("status = %v, want Positive", o.Status)
	}
	if o.Consumed != 5 {
		t.Fatalf("consumed = %d, want 5", o.Consumed)
	}
	if o.Result.Kind != respio.KindString {
		t.Fatalf("kind = %v, want KindString", o.Result.Kind)
	}
	if !respio.Equal([]byte("+OK\r\n"), o.Result, "OK") {
		t.Fatalf("result does not equal %q", "OK")
	}
}

func TestParse_Error(t *testing.T) {
	buf := []byte("-ERR unknown command\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Result.Kind != respio.KindError {
		t.Fatalf("got %+v", o)
	}
	if !respio.Equal(buf, o.Result, "ERR unknown command") {
		t.Fatalf("error payload mismatch")
	}
}

func TestParse_Integer(t *testing.T) {
	buf := []byte(":9223372036854775801\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	v, err := respio.Extract(buf, o.Result)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if v.Int != 9223372036854775801 {
		t.Fatalf("int = %d", v.Int)
	}
}

func TestParse_BulkString(t *testing.T) {
	buf := []byte("$4\r\nsome\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	v, err := respio.Extract(buf, o.Result)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if string(v.Str) != "some" {
		t.Fatalf("str = %q", v.Str)
	}
}

func TestParse_EmptyBulkString(t *testing.T) {
	buf := []byte("$0\r\n\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	v, err := respio.Extract(buf, o.Result)
	if err != nil || len(v.Str) != 0 {
		t.Fatalf("v=%+v err=%v", v, err)
	}
}

func TestParse_NilBulkString(t *testing.T) {
	buf := []byte("$-1\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	if !o.Result.IsNil() {
		t.Fatalf("result should be nil marker")
	}
}

func TestParse_NilArray(t *testing.T) {
	buf := []byte("*-1\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || !o.Result.IsNil() {
		t.Fatalf("got %+v", o)
	}
}

func TestParse_Array(t *testing.T) {
	buf := []byte("*3\r\n:1\r\n:2\r\n:3\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	v, err := respio.Extract(buf, o.Result)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(v.Elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(v.Elements))
	}
	for i, want := range []int64{1, 2, 3} {
		if v.Elements[i].Int != want {
			t.Fatalf("element %d = %d, want %d", i, v.Elements[i].Int, want)
		}
	}
}

func TestParse_EmptyArray(t *testing.T) {
	buf := []byte("*0\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != 4 {
		t.Fatalf("got %+v", o)
	}
	if len(o.Result.Elements) != 0 {
		t.Fatalf("elements = %d, want 0", len(o.Result.Elements))
	}
}

func TestParse_NestedArray(t *testing.T) {
	buf := []byte("*2\r\n*1\r\n+a\r\n$-1\r\n")
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	if len(o.Result.Elements) != 2 {
		t.Fatalf("elements = %d, want 2", len(o.Result.Elements))
	}
	inner := o.Result.Elements[0]
	if inner.Kind != respio.KindArray || len(inner.Elements) != 1 {
		t.Fatalf("inner = %+v", inner)
	}
	if !o.Result.Elements[1].IsNil() {
		t.Fatalf("second element should be nil")
	}
}

func TestParse_NotEnoughData(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("+OK"),
		[]byte("+OK\r"),
		[]byte("$5\r\nsome"),
		[]byte("*2\r\n:1\r\n"),
	}
	for _, buf := range cases {
		o := respio.Parse(buf, respio.KeepResult)
		if o.Status != respio.NotEnoughData {
			t.Fatalf("buf=%q status = %v, want NotEnoughData", buf, o.Status)
		}
	}
}

func TestParse_WrongIntroduction(t *testing.T) {
	o := respio.Parse([]byte("!oops\r\n"), respio.KeepResult)
	if o.Status != respio.Error {
		t.Fatalf("status = %v, want Error", o.Status)
	}
	if o.Kind != respio.KindWrongIntroduction {
		t.Fatalf("kind = %v, want KindWrongIntroduction", o.Kind)
	}
	err := o.Err()
	if err == nil {
		t.Fatalf("Err() = nil")
	}
	want := &respio.ProtocolError{Kind: respio.KindWrongIntroduction}
	if !want.Is(err) {
		t.Fatalf("err = %v, want Kind %v", err, want.Kind)
	}
}

func TestParse_CountConversionError(t *testing.T) {
	o := respio.Parse([]byte("$abc\r\nxx\r\n"), respio.KeepResult)
	if o.Status != respio.Error || o.Kind != respio.KindCountConversion {
		t.Fatalf("got %+v", o)
	}
}

func TestParse_CountRangeError(t *testing.T) {
	o := respio.Parse([]byte("$-5\r\n"), respio.KeepResult)
	if o.Status != respio.Error || o.Kind != respio.KindCountRange {
		t.Fatalf("got %+v", o)
	}
}

func TestParse_BulkTerminatorError(t *testing.T) {
	o := respio.Parse([]byte("$4\r\nsomeXX"), respio.KeepResult)
	if o.Status != respio.Error || o.Kind != respio.KindBulkTerminator {
		t.Fatalf("got %+v", o)
	}
}

func TestParse_DropResultNeverAllocatesTree(t *testing.T) {
	buf := []byte("*3\r\n:1\r\n:2\r\n:3\r\n")
	o := respio.Parse(buf, respio.DropResult)
	if o.Status != respio.Positive || o.Consumed != len(buf) {
		t.Fatalf("got %+v", o)
	}
	if o.Result.Elements != nil || o.Result.Kind != 0 {
		t.Fatalf("DropResult left a populated marker: %+v", o.Result)
	}
}

func TestParseSegments_MatchesContiguousParse(t *testing.T) {
	whole := []byte("*3\r\n$4\r\nsome\r\n:42\r\n+OK\r\n")
	want := respio.Parse(whole, respio.KeepResult)

	// Split the same bytes at every offset and confirm the segmented
	// cursor produces an identical Outcome each time.
	for split := 1; split < len(whole); split++ {
		segs := [][]byte{whole[:split], whole[split:]}
		got := respio.ParseSegments(segs, respio.KeepResult)
		if got.Status != want.Status || got.Consumed != want.Consumed {
			t.Fatalf("split=%d got=%+v want=%+v", split, got, want)
		}
	}
}

func TestParse_ArrayCountExceedsCeiling(t *testing.T) {
	o := respio.Parse([]byte("*99999999999999\r\n"), respio.KeepResult)
	if o.Status != respio.Error || o.Kind != respio.KindCountRange {
		t.Fatalf("got %+v", o)
	}
}
