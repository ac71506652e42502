// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio_test

import (
	"testing"

	"code.hybscloud.com/respio"
)

func extractValue(t *testing.T, buf []byte) respio.Value {
	t.Helper()
	o := respio.Parse(buf, respio.KeepResult)
	if o.Status != respio.Positive {
		t.Fatalf("parse failed: %+v", o)
	}
	v, err := respio.Extract(buf, o.Result)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	return v
}

func TestIsSubscriptionConfirmation_RecognizesAllKinds(t *testing.T) {
	for _, kind := range []string{"subscribe", "psubscribe", "unsubscribe", "punsubscribe"} {
		buf := []byte("*3\r\n$" + itoa(len(kind)) + "\r\n" + kind + "\r\n$2\r\nch\r\n:1\r\n")
		v := extractValue(t, buf)
		if !respio.IsSubscriptionConfirmation(v) {
			t.Fatalf("kind=%q: want confirmation recognized", kind)
		}
	}
}

func TestIsSubscriptionConfirmation_RejectsOrdinaryReplies(t *testing.T) {
	v := extractValue(t, []byte("*3\r\n$7\r\nmessage\r\n$2\r\nch\r\n$5\r\nhello\r\n"))
	if respio.IsSubscriptionConfirmation(v) {
		t.Fatalf("a pub/sub message payload must not be mistaken for a confirmation")
	}

	v = extractValue(t, []byte("+OK\r\n"))
	if respio.IsSubscriptionConfirmation(v) {
		t.Fatalf("a scalar reply must not be mistaken for a confirmation")
	}

	v = extractValue(t, []byte("*2\r\n+subscribe\r\n:1\r\n"))
	if respio.IsSubscriptionConfirmation(v) {
		t.Fatalf("wrong arity must not be mistaken for a confirmation")
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}
