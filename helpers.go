// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

var subscriptionKinds = map[string]bool{
	"subscribe":    true,
	"psubscribe":   true,
	"unsubscribe":  true,
	"punsubscribe": true,
}

// IsSubscriptionConfirmation recognizes the three-element array shape a
// server sends to confirm a pub/sub (un)subscription:
// [subscribe|psubscribe|unsubscribe|punsubscribe, channel, count].
//
// It is a thin, stateless recognizer over an already-extracted Value —
// not a subscription manager. It only reads; it never changes parser
// behavior, leaving any stateful subscription tracking to the caller.
func IsSubscriptionConfirmation(v Value) bool {
	if v.Kind != KindArray || len(v.Elements) != 3 {
		return false
	}
	kind := v.Elements[0]
	count := v.Elements[2]
	if kind.Kind != KindString || count.Kind != KindInt {
		return false
	}
	return subscriptionKinds[string(kind.Str)]
}
