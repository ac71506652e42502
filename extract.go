// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import (
	"fmt"

	"code.hybscloud.com/respio/internal/rint"
)

// Value is the owned counterpart of Marker: same shape, but String and
// Error leaves own a copy of their bytes, Int is a parsed signed 64-bit
// integer, and Nil is represented by IsNil alone. Value trees are
// independent of the buffer once Extract returns.
type Value struct {
	Kind MarkerKind

	Str      []byte // set for KindString / KindError
	Int      int64  // set for KindInt
	Elements []Value
}

// IsNil reports whether the value is the Nil variant.
func (v Value) IsNil() bool { return v.Kind == KindNil }

// Extract walks marker, a tree produced by Parse under KeepResult, and
// copies it into an owned Value tree. buf must start at the same byte as
// the slice that was passed to Parse to produce marker (the same slice,
// or a longer one with the same start); Extract never retains buf after
// it returns.
//
// Apart from a marker with an unknown Kind, extraction fails only when an
// Int leaf's raw digit range does not parse as a signed 64-bit integer —
// the sole way a peer can make Extract return an error.
func Extract(buf []byte, marker Marker) (Value, error) {
	switch marker.Kind {
	case KindString, KindError:
		s := append([]byte(nil), buf[marker.From:marker.To]...)
		return Value{Kind: marker.Kind, Str: s}, nil
	case KindInt:
		v, ok := rint.ParseInt64(buf[marker.From:marker.To])
		if !ok {
			return Value{}, fmt.Errorf("respio: integer reply %q is not a valid signed 64-bit integer", buf[marker.From:marker.To])
		}
		return Value{Kind: KindInt, Int: v}, nil
	case KindNil:
		return Value{Kind: KindNil}, nil
	case KindArray:
		elems := make([]Value, 0, len(marker.Elements))
		for _, m := range marker.Elements {
			v, err := Extract(buf, m)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Value{Kind: KindArray, Elements: elems}, nil
	default:
		return Value{}, fmt.Errorf("respio: unknown marker kind %d", marker.Kind)
	}
}

// ExtractAll extracts a slice of marker trees produced by pipelined N
// reply reads, short-circuiting on the first extraction error. It is
// the natural companion to a Connection.ReadN call made with n > 1,
// applied to the Elements of its KindArray Result.
func ExtractAll(buf []byte, markers []Marker) ([]Value, error) {
	out := make([]Value, 0, len(markers))
	for _, m := range markers {
		v, err := Extract(buf, m)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Equal reports whether a String, Error, or Int marker's raw payload in
// buf is byte-equal to literal, without extracting a Value. Useful for
// recognizing sentinel replies (e.g. "+OK\r\n", "+PONG\r\n") in place.
func Equal(buf []byte, m Marker, literal string) bool {
	switch m.Kind {
	case KindString, KindError, KindInt:
		return string(buf[m.From:m.To]) == literal
	default:
		return false
	}
}
