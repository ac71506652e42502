// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import "errors"

// Kind enumerates the protocol-error taxonomy the parser can report.
// Kind is a closed enum.
type Kind uint8

const (
	// KindWrongIntroduction: the first byte of a reply is not one of the
	// five type tags ('+', '-', ':', '$', '*').
	KindWrongIntroduction Kind = iota + 1
	// KindCountConversion: a count field is not a well-formed signed
	// decimal integer.
	KindCountConversion
	// KindCountRange: a decoded count is less than -1, or exceeds the
	// 512 MiB ceiling (maxCount) applied to bulk lengths and array counts.
	KindCountRange
	// KindBulkTerminator: a bulk string's declared payload is not
	// followed by CRLF at the expected offset.
	KindBulkTerminator
)

func (k Kind) String() string {
	switch k {
	case KindWrongIntroduction:
		return "wrong introduction"
	case KindCountConversion:
		return "cannot convert count to number"
	case KindCountRange:
		return "unacceptable count value"
	case KindBulkTerminator:
		return "terminator for bulk string not found"
	default:
		return "unknown protocol error"
	}
}

// ProtocolError reports that the input is not a valid reply prefix.
// Recovery requires the caller to discard the connection: the parser
// never retries and never resynchronizes on its own.
type ProtocolError struct {
	Kind Kind
}

func (e *ProtocolError) Error() string { return "respio: " + e.Kind.String() }

// Is reports whether target names the same Kind, so callers can write
// errors.Is(err, &respio.ProtocolError{Kind: respio.KindCountRange}).
func (e *ProtocolError) Is(target error) bool {
	var pe *ProtocolError
	if errors.As(target, &pe) {
		return pe.Kind == e.Kind
	}
	return false
}

var (
	// ErrInvalidArgument reports a nil stream, an empty command argument
	// vector or command sequence, a Command of unknown type, or a reply
	// count below 1.
	ErrInvalidArgument = errors.New("respio: invalid argument")
)
