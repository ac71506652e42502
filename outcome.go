// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

// Policy selects what the parser builds alongside the consumed byte
// count: a marker tree (KeepResult) or nothing at all (DropResult).
// The recursion structure of Parse is identical under both policies;
// only the result constructor differs, so switching policy never
// changes which byte range is considered a complete reply.
type Policy uint8

const (
	// KeepResult builds the full Marker tree. This is the hot path for
	// pipelined throughput where the caller wants the decoded value.
	KeepResult Policy = iota
	// DropResult never allocates for leaves or arrays; it returns only
	// the consumed byte count. Used by MatchCondition and by callers
	// that only need the server round-trip accounted for.
	DropResult
)

// Status tags which of the three parse outcomes Outcome carries.
type Status uint8

const (
	// NotEnoughData: input is a strict prefix of a valid reply, or
	// empty. No bytes were consumed.
	NotEnoughData Status = iota
	// Positive: a complete reply was decoded. Consumed is the number of
	// leading input bytes that form the reply; under KeepResult, Result
	// holds the marker tree.
	Positive
	// Error: input is not a valid reply prefix; the connection
	// must be discarded, the byte stream is out of sync.
	Error
)

// Outcome is the total result of Parse: exactly one of NotEnoughData,
// Positive{Result, Consumed}, or Error{Kind} is meaningful, selected by
// Status.
type Outcome struct {
	Status Status

	// Consumed is the number of leading bytes of the input that form the
	// decoded reply. Meaningful only when Status == Positive.
	Consumed int

	// Result holds the marker tree when Status == Positive and the
	// parse ran under KeepResult. Zero value under DropResult.
	Result Marker

	// Kind holds the protocol-error kind when Status == Error.
	Kind Kind
}

// Err converts a Status == Error outcome into a *ProtocolError, or nil
// otherwise.
func (o Outcome) Err() error {
	if o.Status != Error {
		return nil
	}
	return &ProtocolError{Kind: o.Kind}
}

func notEnoughData() Outcome { return Outcome{Status: NotEnoughData} }

func protocolError(kind Kind) Outcome { return Outcome{Status: Error, Kind: kind} }

func positive(result Marker, consumed int, policy Policy) Outcome {
	o := Outcome{Status: Positive, Consumed: consumed}
	if policy == KeepResult {
		o.Result = result
	}
	return o
}
