// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package respio is a zero-copy streaming decoder, command serializer,
// and pipelining I/O adaptor for the prefix-tagged, CRLF-delimited wire
// protocol used by text-line in-memory data stores.
//
// Semantics and design:
//   - Zero-copy: Parse decodes a reply into a Marker tree whose string
//     leaves are byte ranges into the caller's buffer. Extract converts
//     a Marker tree into an owned Value tree when the caller needs to
//     outlive the buffer.
//   - Two result policies: KeepResult builds the Marker tree; DropResult
//     reports only the consumed byte count and never allocates. Both
//     share the same recursion; MatchCondition always parses under
//     DropResult while driving a Connection's read loop.
//   - Total parser: Parse never panics and never retries. It reports
//     exactly one of NotEnoughData, Positive{Result, Consumed}, or a
//     ProtocolError naming one of four stable Kinds.
//   - Non-blocking first: ErrWouldBlock and ErrMore (re-exported from
//     code.hybscloud.com/iox) are surfaced as control-flow signals by
//     Connection's Stream contract; Connection's RetryDelay Option
//     controls whether ErrWouldBlock is retried cooperatively or
//     returned to the caller immediately, while ErrMore is always
//     retried at once.
//   - Single-threaded cooperative core: Parse, Serialize, Extract, and
//     MatchCondition never suspend and never lock. A Connection must be
//     driven by one goroutine at a time; Strand funnels multi-goroutine
//     access to one Connection through a single serialized worker.
//
// Wire format: every reply begins with one of five tag bytes ('+' simple
// string, '-' error, ':' integer, '$' bulk string, '*' array), CRLF-
// terminated. A count field follows '$'/'*'; -1 encodes Nil. Maximum
// supported bulk payload is 512 MiB; larger counts, and counts below -1,
// produce a ProtocolError with Kind KindCountRange, while a count that is
// not a decimal integer produces Kind KindCountConversion.
package respio
