// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import "code.hybscloud.com/respio/internal/rint"

// maxCount is the sanity ceiling applied to both a bulk string's
// declared payload length and an array's declared arity: 512 MiB is
// the protocol's documented bulk string ceiling, and the same
// CountRange error covers an array count that exceeds what could
// possibly fit in a stream of that size, so one shared ceiling serves
// both without a second magic number.
const maxCount = 512 * 1024 * 1024

// Parse decodes exactly one reply from the leading bytes of buf under
// the given Policy. It is a pure function: it never mutates buf and
// never retries. See Outcome for the three possible results.
//
// Parse operates over the whole of buf as its window; a caller that
// wants to parse a sub-range of a larger buffer passes buf[from:to] —
// Go slices already are zero-copy views, so no separate from/to
// parameters are needed.
func Parse(buf []byte, policy Policy) Outcome {
	return parseOne(NewCursor(buf), 0, policy)
}

// ParseSegments decodes exactly one reply from a gather list of byte
// slices, presented as one logical sequence in order: parsing the same
// bytes split across many segments must produce the same Outcome as
// parsing them contiguous.
func ParseSegments(segs [][]byte, policy Policy) Outcome {
	return parseOne(NewSegmentedCursor(segs), 0, policy)
}

// parseOne decodes one reply starting at logical offset at within c.
// Outcome.Consumed is reported relative to at.
func parseOne(c Cursor, at int, policy Policy) Outcome {
	n := c.Len()
	if at >= n {
		return notEnoughData()
	}
	switch c.At(at) {
	case tagString:
		return parseLine(c, at, KindString, policy)
	case tagError:
		return parseLine(c, at, KindError, policy)
	case tagInt:
		return parseLine(c, at, KindInt, policy)
	case tagBulk:
		return parseBulk(c, at, policy)
	case tagArray:
		return parseArray(c, at, policy)
	default:
		return protocolError(KindWrongIntroduction)
	}
}

// parseLine handles the three CRLF-terminated scalar reply types:
// simple string, error, and integer. They share identical framing —
// payload runs from the byte after the tag to the CR of the
// terminator — and differ only in which Marker variant is produced.
func parseLine(c Cursor, at int, kind MarkerKind, policy Policy) Outcome {
	n := c.Len()
	end := c.FindCRLF(at+1, n)
	if end < 0 {
		return notEnoughData()
	}
	from, to := at+1, end
	consumed := (end + 2) - at
	switch kind {
	case KindString:
		return positive(stringMarker(from, to), consumed, policy)
	case KindError:
		return positive(errorMarker(from, to), consumed, policy)
	default:
		return positive(intMarker(from, to), consumed, policy)
	}
}

// parseCount decodes the count field that follows a '$' or '*' tag,
// starting at byte offset countFrom (the byte right after the tag). On
// success it returns the decoded value and the logical offset of the
// first byte after the count field's CRLF.
func parseCount(c Cursor, countFrom int) (count int64, countEnd int, bad Outcome, ok bool) {
	end := c.FindCRLF(countFrom, c.Len())
	if end < 0 {
		return 0, 0, notEnoughData(), false
	}
	raw := c.Slice(countFrom, end)
	v, good := rint.ParseInt64(raw)
	if !good {
		return 0, 0, protocolError(KindCountConversion), false
	}
	if v < -1 {
		return 0, 0, protocolError(KindCountRange), false
	}
	return v, end + 2, Outcome{}, true
}

func parseBulk(c Cursor, at int, policy Policy) Outcome {
	count, countEnd, bad, ok := parseCount(c, at+1)
	if !ok {
		return bad
	}
	if count == -1 {
		return positive(nilMarker(at+1, countEnd-2), countEnd-at, policy)
	}
	if count > maxCount {
		return protocolError(KindCountRange)
	}
	payloadLen := int(count)
	n := c.Len()
	if countEnd+payloadLen+2 > n {
		return notEnoughData()
	}
	if c.At(countEnd+payloadLen) != cr || c.At(countEnd+payloadLen+1) != lf {
		return protocolError(KindBulkTerminator)
	}
	consumed := countEnd + payloadLen + 2 - at
	return positive(stringMarker(countEnd, countEnd+payloadLen), consumed, policy)
}

func parseArray(c Cursor, at int, policy Policy) Outcome {
	count, countEnd, bad, ok := parseCount(c, at+1)
	if !ok {
		return bad
	}
	if count == -1 {
		return positive(nilMarker(at+1, countEnd-2), countEnd-at, policy)
	}
	if count > maxCount {
		return protocolError(KindCountRange)
	}
	var elems []Marker
	if policy == KeepResult {
		elems = make([]Marker, 0, count)
	}
	cursor := countEnd
	for i := int64(0); i < count; i++ {
		sub := parseOne(c, cursor, policy)
		if sub.Status != Positive {
			return sub
		}
		if policy == KeepResult {
			elems = append(elems, sub.Result)
		}
		cursor += sub.Consumed
	}
	return positive(arrayMarker(elems), cursor-at, policy)
}
