// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

// Wire grammar primitives: the CRLF terminator and the five reply type
// tags. Every reply begins with exactly one of these tag bytes.
const (
	tagString = '+'
	tagError  = '-'
	tagInt    = ':'
	tagBulk   = '$'
	tagArray  = '*'
)

const (
	cr = '\r'
	lf = '\n'
)

// findCRLF performs a bounded forward scan for the two-byte CRLF
// terminator starting at offset from within b[:to]. It returns the
// index of the CR byte, or -1 if no terminator is found in range.
// Cursor.FindCRLF generalizes this across fragmented (gather-list)
// input.
func findCRLF(b []byte, from, to int) int {
	for i := from; i+1 < to; i++ {
		if b[i] == cr && b[i+1] == lf {
			return i
		}
	}
	return -1
}
