// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

import "code.hybscloud.com/respio/internal/rint"

// Serialize appends the wire encoding of cmd to buf's writable region
// and commits it: a SingleCommand becomes
//
//	* <N> CRLF
//	$ <len_1> CRLF <arg_1> CRLF
//	...
//	$ <len_N> CRLF <arg_N> CRLF
//
// and a CommandSequence is the concatenation of each command's
// encoding, in order. Serialize pre-computes the exact size of each
// command's encoding and requests it from buf in one Prepare call per
// command; it does not flush buf to any stream.
func Serialize(buf *DynamicBuffer, cmd Command) error {
	switch c := cmd.(type) {
	case SingleCommand:
		return serializeSingle(buf, c)
	case CommandSequence:
		for _, sc := range c.commands {
			if err := serializeSingle(buf, sc); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrInvalidArgument
	}
}

func serializeSingle(buf *DynamicBuffer, c SingleCommand) error {
	if len(c.arguments) == 0 {
		return ErrInvalidArgument
	}
	n := singleCommandLen(c)
	dst := buf.Prepare(n)
	dst = dst[:0]
	dst = append(dst, tagArray)
	dst = rint.AppendInt64(dst, int64(len(c.arguments)))
	dst = append(dst, cr, lf)
	for _, arg := range c.arguments {
		dst = append(dst, tagBulk)
		dst = rint.AppendInt64(dst, int64(len(arg)))
		dst = append(dst, cr, lf)
		dst = append(dst, arg...)
		dst = append(dst, cr, lf)
	}
	buf.Commit(len(dst))
	return nil
}

// singleCommandLen computes the exact number of bytes serializeSingle
// will write, so Prepare is called with the right size up front instead
// of growing the buffer incrementally as each argument is appended.
func singleCommandLen(c SingleCommand) int {
	n := 1 + decimalLen(int64(len(c.arguments))) + 2 // *N\r\n
	for _, arg := range c.arguments {
		n += 1 + decimalLen(int64(len(arg))) + 2 // $len\r\n
		n += len(arg) + 2                        // arg\r\n
	}
	return n
}

func decimalLen(v int64) int {
	if v == 0 {
		return 1
	}
	n := 0
	if v < 0 {
		n++
		v = -v
	}
	for v > 0 {
		n++
		v /= 10
	}
	return n
}
