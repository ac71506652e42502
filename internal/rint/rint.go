package rint

const maxUint64 = 1<<64 - 1

// ParseInt64 parses b as a plain signed decimal integer: an optional
// single leading '-' followed by one or more decimal digits, with no
// leading '+' and no leading zeros beyond the single digit "0". It
// returns false if b is empty, malformed, or its magnitude does not
// fit in an int64 (mirroring strconv.ParseInt's overflow behavior).
func ParseInt64(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	neg := false
	i := 0
	if b[0] == '-' {
		neg = true
		i = 1
		if len(b) == 1 {
			return 0, false
		}
	}
	if b[i] == '0' && len(b)-i > 1 {
		return 0, false
	}
	var v uint64
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if v > (maxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	if neg {
		if v > 1<<63 {
			return 0, false
		}
		return -int64(v), true
	}
	if v > 1<<63-1 {
		return 0, false
	}
	return int64(v), true
}

// AppendInt64 appends the decimal representation of v to dst and
// returns the extended slice. It never allocates beyond what append
// itself may need to grow dst.
func AppendInt64(dst []byte, v int64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u // two's complement negation in unsigned space, safe for MinInt64
		dst = append(dst, '-')
	}
	var tmp [20]byte
	i := len(tmp)
	for u > 0 {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
	}
	return append(dst, tmp[i:]...)
}
