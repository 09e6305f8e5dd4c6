package ebtree

import "math/bits"

// EqualBits returns the number of leading bits at which a and b agree,
// comparing from bit ignore (a hint: those bits must already be known
// equal) up to but not including bit length. Bits are numbered from the
// most significant bit of byte 0.
//
// The comparison restarts on the byte holding the first unverified bit
// and proceeds a byte at a time, so when length is not a multiple of 8
// and the keys agree on every byte touched, the result may exceed
// length by up to 7; callers only ever test it against thresholds with
// <, for which "at least length" is all that matters. When the keys
// differ before length the exact first-difference position is returned.
func EqualBits(a, b []byte, ignore, length int) int {
	pos := ignore &^ 7
	for pos < length {
		c := a[pos>>3] ^ b[pos>>3]
		pos += 8
		if c != 0 {
			pos -= bits.Len8(c)
			break
		}
	}
	return pos
}

// CmpBits returns the sign of a's bit minus b's bit at position pos:
// negative when a descends left of b, positive when right. Callers only
// invoke it at positions where the two keys are known to differ or
// where reading the byte holding pos is safe.
func CmpBits(a, b []byte, pos int) int {
	shift := 7 - uint(pos)&7
	ofs := pos >> 3
	return int(a[ofs]>>shift&1) - int(b[ofs]>>shift&1)
}
