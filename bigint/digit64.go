//go:build bigint64

package bigint

import "math/bits"

// Digit is one element of the base-2^W magnitude representation (W=64).
// There is no native 128-bit type, so the double-width primitives are
// synthesized from math/bits carry chains.
type Digit = uint64

const (
	digitBits = 64
	wideBits  = 128
)

// addWW returns x + y + carry and the outgoing carry (0 or 1).
func addWW(x, y, carry Digit) (sum, carryOut Digit) {
	s, c := bits.Add64(x, y, uint64(carry))
	return s, Digit(c)
}

// subWW returns x - y - borrow and the outgoing borrow (0 or 1).
func subWW(x, y, borrow Digit) (diff, borrowOut Digit) {
	d, b := bits.Sub64(x, y, uint64(borrow))
	return d, Digit(b)
}

// mulAddWWWW returns x*y + z + carry as a (hi, lo) digit pair.
// Adding z and carry into the 128-bit product cannot overflow the high half.
func mulAddWWWW(x, y, z, carry Digit) (hi, lo Digit) {
	h, l := bits.Mul64(x, y)
	l, c := bits.Add64(l, z, 0)
	h += c
	l, c = bits.Add64(l, carry, 0)
	h += c
	return h, l
}

// divWW divides the double-width value (hi, lo) by d, returning the
// quotient and remainder. Requires hi < d.
func divWW(hi, lo, d Digit) (quo, rem Digit) {
	return bits.Div64(hi, lo, d)
}

func digitLeadingZeros(d Digit) uint  { return uint(bits.LeadingZeros64(d)) }
func digitTrailingZeros(d Digit) uint { return uint(bits.TrailingZeros64(d)) }
