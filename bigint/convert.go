package bigint

import "math"

// maxDoubleExp is the largest base-2 exponent a float64 can carry
// (DBL_MAX_EXP - 1).
const maxDoubleExp = 1023

// Uint64 converts x to an unsigned machine integer. Negative values
// and magnitudes beyond 64 bits are a range error.
func (x *Int) Uint64() (uint64, error) {
	if x.Sign() < 0 {
		return 0, newError(ErrorRange, "Uint64", "negative value")
	}
	if x.BitLen() > 64 {
		return 0, newError(ErrorRange, "Uint64", "value exceeds unsigned machine range")
	}
	var v uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		v = v<<(digitBits-1)<<1 | uint64(x.digits[i])
	}
	return v, nil
}

// Int64 converts x to a signed machine integer. Magnitudes beyond the
// signed bound are a range error; the most-negative value converts.
func (x *Int) Int64() (int64, error) {
	if x.BitLen() > 64 {
		return 0, newError(ErrorRange, "Int64", "value exceeds signed machine range")
	}
	var u uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		u = u<<(digitBits-1)<<1 | uint64(x.digits[i])
	}
	if !x.neg {
		if u > math.MaxInt64 {
			return 0, newError(ErrorRange, "Int64", "value exceeds signed machine range")
		}
		return int64(u), nil
	}
	if u > 1<<63 {
		return 0, newError(ErrorRange, "Int64", "value exceeds signed machine range")
	}
	return -int64(u), nil
}

// Float64 converts x to the nearest double-precision value. When the
// magnitude fits a machine integer the conversion is direct; otherwise
// the top bits form the mantissa and the bit length the exponent.
// A magnitude beyond the double's dynamic range reports an overflow
// error and returns the appropriately signed infinity.
func (x *Int) Float64() (float64, error) {
	if v, err := x.Int64(); err == nil {
		return float64(v), nil
	}

	bitLen := x.BitLen()
	if bitLen-1 > maxDoubleExp {
		return x.signedInf(), newError(ErrorOverflow, "Float64", "value exceeds double range")
	}

	// Take the top 64 bits of the magnitude, aligned so the leading 1
	// sits at the top of the mantissa word.
	top := New().Rsh(x, uint(bitLen-64))
	top.neg = false
	mant, err := top.Uint64()
	if err != nil {
		return 0, err
	}
	f := math.Ldexp(float64(mant), bitLen-64)
	if math.IsInf(f, 0) {
		return x.signedInf(), newError(ErrorOverflow, "Float64", "value exceeds double range")
	}
	if x.neg {
		f = -f
	}
	return f, nil
}

func (x *Int) signedInf() float64 {
	if x.neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
