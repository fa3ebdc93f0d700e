package bigint

// Add sets z to x + y and returns z. z may alias x or y.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		neg := x.neg
		z.magSum(x, y)
		z.neg = neg && !z.IsZero()
		return z
	}
	switch x.CmpAbs(y) {
	case 0:
		z.setZero()
	case 1:
		neg := x.neg
		z.magDelta(x, y)
		z.neg = neg && !z.IsZero()
	default:
		neg := y.neg
		z.magDelta(y, x)
		z.neg = neg && !z.IsZero()
	}
	return z
}

// Sub sets z to x - y and returns z. z may alias x or y.
func (z *Int) Sub(x, y *Int) *Int {
	if x.neg != y.neg {
		neg := x.neg
		z.magSum(x, y)
		z.neg = neg && !z.IsZero()
		return z
	}
	switch x.CmpAbs(y) {
	case 0:
		z.setZero()
	case 1:
		neg := x.neg
		z.magDelta(x, y)
		z.neg = neg && !z.IsZero()
	default:
		neg := !y.neg
		z.magDelta(y, x)
		z.neg = neg && !z.IsZero()
	}
	return z
}

// Neg sets z to -x and returns z
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg && !z.IsZero()
	return z
}

// Abs sets z to |x| and returns z
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Mul sets z to x * y and returns z. z may alias x or y.
//
// A power-of-two operand becomes a shift of the other operand;
// otherwise the product is formed schoolbook-style with a double-width
// accumulator per column.
func (z *Int) Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		z.setZero()
		return z
	}
	neg := x.neg != y.neg
	switch {
	case x.IsPowerOfTwo():
		z.Lsh(y, x.TrailingZeros())
	case y.IsPowerOfTwo():
		z.Lsh(x, y.TrailingZeros())
	default:
		xd, yd := x.digits, y.digits
		w := make([]Digit, len(xd)+len(yd))
		for i, xi := range xd {
			if xi == 0 {
				continue
			}
			var carry Digit
			for j, yj := range yd {
				carry, w[i+j] = mulAddWWWW(xi, yj, w[i+j], carry)
			}
			w[i+len(yd)] = carry
		}
		z.digits = w
	}
	z.norm()
	z.neg = neg && !z.IsZero()
	return z
}
