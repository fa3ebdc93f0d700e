package bigint

// Pow sets z to x raised to the power y, by squaring over the binary
// expansion of y. A negative exponent is a domain error. z may alias
// x or y.
func (z *Int) Pow(x, y *Int) error {
	if y.Sign() < 0 {
		return newError(ErrorDomain, "Pow", "negative exponent")
	}
	neg := x.neg && y.isOdd()
	base := x.Clone()
	base.neg = false
	exp := y.Clone()
	acc := NewUint(1)
	for !exp.IsZero() {
		if exp.isOdd() {
			acc.Mul(acc, base)
		}
		base.Mul(base, base)
		exp.Rsh(exp, 1)
	}
	z.digits, z.neg = acc.digits, neg && !acc.IsZero()
	return nil
}

// isOdd reports whether the lowest bit of |x| is set
func (x *Int) isOdd() bool {
	return len(x.digits) > 0 && x.digits[0]&1 == 1
}

// GCD sets z to the greatest common divisor of x and y using binary
// (Stein) GCD, and returns z. The result is non-negative; gcd(x, 0)
// is |x|. z may alias x or y.
func (z *Int) GCD(x, y *Int) *Int {
	a := x.Clone()
	a.neg = false
	b := y.Clone()
	b.neg = false
	switch {
	case a.IsZero():
		z.digits, z.neg = b.digits, false
		return z
	case b.IsZero():
		z.digits, z.neg = a.digits, false
		return z
	}

	// Factor out the common power of two, then strip all remaining
	// factors of two from each operand.
	ka, kb := a.TrailingZeros(), b.TrailingZeros()
	k := min(ka, kb)
	a.Rsh(a, ka)
	b.Rsh(b, kb)

	for {
		if a.CmpAbs(b) > 0 {
			a, b = b, a
		}
		b.Sub(b, a)
		if b.IsZero() {
			a.Lsh(a, k)
			z.digits, z.neg = a.digits, false
			return z
		}
		b.Rsh(b, b.TrailingZeros())
	}
}

// Log sets z to the integer floor of log_base(x). Requires x > 0 and
// base >= 2; anything else is a domain error. z may alias x or base.
func (z *Int) Log(x, base *Int) error {
	if x.Sign() <= 0 {
		return newError(ErrorDomain, "Log", "log of non-positive value")
	}
	if base.neg || base.Cmp(smallInt(2)) < 0 {
		return newError(ErrorDomain, "Log", "log base below two")
	}

	if base.IsPowerOfTwo() {
		// base == 2^k: the answer is floor(log2 x) / k, read straight
		// off the digit count and the top digit's leading zeros
		k := base.TrailingZeros()
		log2 := uint(len(x.digits))*digitBits - x.clzTop() - 1
		z.SetUint64(uint64(log2 / k))
		return nil
	}

	// Multiply a running product by base until it overtakes x; the
	// count of multiplications, less one, is the floor logarithm.
	product := NewUint(1)
	b := base.Clone()
	b.neg = false
	count := uint64(0)
	for product.CmpAbs(x) <= 0 {
		product.Mul(product, b)
		count++
	}
	z.SetUint64(count - 1)
	return nil
}
