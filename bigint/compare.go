package bigint

// magCmpSlice compares two magnitudes given as digit slices, returning
// -1, 0 or +1. Leading zero digits are tolerated, which lets the
// division window compare unnormalized views.
func magCmpSlice(a, b []Digit) int {
	la, lb := len(a), len(b)
	for la > 0 && a[la-1] == 0 {
		la--
	}
	for lb > 0 && b[lb-1] == 0 {
		lb--
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	for i := la - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// CmpAbs compares the magnitudes of x and y, ignoring signs.
// Returns -1 if |x| < |y|, 0 if equal, +1 if |x| > |y|.
func (x *Int) CmpAbs(y *Int) int {
	return magCmpSlice(x.digits, y.digits)
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, +1 if x > y
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return -x.CmpAbs(y)
	default:
		return x.CmpAbs(y)
	}
}

// Eq reports whether x and y are equal
func (x *Int) Eq(y *Int) bool {
	return x.Cmp(y) == 0
}
