package bigint

// Parse interprets s as a signed integer. An optional +/- sign is
// followed by a radix prefix (0b/0B binary, 0o/0O octal, 0x/0X hex, a
// leading zero before a digit octal, otherwise decimal) and digits.
// Decimal input additionally accepts a fraction and a non-negative
// exponent in the form M.FeE; the value is M scaled by ten E times,
// consuming fractional digits as long as the exponent allows.
//
// The second result is the unused fractional residue, a substring of s
// (empty when every fractional digit was absorbed). Malformed input is
// an invalid error.
func Parse(s string) (*Int, string, error) {
	z := New()
	rest, err := z.SetString(s)
	if err != nil {
		return nil, "", err
	}
	return z, rest, nil
}

// SetString assigns the value described by s to z, with the same
// syntax and residue result as Parse. On failure z is left unmodified.
func (z *Int) SetString(s string) (string, error) {
	v := New()
	rest, err := v.setString(s)
	if err != nil {
		return "", err
	}
	z.digits, z.neg = v.digits, v.neg
	return rest, nil
}

func (z *Int) setString(s string) (string, error) {
	const op = "Parse"
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if i == len(s) {
		return "", newError(ErrorInvalid, op, "missing digits")
	}

	radix := Digit(10)
	if s[i] == '0' && i+1 < len(s) {
		switch s[i+1] {
		case 'b', 'B':
			radix = 2
			i += 2
		case 'o', 'O':
			radix = 8
			i += 2
		case 'x', 'X':
			radix = 16
			i += 2
		default:
			// a zero followed by a digit is octal; "0." stays decimal
			if isDecDigit(s[i+1]) {
				radix = 8
				i++
			}
		}
	}

	z.setZero()
	start := i
	for i < len(s) {
		v, ok := digitVal(s[i])
		if !ok || v >= radix {
			break
		}
		z.mulAddDigit(z, radix, v)
		i++
	}
	if i == start {
		return "", newError(ErrorInvalid, op, "missing digits")
	}

	var frac string
	var exp uint64
	if radix == 10 {
		if i < len(s) && s[i] == '.' {
			i++
			fs := i
			for i < len(s) && isDecDigit(s[i]) {
				i++
			}
			frac = s[fs:i]
		}
		if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			i++
			if i < len(s) && s[i] == '+' {
				i++
			}
			if i == len(s) || !isDecDigit(s[i]) {
				return "", newError(ErrorInvalid, op, "malformed exponent")
			}
			for i < len(s) && isDecDigit(s[i]) {
				d := uint64(s[i] - '0')
				if exp > (^uint64(0)-d)/10 {
					return "", newError(ErrorRange, op, "exponent too large")
				}
				exp = exp*10 + d
				i++
			}
		}
	}
	if i != len(s) {
		return "", newErrorf(ErrorInvalid, op, "unexpected character %q", s[i])
	}

	// Trailing zeros contribute nothing; strip them before letting the
	// exponent absorb fractional digits.
	trimmed := len(frac)
	for trimmed > 0 && frac[trimmed-1] == '0' {
		trimmed--
	}
	fi := 0
	for exp > 0 && fi < trimmed {
		z.mulAddDigit(z, 10, Digit(frac[fi]-'0'))
		fi++
		exp--
	}
	rest := frac[fi:trimmed]

	ten := smallInt(10)
	for ; exp > 0; exp-- {
		z.Mul(z, ten)
	}

	z.neg = neg && !z.IsZero()
	return rest, nil
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitVal maps a character to its digit value: 0-9 directly, letters
// to 10..35. The second result is false for anything else.
func digitVal(c byte) (Digit, bool) {
	switch {
	case c >= '0' && c <= '9':
		return Digit(c - '0'), true
	case c >= 'a' && c <= 'z':
		return Digit(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return Digit(c-'A') + 10, true
	default:
		return 0, false
	}
}
