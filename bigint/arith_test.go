package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBasic(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"1", "-2", "-1"},
		{"-1", "2", "1"},
		{"-1", "-2", "-3"},
		{"1", "-1", "0"},
		{"255", "1", "256"},
		{"99999999999999999999", "1", "100000000000000000000"},
		{"12345678901234567890", "-12345678901234567890", "0"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		z := New().Add(a, b)
		assert.Equal(t, c.want, z.String(), "%s + %s", c.a, c.b)
		checkNormalized(t, z)
	}
}

func TestSubBasic(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"1", "2", "-1"},
		{"0", "1", "-1"},
		{"2", "1", "1"},
		{"-1", "-1", "0"},
		{"-1", "1", "-2"},
		{"100000000000000000000", "1", "99999999999999999999"},
		{"0", "-5", "5"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		z := New().Sub(a, b)
		assert.Equal(t, c.want, z.String(), "%s - %s", c.a, c.b)
		checkNormalized(t, z)
	}
}

func TestSubIntMaxMinBoundaries(t *testing.T) {
	minInt := NewInt(-9223372036854775808)
	z := New().Sub(minInt, NewInt(1))
	assert.Equal(t, "-9223372036854775809", z.String())

	z.Add(z, NewInt(1))
	assert.Equal(t, 0, z.Cmp(minInt))
}

func TestMulBasic(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "12345", "0"},
		{"12345", "0", "0"},
		{"1", "12345", "12345"},
		{"-1", "12345", "-12345"},
		{"-3", "-4", "12"},
		{"255", "255", "65025"},
		{"65536", "3", "196608"}, // power-of-two fast path
		{"3", "65536", "196608"},
		{"12345678901234567890", "98765432109876543210",
			"1219326311370217952237463801111263526900"},
	}
	for _, c := range cases {
		a, b := mustParse(t, c.a), mustParse(t, c.b)
		z := New().Mul(a, b)
		assert.Equal(t, c.want, z.String(), "%s * %s", c.a, c.b)
		checkNormalized(t, z)
	}
}

func TestAddMulCommutative(t *testing.T) {
	vals := []string{"0", "1", "-1", "255", "-256", "12345678901234567890", "-98765432109876543210"}
	for _, sa := range vals {
		for _, sb := range vals {
			a, b := mustParse(t, sa), mustParse(t, sb)
			assert.Equal(t, 0, New().Add(a, b).Cmp(New().Add(b, a)), "add %s %s", sa, sb)
			assert.Equal(t, 0, New().Mul(a, b).Cmp(New().Mul(b, a)), "mul %s %s", sa, sb)
		}
	}
}

func TestAddMulAssociativeDistributive(t *testing.T) {
	vals := []string{"7", "-13", "256", "99999999999999999999", "-123456789"}
	for _, sa := range vals {
		for _, sb := range vals {
			for _, sc := range vals {
				a, b, c := mustParse(t, sa), mustParse(t, sb), mustParse(t, sc)

				l := New().Add(New().Add(a, b), c)
				r := New().Add(a, New().Add(b, c))
				assert.Equal(t, 0, l.Cmp(r), "(%s+%s)+%s", sa, sb, sc)

				l.Mul(New().Mul(a, b), c)
				r.Mul(a, New().Mul(b, c))
				assert.Equal(t, 0, l.Cmp(r), "(%s*%s)*%s", sa, sb, sc)

				l.Mul(a, New().Add(b, c))
				r.Add(New().Mul(a, b), New().Mul(a, c))
				assert.Equal(t, 0, l.Cmp(r), "%s*(%s+%s)", sa, sb, sc)
			}
		}
	}
}

func TestAliasing(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"12345678901234567890", "987654321"},
		{"-255", "256"},
		{"1", "-1"},
		{"65536", "65536"},
	}
	type binop struct {
		name string
		call func(z, x, y *Int)
	}
	ops := []binop{
		{"add", func(z, x, y *Int) { z.Add(x, y) }},
		{"sub", func(z, x, y *Int) { z.Sub(x, y) }},
		{"mul", func(z, x, y *Int) { z.Mul(x, y) }},
		{"gcd", func(z, x, y *Int) { z.GCD(x, y) }},
	}
	for _, p := range pairs {
		for _, op := range ops {
			a, b := mustParse(t, p.a), mustParse(t, p.b)
			want := New()
			op.call(want, a, b)

			x := a.Clone()
			op.call(x, x, b)
			assert.Equal(t, 0, want.Cmp(x), "%s dest=a %s %s", op.name, p.a, p.b)
			checkNormalized(t, x)

			y := b.Clone()
			op.call(y, a, y)
			assert.Equal(t, 0, want.Cmp(y), "%s dest=b %s %s", op.name, p.a, p.b)

			self := a.Clone()
			wantSelf := New()
			op.call(wantSelf, a, a)
			op.call(self, self, self)
			assert.Equal(t, 0, wantSelf.Cmp(self), "%s dest=a a a %s", op.name, p.a)
		}
	}
}

func TestAbs(t *testing.T) {
	x := mustParse(t, "-12345678901234567890")
	z := New().Abs(x)
	assert.Equal(t, "12345678901234567890", z.String())
	z.Abs(z)
	assert.Equal(t, "12345678901234567890", z.String(), "abs is idempotent")
	require.GreaterOrEqual(t, z.Sign(), 0)
	assert.Equal(t, "0", New().Abs(New()).String())
}
