package length_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intervalxt/length"
)

// TestInt_Arithmetic covers the machine integer backend on ordinary values.
func TestInt_Arithmetic(t *testing.T) {
	a, b := length.MustInt[int64](18), length.MustInt[int64](3)

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(length.MustInt[int64](18)))
	assert.False(t, a.IsZero())
	assert.True(t, length.MustInt[int64](0).IsZero())

	assert.Equal(t, int64(21), a.Add(b).Value())
	assert.Equal(t, int64(15), a.Sub(b).Value())
	assert.Equal(t, int64(0), a.Sub(a).Value())
	assert.Equal(t, int64(54), a.Scale(big.NewInt(3)).Value())
	assert.Equal(t, "18", a.String())

	q, err := a.FloorDiv(b)
	require.NoError(t, err)
	assert.Equal(t, int64(6), q.Int64())
	q, err = length.MustInt[int64](17).FloorDiv(b)
	require.NoError(t, err)
	assert.Equal(t, int64(5), q.Int64())

	r, err := b.Ratio(a)
	require.NoError(t, err)
	require.Len(t, r, 1)
	assert.Equal(t, "1/6", r[0].RatString())

	c := a.Coefficients()
	require.Len(t, c, 1)
	assert.Equal(t, "18", c[0].RatString())
}

// TestInt_Errors verifies rejected inputs and the panics on misuse.
func TestInt_Errors(t *testing.T) {
	_, err := length.NewInt(-1)
	require.ErrorIs(t, err, length.ErrNegative)
	_, err = length.Ints[int32](1, 2, -3)
	require.ErrorIs(t, err, length.ErrNegative)
	assert.Panics(t, func() { length.MustInt(-5) })

	_, err = length.MustInt[uint](4).FloorDiv(length.MustInt[uint](0))
	require.ErrorIs(t, err, length.ErrDivisionByZero)
	_, err = length.MustInt[uint](4).Ratio(length.MustInt[uint](0))
	require.ErrorIs(t, err, length.ErrDivisionByZero)

	// negative result
	assert.Panics(t, func() { length.MustInt(3).Sub(length.MustInt(5)) })
	// overflow, signed and unsigned
	assert.Panics(t, func() { length.MustInt[int8](100).Add(length.MustInt[int8](100)) })
	assert.Panics(t, func() { length.MustInt[uint8](200).Add(length.MustInt[uint8](100)) })
	assert.Panics(t, func() { length.MustInt[uint8](100).Scale(big.NewInt(3)) })
	assert.Panics(t, func() { length.MustInt[int8](100).Scale(big.NewInt(2)) })
	assert.NotPanics(t, func() { length.MustInt[uint8](85).Scale(big.NewInt(3)) })
}

// TestBigInt covers the arbitrary precision integer backend.
func TestBigInt(t *testing.T) {
	huge, err := length.ParseBigInt("123456789012345678901234567890")
	require.NoError(t, err)
	small, err := length.ParseBigInt("1000000000000")
	require.NoError(t, err)

	q, err := huge.FloorDiv(small)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", q.String())
	assert.Equal(t, "123456789012345678901234567890", huge.String())
	assert.Equal(t, "123456789012345679901234567890", huge.Add(small).String())
	assert.Equal(t, 1, huge.Cmp(small))

	var zero length.BigInt
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, "7", zero.Add(mustBig(t, 7)).String())

	_, err = small.FloorDiv(zero)
	require.ErrorIs(t, err, length.ErrDivisionByZero)
	_, err = length.ParseBigInt("12x")
	require.ErrorIs(t, err, length.ErrParse)
	_, err = length.NewBigInt(big.NewInt(-2))
	require.ErrorIs(t, err, length.ErrNegative)
	_, err = length.BigInts(1, -1)
	require.ErrorIs(t, err, length.ErrNegative)
	assert.Panics(t, func() { small.Sub(huge) })
}

// TestRat covers the rational backend, including decimal parsing.
func TestRat(t *testing.T) {
	x, y := length.MustRat("7/2"), length.MustRat("1/3")

	q, err := x.FloorDiv(y)
	require.NoError(t, err)
	assert.Equal(t, int64(10), q.Int64())

	q, err = length.MustRat("1").FloorDiv(length.MustRat("1/4"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), q.Int64(), "exact quotient")

	assert.Equal(t, "19/6", x.Sub(y).String())
	assert.Equal(t, "7", x.Scale(big.NewInt(2)).String())
	assert.Equal(t, "5/4", length.MustRat("1.25").String())

	r, err := y.Ratio(x)
	require.NoError(t, err)
	assert.Equal(t, "2/21", r[0].RatString())

	_, err = length.ParseRat("one half")
	require.ErrorIs(t, err, length.ErrParse)
	_, err = length.ParseRat("-1/2")
	require.ErrorIs(t, err, length.ErrNegative)
	_, err = x.FloorDiv(length.Rat{})
	require.ErrorIs(t, err, length.ErrDivisionByZero)
	assert.Panics(t, func() { y.Sub(x) })
	assert.Panics(t, func() { length.MustRat("nope") })
}

// TestQuadratic_Field checks field construction and element validation.
func TestQuadratic_Field(t *testing.T) {
	for _, d := range []int64{-3, 0, 1, 4, 12, 18} {
		_, err := length.NewQuadraticField(d)
		require.ErrorIsf(t, err, length.ErrNotSquareFree, "d=%d", d)
	}
	for _, d := range []int64{2, 3, 5, 6, 30} {
		f, err := length.NewQuadraticField(d)
		require.NoErrorf(t, err, "d=%d", d)
		assert.Equal(t, d, f.Radicand())
	}

	f := mustField(t, 5)
	// 1 - √5 < 0
	_, err := f.Ints(1, -1)
	require.ErrorIs(t, err, length.ErrNegative)
	// 3 - √5 > 0
	_, err = f.Ints(3, -1)
	require.NoError(t, err)
	_, err = length.NewQuadratic(9, big.NewRat(1, 1), big.NewRat(1, 1))
	require.ErrorIs(t, err, length.ErrNotSquareFree)
}

// TestQuadratic_Arithmetic covers exact comparison and division in Q(√5).
func TestQuadratic_Arithmetic(t *testing.T) {
	f := mustField(t, 5)
	one := f.MustInts(1, 0)
	root := f.MustInts(0, 1)
	phi, err := f.Element(big.NewRat(1, 2), big.NewRat(1, 2))
	require.NoError(t, err)
	inv, err := f.Element(big.NewRat(-1, 2), big.NewRat(1, 2))
	require.NoError(t, err)

	// 2 < √5 < 3
	assert.Equal(t, 1, root.Cmp(f.MustInts(2, 0)))
	assert.Equal(t, -1, root.Cmp(f.MustInts(3, 0)))
	assert.Equal(t, 0, phi.Sub(one).Cmp(inv))

	assert.Equal(t, "1/2+1/2√5", phi.String())
	assert.Equal(t, "-1/2+1/2√5", inv.String())
	assert.Equal(t, "3/2-1/2√5", one.Sub(inv).String())
	assert.Equal(t, "√5", root.String())
	assert.Equal(t, "-2+√5", f.MustInts(-2, 1).String())
	assert.Equal(t, "3-√5", f.MustInts(3, -1).String())
	assert.Equal(t, "1", one.String())
	assert.Equal(t, "5+5√5", phi.Scale(big.NewInt(10)).String())

	cases := []struct {
		name string
		x, o length.Quadratic
		want int64
	}{
		{"phi over one", phi, one, 1},
		{"ten root five", root.Scale(big.NewInt(10)), one, 22},
		{"one over inverse", one, inv, 1},
		{"inverse over one", inv, one, 0},
		{"phi over phi", phi, phi, 1},
		{"one over root", one, root, 0},
		{"integers", f.MustInts(7, 0), f.MustInts(2, 0), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.x.FloorDiv(tc.o)
			require.NoError(t, err)
			assert.Equal(t, tc.want, q.Int64())
		})
	}

	// φ / (φ - 1) = φ² = 3/2 + 1/2·√5
	r, err := phi.Ratio(inv)
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Equal(t, "3/2", r[0].RatString())
	assert.Equal(t, "1/2", r[1].RatString())

	c := inv.Coefficients()
	assert.Equal(t, "-1/2", c[0].RatString())
	assert.Equal(t, "1/2", c[1].RatString())

	_, err = phi.FloorDiv(f.MustInts(0, 0))
	require.ErrorIs(t, err, length.ErrDivisionByZero)
	assert.Panics(t, func() { inv.Sub(phi) })
	assert.Panics(t, func() { phi.Cmp(mustField(t, 2).MustInts(1, 1)) })
}

// TestSum totals a list and returns zero for no values.
func TestSum(t *testing.T) {
	vs, err := length.Ints[int64](1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(10), length.Sum(length.MustInt[int64](0), vs...).Value())
	assert.True(t, length.Sum(length.MustRat("0")).IsZero())
}

func mustField(t *testing.T, d int64) length.QuadraticField {
	t.Helper()
	f, err := length.NewQuadraticField(d)
	require.NoError(t, err)

	return f
}

func mustBig(t *testing.T, v int64) length.BigInt {
	t.Helper()
	b, err := length.NewBigInt(big.NewInt(v))
	require.NoError(t, err)

	return b
}

// TestDecimal covers the decimal backend.
func TestDecimal(t *testing.T) {
	x, y := length.MustDecimal("3.5"), length.MustDecimal("0.25")

	q, err := x.FloorDiv(y)
	require.NoError(t, err)
	assert.Equal(t, int64(14), q.Int64())
	q, err = x.FloorDiv(length.MustDecimal("1.5"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), q.Int64())

	assert.Equal(t, "3.75", x.Add(y).String())
	assert.Equal(t, "3.25", x.Sub(y).String())
	assert.Equal(t, "10.5", x.Scale(big.NewInt(3)).String())
	assert.Equal(t, "1250", length.MustDecimal("1.25E+3").String())
	assert.Equal(t, 0, length.MustDecimal("1.5").Cmp(length.MustDecimal("1.50")))
	assert.Equal(t, "7/2", x.Coefficients()[0].RatString())

	r, err := y.Ratio(x)
	require.NoError(t, err)
	assert.Equal(t, "1/14", r[0].RatString())

	var zero length.Decimal
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())

	_, err = length.ParseDecimal("-1")
	require.ErrorIs(t, err, length.ErrNegative)
	_, err = length.ParseDecimal("abc")
	require.ErrorIs(t, err, length.ErrParse)
	_, err = length.ParseDecimal("Infinity")
	require.ErrorIs(t, err, length.ErrParse)
	_, err = length.Decimals("1", "x")
	require.ErrorIs(t, err, length.ErrParse)
	_, err = x.FloorDiv(zero)
	require.ErrorIs(t, err, length.ErrDivisionByZero)
	assert.Panics(t, func() { y.Sub(x) })
}
