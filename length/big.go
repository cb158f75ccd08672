package length

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// BigInt is an arbitrary precision integer length. The zero value is zero.
type BigInt struct {
	v *big.Int
}

var (
	_ Length[BigInt]       = BigInt{}
	_ Proportional[BigInt] = BigInt{}
)

// NewBigInt returns a copy of v as a length, or ErrNegative if v < 0.
func NewBigInt(v *big.Int) (BigInt, error) {
	if v.Sign() < 0 {
		return BigInt{}, errors.Wrapf(ErrNegative, "bigint %s", v)
	}

	return BigInt{v: new(big.Int).Set(v)}, nil
}

// ParseBigInt parses a base 10 integer.
func ParseBigInt(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, errors.Wrapf(ErrParse, "bigint %q", s)
	}

	return NewBigInt(v)
}

// BigInts converts machine integers into BigInt lengths.
func BigInts(vs ...int64) ([]BigInt, error) {
	out := make([]BigInt, len(vs))
	for i, v := range vs {
		l, err := NewBigInt(big.NewInt(v))
		if err != nil {
			return nil, err
		}
		out[i] = l
	}

	return out, nil
}

func (x BigInt) val() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}

	return x.v
}

// Value returns a copy of the underlying integer.
func (x BigInt) Value() *big.Int { return new(big.Int).Set(x.val()) }

// Cmp compares x and o.
func (x BigInt) Cmp(o BigInt) int { return x.val().Cmp(o.val()) }

// IsZero reports whether x is zero.
func (x BigInt) IsZero() bool { return x.val().Sign() == 0 }

// Add returns x + o.
func (x BigInt) Add(o BigInt) BigInt {
	return BigInt{v: new(big.Int).Add(x.val(), o.val())}
}

// Sub returns x - o.
func (x BigInt) Sub(o BigInt) BigInt {
	r := new(big.Int).Sub(x.val(), o.val())
	mustNonNegative(r.Sign(), "bigint sub")

	return BigInt{v: r}
}

// Scale returns k·x.
func (x BigInt) Scale(k *big.Int) BigInt {
	return BigInt{v: new(big.Int).Mul(x.val(), k)}
}

// FloorDiv returns floor(x / o).
func (x BigInt) FloorDiv(o BigInt) (*big.Int, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}

	return new(big.Int).Quo(x.val(), o.val()), nil
}

// Coefficients returns the single coordinate of x in the basis (1).
func (x BigInt) Coefficients() []*big.Rat {
	return []*big.Rat{new(big.Rat).SetInt(x.val())}
}

// Ratio returns x / o as a single rational coefficient.
func (x BigInt) Ratio(o BigInt) ([]*big.Rat, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}

	return []*big.Rat{new(big.Rat).SetFrac(x.val(), o.val())}, nil
}

// String renders x in base 10.
func (x BigInt) String() string { return x.val().String() }

// Rat is an arbitrary precision rational length. The zero value is zero.
type Rat struct {
	v *big.Rat
}

var (
	_ Length[Rat]       = Rat{}
	_ Proportional[Rat] = Rat{}
)

// NewRat returns a copy of v as a length, or ErrNegative if v < 0.
func NewRat(v *big.Rat) (Rat, error) {
	if v.Sign() < 0 {
		return Rat{}, errors.Wrapf(ErrNegative, "rat %s", v.RatString())
	}

	return Rat{v: new(big.Rat).Set(v)}, nil
}

// ParseRat parses "p", "p/q" or a decimal such as "1.25".
func ParseRat(s string) (Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, errors.Wrapf(ErrParse, "rat %q", s)
	}

	return NewRat(v)
}

// MustRat is like ParseRat but panics on error.
func MustRat(s string) Rat {
	r, err := ParseRat(s)
	if err != nil {
		panic(err)
	}

	return r
}

// Rats parses every element of ss with ParseRat.
func Rats(ss ...string) ([]Rat, error) {
	out := make([]Rat, len(ss))
	for i, s := range ss {
		r, err := ParseRat(s)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

func (x Rat) val() *big.Rat {
	if x.v == nil {
		return new(big.Rat)
	}

	return x.v
}

// Value returns a copy of the underlying rational.
func (x Rat) Value() *big.Rat { return new(big.Rat).Set(x.val()) }

// Cmp compares x and o.
func (x Rat) Cmp(o Rat) int { return x.val().Cmp(o.val()) }

// IsZero reports whether x is zero.
func (x Rat) IsZero() bool { return x.val().Sign() == 0 }

// Add returns x + o.
func (x Rat) Add(o Rat) Rat {
	return Rat{v: new(big.Rat).Add(x.val(), o.val())}
}

// Sub returns x - o.
func (x Rat) Sub(o Rat) Rat {
	r := new(big.Rat).Sub(x.val(), o.val())
	mustNonNegative(r.Sign(), "rat sub")

	return Rat{v: r}
}

// Scale returns k·x.
func (x Rat) Scale(k *big.Int) Rat {
	return Rat{v: new(big.Rat).Mul(x.val(), new(big.Rat).SetInt(k))}
}

// FloorDiv returns floor(x / o), computed on numerators and denominators
// without building the quotient rational.
func (x Rat) FloorDiv(o Rat) (*big.Int, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}
	a, b := x.val(), o.val()
	num := new(big.Int).Mul(a.Num(), b.Denom())
	den := new(big.Int).Mul(a.Denom(), b.Num())

	return num.Quo(num, den), nil
}

// Coefficients returns the single coordinate of x in the basis (1).
func (x Rat) Coefficients() []*big.Rat {
	return []*big.Rat{new(big.Rat).Set(x.val())}
}

// Ratio returns x / o as a single rational coefficient.
func (x Rat) Ratio(o Rat) ([]*big.Rat, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}

	return []*big.Rat{new(big.Rat).Quo(x.val(), o.val())}, nil
}

// String renders x as "p" or "p/q".
func (x Rat) String() string { return x.val().RatString() }
