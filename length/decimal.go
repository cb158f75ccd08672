package length

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// Decimal is a finite decimal length such as 0.125, backed by apd. Sums,
// differences and integer multiples are computed without rounding; floor
// division and ratios go through the exact rational value. The zero value
// is zero.
type Decimal struct {
	v *apd.Decimal
}

var (
	_ Length[Decimal]       = Decimal{}
	_ Proportional[Decimal] = Decimal{}
)

// exact has rounding disabled, so Add, Sub and Mul never lose digits.
var exact = apd.BaseContext

// ParseDecimal parses a decimal literal such as "12", "0.5" or "1.25E+3".
func ParseDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, errors.Wrapf(ErrParse, "decimal %q", s)
	}
	if d.Form != apd.Finite {
		return Decimal{}, errors.Wrapf(ErrParse, "decimal %q is not finite", s)
	}
	if d.Sign() < 0 {
		return Decimal{}, errors.Wrapf(ErrNegative, "decimal %s", s)
	}

	return Decimal{v: d}, nil
}

// MustDecimal is like ParseDecimal but panics on error.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Decimals parses every element of ss with ParseDecimal.
func Decimals(ss ...string) ([]Decimal, error) {
	out := make([]Decimal, len(ss))
	for i, s := range ss {
		d, err := ParseDecimal(s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

func (x Decimal) val() *apd.Decimal {
	if x.v == nil {
		return new(apd.Decimal)
	}

	return x.v
}

// Cmp compares x and o numerically; 1.5 and 1.50 are equal.
func (x Decimal) Cmp(o Decimal) int { return x.val().Cmp(o.val()) }

// IsZero reports whether x is zero.
func (x Decimal) IsZero() bool { return x.val().IsZero() }

// Add returns x + o.
func (x Decimal) Add(o Decimal) Decimal {
	return x.apply(exact.Add, o.val(), "decimal add")
}

// Sub returns x - o.
func (x Decimal) Sub(o Decimal) Decimal {
	r := x.apply(exact.Sub, o.val(), "decimal sub")
	mustNonNegative(r.val().Sign(), "decimal sub")

	return r
}

// Scale returns k·x.
func (x Decimal) Scale(k *big.Int) Decimal {
	f, _, err := apd.NewFromString(k.String())
	if err != nil {
		panic(errors.Wrapf(err, "decimal scale by %s", k))
	}

	return x.apply(exact.Mul, f, "decimal scale")
}

func (x Decimal) apply(op func(d, a, b *apd.Decimal) (apd.Condition, error), o *apd.Decimal, what string) Decimal {
	r := new(apd.Decimal)
	if _, err := op(r, x.val(), o); err != nil {
		panic(errors.Wrap(err, what))
	}

	return Decimal{v: r}
}

// FloorDiv returns floor(x / o).
func (x Decimal) FloorDiv(o Decimal) (*big.Int, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}
	a, b := x.rat(), o.rat()
	num := new(big.Int).Mul(a.Num(), b.Denom())
	den := new(big.Int).Mul(a.Denom(), b.Num())

	return num.Quo(num, den), nil
}

// Coefficients returns the exact rational value of x in the basis (1).
func (x Decimal) Coefficients() []*big.Rat {
	return []*big.Rat{x.rat()}
}

// Ratio returns x / o as a single rational coefficient.
func (x Decimal) Ratio(o Decimal) ([]*big.Rat, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}

	return []*big.Rat{new(big.Rat).Quo(x.rat(), o.rat())}, nil
}

// rat converts x to the rational it denotes.
func (x Decimal) rat() *big.Rat {
	r, ok := new(big.Rat).SetString(x.val().Text('f'))
	if !ok {
		panic(errors.Wrapf(ErrParse, "decimal %s", x.val()))
	}

	return r
}

// String renders x in plain notation, keeping its scale: 3.50 stays 3.50.
func (x Decimal) String() string { return x.val().Text('f') }
