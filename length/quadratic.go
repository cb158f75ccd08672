package length

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Quadratic is the length a + b·√d for rationals a, b and a square-free
// radicand d > 1. All comparisons are exact: signs are decided by comparing
// squares, never by rounding.
//
// The zero value is not usable; build values with NewQuadratic or through a
// QuadraticField.
type Quadratic struct {
	d    int64
	a, b *big.Rat
}

var (
	_ Length[Quadratic]       = Quadratic{}
	_ Proportional[Quadratic] = Quadratic{}
)

// QuadraticField is the real field Q(√d).
type QuadraticField struct {
	d int64
}

// NewQuadraticField validates d and returns Q(√d).
func NewQuadraticField(d int64) (QuadraticField, error) {
	if !squareFree(d) {
		return QuadraticField{}, errors.Wrapf(ErrNotSquareFree, "d=%d", d)
	}

	return QuadraticField{d: d}, nil
}

// Radicand returns d.
func (f QuadraticField) Radicand() int64 { return f.d }

// Element returns a + b·√d, or ErrNegative if that value is negative.
func (f QuadraticField) Element(a, b *big.Rat) (Quadratic, error) {
	q := Quadratic{d: f.d, a: new(big.Rat).Set(a), b: new(big.Rat).Set(b)}
	if q.sign() < 0 {
		return Quadratic{}, errors.Wrapf(ErrNegative, "quadratic %s", q)
	}

	return q, nil
}

// Ints returns a + b·√d for integers a and b.
func (f QuadraticField) Ints(a, b int64) (Quadratic, error) {
	return f.Element(big.NewRat(a, 1), big.NewRat(b, 1))
}

// MustInts is like Ints but panics on error.
func (f QuadraticField) MustInts(a, b int64) Quadratic {
	q, err := f.Ints(a, b)
	if err != nil {
		panic(err)
	}

	return q
}

// NewQuadratic is shorthand for NewQuadraticField(d) followed by Element.
func NewQuadratic(d int64, a, b *big.Rat) (Quadratic, error) {
	f, err := NewQuadraticField(d)
	if err != nil {
		return Quadratic{}, err
	}

	return f.Element(a, b)
}

// Radicand returns d.
func (x Quadratic) Radicand() int64 { return x.d }

// Rational returns a copy of a.
func (x Quadratic) Rational() *big.Rat { return new(big.Rat).Set(x.a) }

// Irrational returns a copy of b.
func (x Quadratic) Irrational() *big.Rat { return new(big.Rat).Set(x.b) }

// Cmp compares x and o exactly.
func (x Quadratic) Cmp(o Quadratic) int {
	x.mustMatch(o)
	p := new(big.Rat).Sub(x.a, o.a)
	q := new(big.Rat).Sub(x.b, o.b)

	return signOf(p, q, x.d)
}

// IsZero reports whether x is zero.
func (x Quadratic) IsZero() bool { return x.a.Sign() == 0 && x.b.Sign() == 0 }

// Add returns x + o.
func (x Quadratic) Add(o Quadratic) Quadratic {
	x.mustMatch(o)

	return Quadratic{d: x.d, a: new(big.Rat).Add(x.a, o.a), b: new(big.Rat).Add(x.b, o.b)}
}

// Sub returns x - o.
func (x Quadratic) Sub(o Quadratic) Quadratic {
	x.mustMatch(o)
	r := Quadratic{d: x.d, a: new(big.Rat).Sub(x.a, o.a), b: new(big.Rat).Sub(x.b, o.b)}
	mustNonNegative(r.sign(), "quadratic sub")

	return r
}

// Scale returns k·x.
func (x Quadratic) Scale(k *big.Int) Quadratic {
	kr := new(big.Rat).SetInt(k)

	return Quadratic{d: x.d, a: new(big.Rat).Mul(x.a, kr), b: new(big.Rat).Mul(x.b, kr)}
}

// FloorDiv returns floor(x / o). The quotient x·conj(o)/N(o) is again an
// element p + q·√d; its floor is estimated in floating point and then
// corrected with exact sign tests.
func (x Quadratic) FloorDiv(o Quadratic) (*big.Int, error) {
	p, q, err := x.quo(o)
	if err != nil {
		return nil, err
	}

	n := estimateFloor(p, q, x.d)
	one := big.NewInt(1)
	// lower until n <= p + q√d
	for signOf(new(big.Rat).Sub(p, new(big.Rat).SetInt(n)), q, x.d) < 0 {
		n.Sub(n, one)
	}
	// raise until p + q√d < n+1
	for {
		next := new(big.Int).Add(n, one)
		if signOf(new(big.Rat).Sub(p, new(big.Rat).SetInt(next)), q, x.d) < 0 {
			break
		}
		n = next
	}

	return n, nil
}

// Ratio returns the coefficients (p, q) of x / o = p + q·√d.
func (x Quadratic) Ratio(o Quadratic) ([]*big.Rat, error) {
	p, q, err := x.quo(o)
	if err != nil {
		return nil, err
	}

	return []*big.Rat{p, q}, nil
}

// quo returns p and q with x / o = p + q·√d, computed as x·conj(o)/N(o).
func (x Quadratic) quo(o Quadratic) (p, q *big.Rat, err error) {
	x.mustMatch(o)
	if o.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	d := new(big.Rat).SetInt64(x.d)

	// N(o) = o.a² - d·o.b², non-zero because √d is irrational
	norm := new(big.Rat).Mul(o.a, o.a)
	norm.Sub(norm, new(big.Rat).Mul(d, new(big.Rat).Mul(o.b, o.b)))

	// x·conj(o) = (x.a·o.a - d·x.b·o.b) + (x.b·o.a - x.a·o.b)·√d
	p = new(big.Rat).Mul(x.a, o.a)
	p.Sub(p, new(big.Rat).Mul(d, new(big.Rat).Mul(x.b, o.b)))
	q = new(big.Rat).Mul(x.b, o.a)
	q.Sub(q, new(big.Rat).Mul(x.a, o.b))
	p.Quo(p, norm)
	q.Quo(q, norm)

	return p, q, nil
}

// Coefficients returns (a, b) in the basis (1, √d).
func (x Quadratic) Coefficients() []*big.Rat {
	return []*big.Rat{new(big.Rat).Set(x.a), new(big.Rat).Set(x.b)}
}

// String renders x as "a", "b√d" or "a+b√d", omitting a unit b.
func (x Quadratic) String() string {
	if x.a == nil || x.b == nil {
		return "0"
	}
	if x.b.Sign() == 0 {
		return x.a.RatString()
	}
	var sb strings.Builder
	if x.a.Sign() != 0 {
		sb.WriteString(x.a.RatString())
		if x.b.Sign() > 0 {
			sb.WriteByte('+')
		}
	}
	switch coeff := x.b.RatString(); coeff {
	case "1":
	case "-1":
		sb.WriteByte('-')
	default:
		sb.WriteString(coeff)
	}
	sb.WriteString("√" + strconv.FormatInt(x.d, 10))

	return sb.String()
}

func (x Quadratic) sign() int { return signOf(x.a, x.b, x.d) }

func (x Quadratic) mustMatch(o Quadratic) {
	if x.d != o.d {
		panic(errors.Wrapf(ErrFieldMismatch, "√%d vs √%d", x.d, o.d))
	}
}

// signOf returns the sign of p + q·√d.
func signOf(p, q *big.Rat, d int64) int {
	sp, sq := p.Sign(), q.Sign()
	switch {
	case sq == 0:
		return sp
	case sp == 0, sp == sq:
		return sq
	}
	// opposite signs: the larger magnitude wins, compare p² with d·q²
	p2 := new(big.Rat).Mul(p, p)
	q2 := new(big.Rat).Mul(q, q)
	q2.Mul(q2, new(big.Rat).SetInt64(d))
	switch p2.Cmp(q2) {
	case 1:
		return sp
	case -1:
		return sq
	default:
		return 0
	}
}

// estimateFloor approximates floor(p + q·√d) with a precision that grows
// with the size of p and q. The result may be off by a small amount and is
// corrected by the caller.
func estimateFloor(p, q *big.Rat, d int64) *big.Int {
	prec := uint(128 + p.Num().BitLen() + p.Denom().BitLen() + q.Num().BitLen() + q.Denom().BitLen())
	root := new(big.Float).SetPrec(prec).SetInt64(d)
	root.Sqrt(root)
	v := new(big.Float).SetPrec(prec).SetRat(q)
	v.Mul(v, root)
	v.Add(v, new(big.Float).SetPrec(prec).SetRat(p))
	n, acc := v.Int(nil)
	if v.Sign() < 0 && acc != big.Exact {
		// Int truncates toward zero
		n.Sub(n, big.NewInt(1))
	}

	return n
}

// squareFree reports whether d > 1 has no repeated prime factor.
func squareFree(d int64) bool {
	if d <= 1 {
		return false
	}
	for f := int64(2); f*f <= d; f++ {
		if d%(f*f) == 0 {
			return false
		}
	}

	return true
}
