package length

import (
	"math/big"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Int is a length backed by a machine integer. Arithmetic that leaves the
// range of T panics with ErrOverflow instead of wrapping around.
type Int[T constraints.Integer] struct {
	v T
}

var (
	_ Length[Int[int64]]       = Int[int64]{}
	_ Proportional[Int[int64]] = Int[int64]{}
)

// NewInt returns v as a length, or ErrNegative if v < 0.
func NewInt[T constraints.Integer](v T) (Int[T], error) {
	if v < 0 {
		return Int[T]{}, errors.Wrapf(ErrNegative, "int %d", int64(v))
	}

	return Int[T]{v: v}, nil
}

// MustInt is like NewInt but panics on error. Intended for literals in
// tests and examples.
func MustInt[T constraints.Integer](v T) Int[T] {
	l, err := NewInt(v)
	if err != nil {
		panic(err)
	}

	return l
}

// Ints converts a list of machine integers into lengths.
func Ints[T constraints.Integer](vs ...T) ([]Int[T], error) {
	out := make([]Int[T], len(vs))
	for i, v := range vs {
		l, err := NewInt(v)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}

	return out, nil
}

// Value returns the underlying integer.
func (x Int[T]) Value() T { return x.v }

// Cmp compares x and o.
func (x Int[T]) Cmp(o Int[T]) int {
	switch {
	case x.v < o.v:
		return -1
	case x.v > o.v:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether x is zero.
func (x Int[T]) IsZero() bool { return x.v == 0 }

// Add returns x + o.
func (x Int[T]) Add(o Int[T]) Int[T] {
	r := x.v + o.v
	if r < x.v {
		panic(errors.Wrapf(ErrOverflow, "%v + %v", x.v, o.v))
	}

	return Int[T]{v: r}
}

// Sub returns x - o.
func (x Int[T]) Sub(o Int[T]) Int[T] {
	mustNonNegative(x.Cmp(o), "int sub")

	return Int[T]{v: x.v - o.v}
}

// Scale returns k·x.
func (x Int[T]) Scale(k *big.Int) Int[T] {
	p := new(big.Int).Mul(toBig(x.v), k)
	if !p.IsUint64() {
		panic(errors.Wrapf(ErrOverflow, "%v * %s", x.v, k))
	}
	r := T(p.Uint64())
	if toBig(r).Cmp(p) != 0 || r < 0 {
		panic(errors.Wrapf(ErrOverflow, "%v * %s", x.v, k))
	}

	return Int[T]{v: r}
}

// FloorDiv returns floor(x / o).
func (x Int[T]) FloorDiv(o Int[T]) (*big.Int, error) {
	if o.v == 0 {
		return nil, ErrDivisionByZero
	}

	return toBig(x.v / o.v), nil
}

// Coefficients returns the single coordinate of x in the basis (1).
func (x Int[T]) Coefficients() []*big.Rat {
	return []*big.Rat{new(big.Rat).SetInt(toBig(x.v))}
}

// Ratio returns x / o as a single rational coefficient.
func (x Int[T]) Ratio(o Int[T]) ([]*big.Rat, error) {
	if o.v == 0 {
		return nil, ErrDivisionByZero
	}

	return []*big.Rat{new(big.Rat).SetFrac(toBig(x.v), toBig(o.v))}, nil
}

// String renders x in base 10.
func (x Int[T]) String() string {
	return strconv.FormatUint(uint64(x.v), 10)
}

// toBig converts a non-negative machine integer to a big.Int.
func toBig[T constraints.Integer](v T) *big.Int {
	return new(big.Int).SetUint64(uint64(v))
}
