package length

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for length construction and arithmetic.
var (
	// ErrNegative indicates a constructor was given a negative value.
	ErrNegative = errors.New("length: value must not be negative")

	// ErrDivisionByZero indicates FloorDiv was called with a zero divisor.
	ErrDivisionByZero = errors.New("length: division by zero")

	// ErrParse indicates a textual value could not be parsed.
	ErrParse = errors.New("length: cannot parse value")

	// ErrNotSquareFree indicates a quadratic field radicand that is not a
	// square-free integer greater than one.
	ErrNotSquareFree = errors.New("length: radicand must be a square-free integer > 1")

	// ErrFieldMismatch indicates two quadratic values from different fields
	// were combined.
	ErrFieldMismatch = errors.New("length: values live in different quadratic fields")

	// ErrOverflow indicates a machine integer operation left the range of
	// the underlying type.
	ErrOverflow = errors.New("length: machine integer overflow")
)

// Length is the capability the induction engine requires from a numeric
// backend. L is the implementing type itself, so that the engine stays
// generic and never boxes values behind an interface.
//
// Implementations are immutable values and never negative.
type Length[L any] interface {
	// Cmp returns -1, 0 or +1 as the receiver is less than, equal to or
	// greater than other.
	Cmp(other L) int

	// IsZero reports whether the value is exactly zero.
	IsZero() bool

	// Add returns the sum of the receiver and other.
	Add(other L) L

	// Sub returns the receiver minus other. Callers must ensure the result is
	// non-negative; implementations panic otherwise.
	Sub(other L) L

	// Scale returns the receiver multiplied by the non-negative integer k.
	Scale(k *big.Int) L

	// FloorDiv returns floor(receiver / other). It fails with
	// ErrDivisionByZero when other is zero.
	FloorDiv(other L) (*big.Int, error)

	// Coefficients returns the value as a finite ordered sequence of
	// rationals in a basis fixed by the backend. Two values of the same
	// backend always use the same basis.
	Coefficients() []*big.Rat

	fmt.Stringer
}

// Proportional is implemented by backends that can express the quotient of
// two values in their own basis. Ratio returns the coefficients of
// receiver / other and fails with ErrDivisionByZero when other is zero. It
// lets callers compare length vectors up to an arbitrary positive scalar.
type Proportional[L any] interface {
	Ratio(other L) ([]*big.Rat, error)
}

// Sum returns the total of values, or zero when values is empty.
func Sum[L Length[L]](zero L, values ...L) L {
	total := zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

// mustNonNegative panics with ErrNegative when sign is negative. It guards
// Sub, where a negative result is a programmer error in the caller.
func mustNonNegative(sign int, op string) {
	if sign < 0 {
		panic(errors.Wrapf(ErrNegative, "%s", op))
	}
}
