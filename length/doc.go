// Package length defines the exact arithmetic capability consumed by the
// induction engine, together with five concrete backends.
//
// What:
//
//   - Length[L]: a non-negative, totally ordered, additive quantity with
//     scaling by a non-negative integer, Euclidean floor division and a
//     rational coordinate vector (Coefficients).
//   - Int[T]:     machine integers of any width (golang.org/x/exp/constraints).
//   - BigInt:     arbitrary precision integers.
//   - Rat:        arbitrary precision rationals.
//   - Decimal:    finite decimals (github.com/cockroachdb/apd/v3), exact.
//   - Quadratic:  elements a + b·√d of a real quadratic field, the only
//     backend whose values can be rationally independent of each other.
//
// Values are immutable: every operation returns a new value and never
// mutates its receiver or argument, so lengths may be shared freely between
// interval exchange transformations.
//
// Domain:
//
//	No backend ever represents a negative value. Constructors reject negative
//	input with ErrNegative; Sub panics if the result would be negative, since
//	the induction engine guarantees by construction that it never asks for one.
//
// Errors:
//
//   - ErrNegative         a constructor received a negative value.
//   - ErrDivisionByZero   FloorDiv with a zero divisor.
//   - ErrParse            a textual value could not be parsed.
//   - ErrNotSquareFree    a quadratic field with a radicand that is not square-free.
//   - ErrFieldMismatch    quadratic values from different fields were combined.
//   - ErrOverflow         a machine integer operation overflowed.
package length
