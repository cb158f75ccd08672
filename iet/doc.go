// Package iet implements interval exchange transformations with exact
// lengths and their accelerated Rauzy–Veech induction.
//
// What:
//
//   - IET[L]: a top and a bottom ordering of the same labels plus a positive
//     length per label, generic over any length.Length backend.
//   - IsReducible / ReducingPrefix / Split: detect and cut a common prefix,
//     i.e. an invariant sub-interval, in O(n).
//   - ApplyElementaryStep: one classical Rauzy–Veech move.
//   - ApplyInductionStep: the accelerated move, folding every consecutive
//     move with the same winner into one floor division.
//   - String: stable three-line rendering for logs and golden tests.
//
// The induction step compares the rightmost intervals a (top) and b
// (bottom). The longer one wins and absorbs the shorter; equal lengths are a
// connection event, after which a is retired and the IET has one label
// less. Labels are never renamed.
//
// Complexity:
//
//   - New, Clone, ReducingPrefix, Split, String: O(n)
//   - ApplyElementaryStep:                        O(n)
//   - ApplyInductionStep:                         O(n) length operations
//
// Errors:
//
//   - ErrInvalidIET       malformed permutation pair or length table
//   - ErrDegenerateIET    induction on fewer than two labels
//   - ErrBadPrefix        Split on a prefix that is not common to both rows
//   - length.ErrDivisionByZero is propagated, wrapped, if a backend reports it
package iet
