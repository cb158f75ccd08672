package iet

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidIET indicates a malformed permutation pair or a length table
	// that does not assign a positive length to exactly the permuted labels.
	ErrInvalidIET = errors.New("iet: invalid interval exchange transformation")

	// ErrDegenerateIET indicates induction was attempted on an IET with
	// fewer than two labels.
	ErrDegenerateIET = errors.New("iet: induction needs at least two labels")

	// ErrBadPrefix indicates Split was asked for a prefix that is not a
	// common prefix of both permutations.
	ErrBadPrefix = errors.New("iet: not a common prefix of top and bottom")
)

// Label identifies one sub-interval. Labels are stable across induction:
// the induction step only moves and retires them, it never renames.
type Label int

// String renders labels 0..25 as A..Z and larger ones as L26, L27, ...
func (l Label) String() string {
	if l >= 0 && l < 26 {
		return string(rune('A' + l))
	}

	return "L" + strconv.Itoa(int(l))
}

// Side selects one of the two rows of an interval exchange.
type Side int

const (
	// Top is the row of intervals before the exchange.
	Top Side = iota
	// Bottom is the row of intervals after the exchange.
	Bottom
)

// String returns "top" or "bot".
func (s Side) String() string {
	if s == Top {
		return "top"
	}

	return "bot"
}

// Other returns the opposite side.
func (s Side) Other() Side { return 1 - s }

// InductionResult describes one (possibly accelerated) induction move.
//
// For an ordinary move, Winner is the longer of the two rightmost intervals,
// on side Side, and Loser is the first interval it absorbed. FoldCount is the
// number of elementary Rauzy–Veech moves folded into the step, always ≥ 1.
//
// For a connection event (Connection == true) the two rightmost intervals
// had equal length: Loser is the retired top label and Winner the bottom
// label that survives in its place. FoldCount is 1 and Side is Bottom.
type InductionResult struct {
	Winner     Label
	Loser      Label
	Side       Side
	FoldCount  *big.Int
	Connection bool
}

// String renders the result, e.g. "A(bot) beats B x5" or "B = A (connection)".
func (r InductionResult) String() string {
	if r.Connection {
		return fmt.Sprintf("%s = %s (connection)", r.Loser, r.Winner)
	}

	return fmt.Sprintf("%s(%s) beats %s x%s", r.Winner, r.Side, r.Loser, r.FoldCount)
}
