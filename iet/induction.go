package iet

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// ApplyElementaryStep performs one classical Rauzy–Veech move on the two
// rightmost intervals a (top) and b (bottom):
//
//   - |a| == |b|: connection event, see ApplyInductionStep.
//   - |a| > |b|: |a| -= |b| and b moves in the bottom row to just after a.
//   - |b| > |a|: symmetric, a moves in the top row to just after b.
//
// It fails with ErrDegenerateIET when fewer than two labels are active.
func (t *IET[L]) ApplyElementaryStep() (InductionResult, error) {
	if err := t.checkInducible(); err != nil {
		return InductionResult{}, err
	}
	side, ok := t.winningSide()
	if !ok {
		return t.connect(), nil
	}
	win, lose := t.rows(side)
	w, loser := win[len(win)-1], lose[len(lose)-1]
	t.elementary(w, lose, t.position(lose, w))

	return InductionResult{Winner: w, Loser: loser, Side: side, FoldCount: big.NewInt(1)}, nil
}

// ApplyInductionStep performs one accelerated (Zorich) induction move and
// reports it. It is equivalent to calling ApplyElementaryStep FoldCount
// times, but costs O(n) arithmetic operations however large FoldCount is.
//
// While the winner w stays longer than the loser, consecutive elementary
// moves take their losers from the labels following w in the losing row,
// right to left, and after a full cycle that row is back in its original
// order. The step therefore removes c whole cycles at once with a floor
// division, then finishes the partial cycle move by move. It stops before
// any move that would leave w exactly as long as its loser, so a coincidence
// of lengths is always handled by the next call as a connection event: with
// top [A B], bottom [B A] and lengths A=18, B=3 the step folds 5 moves and
// leaves A=3 = B.
//
// When the two rightmost intervals already have equal length the step is a
// connection event: their right endpoints coincide, the top label a is
// retired and the bottom label b takes its place in the bottom row.
//
// It fails with ErrDegenerateIET when fewer than two labels are active. On
// failure t is unchanged.
func (t *IET[L]) ApplyInductionStep() (InductionResult, error) {
	// 1. Validate
	if err := t.checkInducible(); err != nil {
		return InductionResult{}, err
	}

	// 2. Equal rightmost lengths: connection
	side, ok := t.winningSide()
	if !ok {
		return t.connect(), nil
	}

	// 3. Losing cycle: labels right of the winner in the losing row
	win, lose := t.rows(side)
	n := len(win)
	w, loser := win[n-1], lose[n-1]
	p := t.position(lose, w)
	cycle := lose[p+1:]
	k := int64(len(cycle))
	s := t.total(cycle)

	// 4. Whole cycles, strictly fewer than |w| / s
	lw := t.lengths[w]
	c, err := lw.FloorDiv(s)
	if err != nil {
		return InductionResult{}, errors.Wrapf(err, "iet: fold %s over %d labels", w, k)
	}
	if s.Scale(c).Cmp(lw) == 0 {
		c.Sub(c, big.NewInt(1))
	}
	folds := new(big.Int).Mul(c, big.NewInt(k))
	if c.Sign() > 0 {
		t.lengths[w] = lw.Sub(s.Scale(c))
	}

	// 5. Remaining partial cycle, one move at a time
	for t.lengths[w].Cmp(t.lengths[lose[n-1]]) > 0 {
		t.elementary(w, lose, p)
		folds.Add(folds, big.NewInt(1))
	}

	return InductionResult{Winner: w, Loser: loser, Side: side, FoldCount: folds}, nil
}

// PendingConnection reports whether the next induction step is a
// connection event, and if so the top label a that it retires and the
// bottom label b that survives.
func (t *IET[L]) PendingConnection() (a, b Label, ok bool) {
	n := len(t.top)
	if n < 2 {
		return 0, 0, false
	}
	if _, wins := t.winningSide(); wins {
		return 0, 0, false
	}

	return t.top[n-1], t.bot[n-1], true
}

func (t *IET[L]) checkInducible() error {
	if len(t.top) < 2 {
		return errors.Wrapf(ErrDegenerateIET, "%d active label(s)", len(t.top))
	}

	return nil
}

// winningSide compares the two rightmost intervals. ok is false on a tie.
func (t *IET[L]) winningSide() (side Side, ok bool) {
	n := len(t.top)
	switch t.lengths[t.top[n-1]].Cmp(t.lengths[t.bot[n-1]]) {
	case 1:
		return Top, true
	case -1:
		return Bottom, true
	default:
		return Top, false
	}
}

// rows returns the winning row and the losing row for side.
func (t *IET[L]) rows(side Side) (win, lose []Label) {
	if side == Top {
		return t.top, t.bot
	}

	return t.bot, t.top
}

// position returns the index of l in row. l is always present.
func (t *IET[L]) position(row []Label, l Label) int {
	for i, x := range row {
		if x == l {
			return i
		}
	}

	panic("iet: label " + l.String() + " missing from row")
}

// elementary subtracts the last label of lose from w and moves that label
// to index p+1, just after w which sits at index p of lose.
func (t *IET[L]) elementary(w Label, lose []Label, p int) {
	n := len(lose)
	x := lose[n-1]
	t.lengths[w] = t.lengths[w].Sub(t.lengths[x])
	copy(lose[p+2:], lose[p+1:n-1])
	lose[p+1] = x
}

// connect handles equal rightmost lengths. The top label a is retired and
// the bottom label b survives, taking a's place in the bottom row. If a and
// b are the same label it simply disappears.
func (t *IET[L]) connect() InductionResult {
	n := len(t.top)
	a, b := t.top[n-1], t.bot[n-1]
	t.top = t.top[:n-1]
	t.bot = t.bot[:n-1]
	if a != b {
		t.bot[t.position(t.bot, a)] = b
	}
	delete(t.lengths, a)

	return InductionResult{Winner: b, Loser: a, Side: Bottom, FoldCount: big.NewInt(1), Connection: true}
}
