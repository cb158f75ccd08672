package iet

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/intervalxt/length"
)

// IET is an interval exchange transformation: a top and a bottom ordering
// of the same labels, and a positive length for every label.
//
// The zero value is not usable; build one with New or FromLengths. An IET is
// not safe for concurrent mutation.
type IET[L length.Length[L]] struct {
	top     []Label
	bot     []Label
	lengths map[Label]L
}

// New validates and builds an IET from an explicit permutation pair and
// length table. The slices and map are copied.
//
// It fails with ErrInvalidIET if top and bot are empty, contain a label
// twice, do not contain the same labels, or if lengths does not assign a
// non-zero length to exactly those labels. It also fails with ErrInvalidIET
// when the lengths cannot be added together: a machine integer total out of
// range, or quadratic lengths from different fields.
func New[L length.Length[L]](top, bot []Label, lengths map[Label]L) (*IET[L], error) {
	// 1. Shape
	if len(top) == 0 {
		return nil, errors.Wrap(ErrInvalidIET, "no labels")
	}
	if len(top) != len(bot) {
		return nil, errors.Wrapf(ErrInvalidIET, "top has %d labels, bot has %d", len(top), len(bot))
	}

	// 2. Both rows cover the same label set, without repetition
	inTop := make(map[Label]bool, len(top))
	for _, l := range top {
		if inTop[l] {
			return nil, errors.Wrapf(ErrInvalidIET, "label %s repeated in top", l)
		}
		inTop[l] = true
	}
	inBot := make(map[Label]bool, len(bot))
	for _, l := range bot {
		if inBot[l] {
			return nil, errors.Wrapf(ErrInvalidIET, "label %s repeated in bot", l)
		}
		if !inTop[l] {
			return nil, errors.Wrapf(ErrInvalidIET, "label %s in bot but not in top", l)
		}
		inBot[l] = true
	}

	// 3. Lengths: one positive entry per label, nothing else
	if len(lengths) != len(top) {
		return nil, errors.Wrapf(ErrInvalidIET, "%d lengths for %d labels", len(lengths), len(top))
	}
	tbl := make(map[Label]L, len(lengths))
	for _, l := range top {
		v, ok := lengths[l]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidIET, "no length for label %s", l)
		}
		if v.IsZero() {
			return nil, errors.Wrapf(ErrInvalidIET, "label %s has zero length", l)
		}
		tbl[l] = v
	}

	t := &IET[L]{
		top:     append([]Label(nil), top...),
		bot:     append([]Label(nil), bot...),
		lengths: tbl,
	}

	// 4. The total is representable; every later sum is bounded by it
	if err := t.checkTotal(); err != nil {
		return nil, err
	}

	return t, nil
}

// checkTotal computes TopTotal and turns the backend panics for overflow
// and field mismatch into ErrInvalidIET. Other panics propagate.
func (t *IET[L]) checkTotal() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause, ok := r.(error)
		if !ok || !(errors.Is(cause, length.ErrOverflow) || errors.Is(cause, length.ErrFieldMismatch)) {
			panic(r)
		}
		err = errors.Wrapf(ErrInvalidIET, "lengths cannot be summed: %v", cause)
	}()
	t.TopTotal()

	return nil
}

// FromLengths builds the IET on len(lengths) labels A, B, C, ... with
// lengths taken left to right, top in label order and bottom reversed.
func FromLengths[L length.Length[L]](lengths ...L) (*IET[L], error) {
	n := len(lengths)
	top := make([]Label, n)
	bot := make([]Label, n)
	tbl := make(map[Label]L, n)
	for i := 0; i < n; i++ {
		top[i] = Label(i)
		bot[n-1-i] = Label(i)
		tbl[Label(i)] = lengths[i]
	}

	return New(top, bot, tbl)
}

// Size returns the number of active labels.
func (t *IET[L]) Size() int { return len(t.top) }

// TopPermutation returns a copy of the top ordering.
func (t *IET[L]) TopPermutation() []Label { return append([]Label(nil), t.top...) }

// BotPermutation returns a copy of the bottom ordering.
func (t *IET[L]) BotPermutation() []Label { return append([]Label(nil), t.bot...) }

// LengthOf returns the length of label l and whether l is active.
func (t *IET[L]) LengthOf(l Label) (L, bool) {
	v, ok := t.lengths[l]

	return v, ok
}

// Lengths returns the lengths in top order.
func (t *IET[L]) Lengths() []L {
	out := make([]L, len(t.top))
	for i, l := range t.top {
		out[i] = t.lengths[l]
	}

	return out
}

// Labels returns the active labels in increasing order.
func (t *IET[L]) Labels() []Label {
	out := append([]Label(nil), t.top...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Has reports whether l is an active label.
func (t *IET[L]) Has(l Label) bool {
	_, ok := t.lengths[l]

	return ok
}

// TopTotal returns the sum of lengths taken in top order.
func (t *IET[L]) TopTotal() L { return t.total(t.top) }

// BotTotal returns the sum of lengths taken in bottom order.
func (t *IET[L]) BotTotal() L { return t.total(t.bot) }

func (t *IET[L]) total(row []Label) L {
	sum := t.lengths[row[0]]
	for _, l := range row[1:] {
		sum = sum.Add(t.lengths[l])
	}

	return sum
}

// Clone returns an independent copy of t. Lengths are immutable values and
// are shared.
func (t *IET[L]) Clone() *IET[L] {
	tbl := make(map[Label]L, len(t.lengths))
	for l, v := range t.lengths {
		tbl[l] = v
	}

	return &IET[L]{
		top:     append([]Label(nil), t.top...),
		bot:     append([]Label(nil), t.bot...),
		lengths: tbl,
	}
}

// ReducingPrefix returns the size k of the shortest non-trivial, non-full
// prefix whose labels are the same set in both rows, or 0 if t is
// irreducible. Time O(n).
func (t *IET[L]) ReducingPrefix() int {
	n := len(t.top)
	seenTop := make(map[Label]bool, n)
	seenBot := make(map[Label]bool, n)
	matched := 0
	for i := 0; i < n-1; i++ {
		seenTop[t.top[i]] = true
		if seenBot[t.top[i]] {
			matched++
		}
		seenBot[t.bot[i]] = true
		if seenTop[t.bot[i]] {
			matched++
		}
		if matched == i+1 {
			return i + 1
		}
	}

	return 0
}

// IsReducible reports whether some proper prefix of top is, as a set, also
// a prefix of bot.
func (t *IET[L]) IsReducible() bool { return t.ReducingPrefix() > 0 }

// Split cuts t after the common prefix of size k into two independent
// IETs. It fails with ErrBadPrefix unless 0 < k < Size() and the first k
// labels of both rows form the same set.
func (t *IET[L]) Split(k int) (*IET[L], *IET[L], error) {
	n := len(t.top)
	if k <= 0 || k >= n {
		return nil, nil, errors.Wrapf(ErrBadPrefix, "k=%d for %d labels", k, n)
	}
	head := make(map[Label]bool, k)
	for _, l := range t.top[:k] {
		head[l] = true
	}
	for _, l := range t.bot[:k] {
		if !head[l] {
			return nil, nil, errors.Wrapf(ErrBadPrefix, "k=%d: %s in bot prefix only", k, l)
		}
	}

	left := t.sub(t.top[:k], t.bot[:k])
	right := t.sub(t.top[k:], t.bot[k:])

	return left, right, nil
}

func (t *IET[L]) sub(top, bot []Label) *IET[L] {
	tbl := make(map[Label]L, len(top))
	for _, l := range top {
		tbl[l] = t.lengths[l]
	}

	return &IET[L]{
		top:     append([]Label(nil), top...),
		bot:     append([]Label(nil), bot...),
		lengths: tbl,
	}
}

// String renders t on three lines:
//
//	top: A B C
//	bot: C B A
//	len: A=1 B=2 C=3
//
// Lengths are listed in top order. The rendering depends only on the state
// of t, so equal states render equally.
func (t *IET[L]) String() string {
	var sb strings.Builder
	sb.WriteString("top:")
	writeRow(&sb, t.top)
	sb.WriteString("\nbot:")
	writeRow(&sb, t.bot)
	sb.WriteString("\nlen:")
	for _, l := range t.top {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
		sb.WriteByte('=')
		sb.WriteString(t.lengths[l].String())
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []Label) {
	for _, l := range row {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
}
