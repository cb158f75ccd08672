package decomposition

import (
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/length"
)

// certifyKeane reports whether t is irreducible, has at least two labels and
// lengths that are linearly independent over Q, judged on their coefficient
// vectors. Keane's theorem then guarantees that induction never produces a
// connection. Rational backends have one coordinate, so they never certify
// more than one label and the check always fails for them.
func certifyKeane[L length.Length[L]](t *iet.IET[L]) bool {
	n := t.Size()
	if n < 2 || t.IsReducible() {
		return false
	}
	rows := make([][]*big.Rat, n)
	width := 0
	for i, v := range t.Lengths() {
		rows[i] = v.Coefficients()
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	if width < n {
		return false
	}

	return rank(rows, width) == n
}

// rank computes the rank over Q of rows, padding short rows with zeros.
// Gaussian elimination on copies, exact in big.Rat. Time O(n²·w).
func rank(rows [][]*big.Rat, width int) int {
	// 1. Copy into a dense matrix
	m := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		m[i] = make([]*big.Rat, width)
		for j := 0; j < width; j++ {
			if j < len(row) {
				m[i][j] = new(big.Rat).Set(row[j])
			} else {
				m[i][j] = new(big.Rat)
			}
		}
	}

	// 2. Eliminate column by column
	r := 0
	for col := 0; col < width && r < len(m); col++ {
		pivot := -1
		for i := r; i < len(m); i++ {
			if m[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m[r], m[pivot] = m[pivot], m[r]
		for i := r + 1; i < len(m); i++ {
			if m[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(m[i][col], m[r][col])
			for j := col; j < width; j++ {
				m[i][j].Sub(m[i][j], new(big.Rat).Mul(f, m[r][j]))
			}
		}
		r++
	}

	return r
}

// repeatDetector remembers the configurations a component went through.
// Keys are bucketed by their xxhash and compared in full, so a hash
// collision never produces a false repeat.
type repeatDetector struct {
	buckets map[uint64][]string
	size    int
}

func newRepeatDetector() *repeatDetector {
	return &repeatDetector{buckets: make(map[uint64][]string)}
}

// observe records key and reports whether it had been seen before.
func (r *repeatDetector) observe(key string) bool {
	h := xxhash.Sum64String(key)
	for _, k := range r.buckets[h] {
		if k == key {
			return true
		}
	}
	r.buckets[h] = append(r.buckets[h], key)
	r.size++

	return false
}

// reset forgets every configuration. Called when the label set changes,
// since configurations of different sizes never match.
func (r *repeatDetector) reset() {
	r.buckets = make(map[uint64][]string)
	r.size = 0
}

// fingerprint encodes t up to a positive scalar: both permutations and, for
// every label in increasing order, its length divided by the length of the
// smallest label. Backends that cannot divide (no length.Proportional) fall
// back to coefficient vectors normalized by their first non-zero entry,
// which identifies configurations up to a rational scalar only.
//
// Two IETs with equal fingerprints induce identical step sequences, because
// every comparison and floor division is invariant under scaling.
func fingerprint[L length.Length[L]](t *iet.IET[L]) (string, error) {
	var sb strings.Builder
	writeLabels(&sb, t.TopPermutation())
	sb.WriteByte('|')
	writeLabels(&sb, t.BotPermutation())

	labels := t.Labels()
	ref, _ := t.LengthOf(labels[0])
	coords := make([][]*big.Rat, len(labels))
	if _, ok := any(ref).(length.Proportional[L]); ok {
		for i, l := range labels {
			v, _ := t.LengthOf(l)
			q, err := any(v).(length.Proportional[L]).Ratio(ref)
			if err != nil {
				return "", err
			}
			coords[i] = q
		}
	} else {
		var lead *big.Rat
		for i, l := range labels {
			v, _ := t.LengthOf(l)
			for _, c := range v.Coefficients() {
				coords[i] = append(coords[i], new(big.Rat).Set(c))
			}
			for _, c := range coords[i] {
				if lead == nil && c.Sign() != 0 {
					lead = new(big.Rat).Set(c)
				}
			}
		}
		for _, row := range coords {
			for _, c := range row {
				c.Quo(c, lead)
			}
		}
	}

	for i, l := range labels {
		sb.WriteByte('|')
		sb.WriteString(l.String())
		sb.WriteByte('=')
		for j, c := range coords[i] {
			if j > 0 {
				sb.WriteByte(';')
			}
			sb.WriteString(c.RatString())
		}
	}

	return sb.String(), nil
}

func writeLabels(sb *strings.Builder, row []iet.Label) {
	for i, l := range row {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(l.String())
	}
}
