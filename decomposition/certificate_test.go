package decomposition

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/length"
)

func rats(vs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vs))
	for i, v := range vs {
		out[i] = big.NewRat(v, 1)
	}

	return out
}

func TestRank(t *testing.T) {
	assert.Equal(t, 2, rank([][]*big.Rat{rats(1, 0), rats(0, 1)}, 2))
	assert.Equal(t, 1, rank([][]*big.Rat{rats(2, 4), rats(1, 2)}, 2))
	assert.Equal(t, 2, rank([][]*big.Rat{rats(0, 3), rats(5)}, 2), "short rows are padded")
	assert.Equal(t, 2, rank([][]*big.Rat{rats(1, 1, 0), rats(0, 1, 1), rats(1, 2, 1)}, 3))
	assert.Equal(t, 0, rank([][]*big.Rat{rats(0, 0)}, 2))

	// input rows are not modified
	rows := [][]*big.Rat{rats(2, 4), rats(1, 2)}
	rank(rows, 2)
	assert.Equal(t, "4", rows[0][1].RatString())
}

func TestRepeatDetector(t *testing.T) {
	r := newRepeatDetector()
	assert.False(t, r.observe("a"))
	assert.False(t, r.observe("b"))
	assert.True(t, r.observe("a"))
	assert.Equal(t, 2, r.size)

	r.reset()
	assert.Equal(t, 0, r.size)
	assert.False(t, r.observe("a"))
}

func TestFingerprint_ScaleInvariant(t *testing.T) {
	build := func(vs ...int64) *iet.IET[length.Int[int64]] {
		ls, err := length.Ints(vs...)
		require.NoError(t, err)
		x, err := iet.FromLengths(ls...)
		require.NoError(t, err)

		return x
	}
	k1, err := fingerprint(build(2, 3, 5))
	require.NoError(t, err)
	k2, err := fingerprint(build(6, 9, 15))
	require.NoError(t, err)
	k3, err := fingerprint(build(2, 3, 6))
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Equal(t, "A,B,C|C,B,A|A=1|B=3/2|C=5/2", k1)
}

func TestCertifyKeane(t *testing.T) {
	f, err := length.NewQuadraticField(2)
	require.NoError(t, err)

	// 1 and √2 are independent over Q
	x, err := iet.FromLengths(f.MustInts(1, 0), f.MustInts(0, 1))
	require.NoError(t, err)
	assert.True(t, certifyKeane(x))

	// three lengths in a two dimensional field are always dependent
	y, err := iet.FromLengths(f.MustInts(1, 0), f.MustInts(0, 1), f.MustInts(1, 1))
	require.NoError(t, err)
	assert.False(t, certifyKeane(y))

	// reducible IETs are never certified
	z, err := iet.New(
		[]iet.Label{0, 1},
		[]iet.Label{0, 1},
		map[iet.Label]length.Quadratic{0: f.MustInts(1, 0), 1: f.MustInts(0, 1)})
	require.NoError(t, err)
	assert.False(t, certifyKeane(z))

	// rational lengths have a single coordinate
	ls, err := length.Ints[int64](2, 3)
	require.NoError(t, err)
	w, err := iet.FromLengths(ls...)
	require.NoError(t, err)
	assert.False(t, certifyKeane(w))
}
