package decomposition

import (
	"bytes"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/length"
	"github.com/katalvlaran/intervalxt/separatrix"
)

// sharedRat is a rational backend whose Coefficients hands out its own
// value instead of a copy, and which does not implement Proportional.
type sharedRat struct{ v *big.Rat }

func newShared(v int64) sharedRat { return sharedRat{v: big.NewRat(v, 1)} }

func (x sharedRat) Cmp(o sharedRat) int { return x.v.Cmp(o.v) }
func (x sharedRat) IsZero() bool        { return x.v.Sign() == 0 }
func (x sharedRat) Add(o sharedRat) sharedRat {
	return sharedRat{v: new(big.Rat).Add(x.v, o.v)}
}
func (x sharedRat) Sub(o sharedRat) sharedRat {
	return sharedRat{v: new(big.Rat).Sub(x.v, o.v)}
}
func (x sharedRat) Scale(k *big.Int) sharedRat {
	return sharedRat{v: new(big.Rat).Mul(x.v, new(big.Rat).SetInt(k))}
}
func (x sharedRat) FloorDiv(o sharedRat) (*big.Int, error) {
	if o.IsZero() {
		return nil, length.ErrDivisionByZero
	}
	q := new(big.Rat).Quo(x.v, o.v)

	return new(big.Int).Quo(q.Num(), q.Denom()), nil
}
func (x sharedRat) Coefficients() []*big.Rat { return []*big.Rat{x.v} }
func (x sharedRat) String() string           { return x.v.RatString() }

func TestFingerprint_KeepsBackendValues(t *testing.T) {
	x, err := iet.FromLengths(newShared(2), newShared(3), newShared(5))
	require.NoError(t, err)

	key, err := fingerprint(x)
	require.NoError(t, err)
	assert.Equal(t, "A,B,C|C,B,A|A=1|B=3/2|C=5/2", key)

	again, err := fingerprint(x)
	require.NoError(t, err)
	assert.Equal(t, key, again)
	v, ok := x.LengthOf(iet.Label(0))
	require.True(t, ok)
	assert.Equal(t, "2", v.String())
}

// TestStep_ConnectionCheckedFirst makes the graph unable to record the coming
// connection and checks that the step fails before the IET changes.
func TestStep_ConnectionCheckedFirst(t *testing.T) {
	ls, err := length.Ints[int64](3, 3)
	require.NoError(t, err)
	x, err := iet.FromLengths(ls...)
	require.NoError(t, err)
	d, err := New(x)
	require.NoError(t, err)

	c := d.nodes[RootID]
	a, b, ok := c.iet.PendingConnection()
	require.True(t, ok)
	assert.Equal(t, iet.Label(1), a)
	assert.Equal(t, iet.Label(0), b)

	// the graph has lost the bottom label
	c.graph, err = separatrix.NewGraph(a)
	require.NoError(t, err)
	_, err = d.step(c)
	require.ErrorIs(t, err, separatrix.ErrUnknownSeparatrix)
	assert.Equal(t, 2, c.iet.Size())
	assert.Equal(t, 0, c.steps)
	assert.Empty(t, c.history)
	assert.Empty(t, c.graph.Connections())

	// the connection is already recorded
	c.graph, err = separatrix.NewGraph(b, a)
	require.NoError(t, err)
	src, dst := connectionEnds(a, b)
	require.NoError(t, c.graph.Connect(src, dst, 1))
	_, err = d.step(c)
	require.ErrorIs(t, err, separatrix.ErrDuplicateConnection)
	assert.Equal(t, 2, c.iet.Size())
	assert.Empty(t, c.history)
}

func TestNew_LoggerBuiltOnce(t *testing.T) {
	ls, err := length.Ints[int64](18, 3)
	require.NoError(t, err)
	x, err := iet.FromLengths(ls...)
	require.NoError(t, err)

	d, err := New(x)
	require.NoError(t, err)
	require.NotNil(t, d.log)
	silent := d.log
	require.NoError(t, d.Run(10))
	assert.Same(t, silent, d.log)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d, err = New(x, WithLogger(l))
	require.NoError(t, err)
	assert.Same(t, l, d.log)
	require.NoError(t, d.Run(10))
	assert.Contains(t, buf.String(), "decomposition: step")
}
