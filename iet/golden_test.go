package iet_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intervalxt/iet"
	"github.com/katalvlaran/intervalxt/length"
)

// trace renders x and every state reached by induction, each preceded by
// the step that produced it, until a single label is left.
func trace[L length.Length[L]](t *testing.T, x *iet.IET[L]) []byte {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(x.String())
	for x.Size() > 1 {
		res, err := x.ApplyInductionStep()
		require.NoError(t, err)
		fmt.Fprintf(&sb, "\n# %s\n%s", res, x)
	}
	sb.WriteByte('\n')

	return []byte(sb.String())
}

// TestString_Golden pins the textual rendering along full induction runs.
func TestString_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	cases := []struct {
		name     string
		top, bot []iet.Label
		lengths  []int64
	}{
		{"two_labels", []iet.Label{A, B}, []iet.Label{B, A}, []int64{18, 3}},
		{"four_labels", []iet.Label{A, B, C, D}, []iet.Label{D, C, B, A}, []int64{100, 7, 13, 41}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g.Assert(t, tc.name, trace(t, mustNew(t, tc.top, tc.bot, tc.lengths...)))
		})
	}
}
