package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairCounterTracksSingleAndPairCounts(t *testing.T) {
	ts := tokenSetWithHex("a", "b", "c")
	a, _ := ts.Lookup([]byte("a"))
	b, _ := ts.Lookup([]byte("b"))
	c, _ := ts.Lookup([]byte("c"))

	pc := NewPairCounter()
	pc.IncSingle(a)
	pc.IncSingle(a)
	pc.IncPair(a, b)
	pc.IncPairBy(b, c, 5)

	require.Equal(t, int64(2), pc.Single(a))
	require.Equal(t, int64(0), pc.Single(b))
	require.Equal(t, int64(1), pc.Pair(a, b))
	require.Equal(t, int64(5), pc.Pair(b, c))
	require.Equal(t, int64(0), pc.Pair(c, a))
}

func TestPairCounterEachIteratesAllRecorded(t *testing.T) {
	ts := tokenSetWithHex("a", "b")
	a, _ := ts.Lookup([]byte("a"))
	b, _ := ts.Lookup([]byte("b"))

	pc := NewPairCounter()
	pc.IncSingle(a)
	pc.IncPair(a, b)
	pc.IncPair(a, b)

	var singleSeen int
	pc.EachSingle(func(t *Token, count int64) {
		singleSeen++
		require.Equal(t, a, t)
		require.Equal(t, int64(1), count)
	})
	require.Equal(t, 1, singleSeen)

	var pairSeen int
	pc.EachPair(func(x, y *Token, count int64) {
		pairSeen++
		require.Equal(t, a, x)
		require.Equal(t, b, y)
		require.Equal(t, int64(2), count)
	})
	require.Equal(t, 1, pairSeen)
}
