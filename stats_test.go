package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenStatsCountAndAggregates(t *testing.T) {
	ts := tokenSetWithHex("ab", "cd")
	ab, _ := ts.Lookup([]byte("ab"))
	cd, _ := ts.Lookup([]byte("cd"))

	stats := NewTokenStats(ts)
	for i := 0; i < 4; i++ {
		stats.CountByte()
	}
	stats.CountToken(ab)
	stats.CountToken(ab)
	stats.CountToken(cd)

	require.Equal(t, int64(4), stats.InputSize())
	require.Equal(t, int64(3), stats.TotalTokens())
	require.Equal(t, 2, stats.UsedTokens())
	require.Equal(t, int64(2), stats.Count(ab.ID()))
	require.InDelta(t, 4.0/3.0, stats.BytesPerToken(), 1e-9)
	require.Greater(t, stats.BitsPerByte(), 0.0)
}

func TestTokenStatsEmptyAggregatesAreZero(t *testing.T) {
	ts := tokenSetWithHex("ab")
	stats := NewTokenStats(ts)
	require.Equal(t, 0.0, stats.BytesPerToken())
	require.Equal(t, 0.0, stats.BitsPerByte())
	require.Equal(t, int64(0), stats.Count(999))
}

func TestTokenStatsSnapshotSurvivesRemoval(t *testing.T) {
	ts := tokenSetWithHex("ab", "cd", "ef")
	ab, _ := ts.Lookup([]byte("ab"))
	cd, _ := ts.Lookup([]byte("cd"))
	ef, _ := ts.Lookup([]byte("ef"))

	stats := NewTokenStats(ts)
	stats.CountToken(ab)
	stats.CountToken(cd)
	stats.CountToken(cd)
	stats.CountToken(ef)
	stats.inputSize = 6

	snap := stats.Snapshot()
	require.Equal(t, int64(1), snap[ab])
	require.Equal(t, int64(2), snap[cd])

	require.NoError(t, ts.RemoveToken(ab))

	rebuilt := RebuildFromSnapshot(ts, stats.InputSize(), snap)
	require.Equal(t, int64(2), rebuilt.Count(cd.ID()))
	require.Equal(t, int64(1), rebuilt.Count(ef.ID()))
	require.Equal(t, int64(6), rebuilt.InputSize())
	require.Equal(t, int64(3), rebuilt.TotalTokens())
}
