package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralCostHexVsBits(t *testing.T) {
	require.Equal(t, 3, literalCost(BuildHexTokenSet()))
	require.Equal(t, 8, literalCost(BuildBitsTokenSet()))
}

func TestFallbackTokensHexEncodesNibbles(t *testing.T) {
	ts := BuildHexTokenSet()
	out := fallbackTokens(ts, 0x7a, nil)
	require.Len(t, out, 3)
	require.Equal(t, "\x10", string(out[0].Bytes()))
	require.Equal(t, "7", string(out[1].Bytes()))
	require.Equal(t, "a", string(out[2].Bytes()))
}

func TestFallbackTokensBitsEncodesEachBitHighFirst(t *testing.T) {
	ts := BuildBitsTokenSet()
	out := fallbackTokens(ts, 0b10100000, nil)
	require.Len(t, out, 8)
	want := []string{"\x12", "\x11", "\x12", "\x11", "\x11", "\x11", "\x11", "\x11"}
	for i, tok := range out {
		require.Equal(t, want[i], string(tok.Bytes()), "bit %d", i)
	}
}

func TestFallbackTokensAppendsToExistingSlice(t *testing.T) {
	ts := BuildHexTokenSet()
	prefix := []*Token{ts.AddString([]byte("x"))}
	out := fallbackTokens(ts, 0x00, prefix)
	require.Len(t, out, 4)
	require.Equal(t, "x", string(out[0].Bytes()))
	require.Equal(t, "0", string(out[2].Bytes()))
	require.Equal(t, "0", string(out[3].Bytes()))
}
