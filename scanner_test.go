package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScannerMatchesLongestSuffixAtEachPosition(t *testing.T) {
	ts := tokenSetWithHex("a", "ab", "abc")
	ts.ComputeSuffixTokens()
	s := NewScanner(ts)

	got := s.Scan([]byte("abc"))
	require.Len(t, got, 3)
	require.Equal(t, "a", string(got[0].Bytes()))
	require.Equal(t, "ab", string(got[1].Bytes()))
	require.Equal(t, "abc", string(got[2].Bytes()))
}

func TestScannerFallsBackToLiteral(t *testing.T) {
	ts := tokenSetWithHex("xy")
	ts.ComputeSuffixTokens()
	s := NewScanner(ts)

	got := s.Scan([]byte("zxy"))
	require.True(t, got[0].IsLiteral())
	require.Equal(t, byte('z'), got[0].Bytes()[0])
	require.Equal(t, "xy", string(got[2].Bytes()))
}

func TestScannerFuncStopsEarly(t *testing.T) {
	ts := tokenSetWithHex("ab")
	ts.ComputeSuffixTokens()
	s := NewScanner(ts)

	var visited int
	s.ScanFunc([]byte("abab"), func(pos int, tok *Token) bool {
		visited++
		return pos < 1
	})
	require.Equal(t, 2, visited)
}
