package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesTokenizerEmitsOneTokenPerCoveredByte(t *testing.T) {
	ts := BuildHexTokenSet()
	ts.AddByte('a', false)
	ts.AddByte('b', false)

	tok, err := NewBytesTokenizer(ts)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, tokenStrings(tok.Tokenize([]byte("ab"))))
}

func TestBytesTokenizerFallsBackForUncoveredByte(t *testing.T) {
	ts := BuildHexTokenSet()
	ts.AddByte('a', false)

	tok, err := NewBytesTokenizer(ts)
	require.NoError(t, err)
	got := tokenStrings(tok.Tokenize([]byte("az")))
	require.Equal(t, []string{"a", "\x10", "7", "a"}, got)
}

func TestBytesTokenizerNeverMatchesMultiByteTokens(t *testing.T) {
	ts := tokenSetWithHex("ab")
	tok, err := NewBytesTokenizer(ts)
	require.NoError(t, err)
	got := tokenStrings(tok.Tokenize([]byte("ab")))
	require.NotEqual(t, []string{"ab"}, got)
	require.Equal(t, []string{"\x10", "6", "1", "\x10", "6", "2"}, got)
}

func TestNewBytesTokenizerRequiresFallback(t *testing.T) {
	ts := NewTokenSet()
	_, err := NewBytesTokenizer(ts)
	require.ErrorIs(t, err, ErrNoFallback)
}
