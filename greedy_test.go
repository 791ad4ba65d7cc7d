package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreedyTokenizeSingleMerge(t *testing.T) {
	ts := tokenSetWithHex("a", "b", "ab")
	tok, err := NewGreedyTokenizer(ts)
	require.NoError(t, err)
	require.Equal(t, []string{"ab"}, tokenStrings(tok.Tokenize([]byte("ab"))))
}

func TestGreedyTokenizeRepeatedWithFallback(t *testing.T) {
	ts := tokenSetWithHex("a", "b", "ab")
	tok, err := NewGreedyTokenizer(ts)
	require.NoError(t, err)
	got := tokenStrings(tok.Tokenize([]byte("ab ab ab")))
	want := []string{"ab", "\x10", "2", "0", "ab", "\x10", "2", "0", "ab"}
	require.Equal(t, want, got)
}

// Greedy picks "xy" first because it is the longest prefix match, leaving
// "z" with no vocabulary token and falling back to hex. Optimal instead
// picks "x" + "yz", two tokens against greedy's four.
func TestGreedyTokenizePicksLongestPrefixEvenWhenWorse(t *testing.T) {
	ts := tokenSetWithHex("x", "xy", "yz")
	tok, err := NewGreedyTokenizer(ts)
	require.NoError(t, err)
	got := tokenStrings(tok.Tokenize([]byte("xyz")))
	want := []string{"xy", "\x10", "7", "a"}
	require.Equal(t, want, got)
}

func TestGreedyTokenizePicksLongestPrefixRepeated(t *testing.T) {
	ts := tokenSetWithHex("x", "xy", "yz")
	tok, err := NewGreedyTokenizer(ts)
	require.NoError(t, err)
	got := tokenStrings(tok.Tokenize([]byte("xyz xyz xyz")))
	want := []string{
		"xy", "\x10", "7", "a", "\x10", "2", "0",
		"xy", "\x10", "7", "a", "\x10", "2", "0",
		"xy", "\x10", "7", "a",
	}
	require.Equal(t, want, got)
}

func TestGreedyTokenizeEmptyInput(t *testing.T) {
	ts := tokenSetWithHex("ab")
	tok, err := NewGreedyTokenizer(ts)
	require.NoError(t, err)
	require.Nil(t, tok.Tokenize(nil))
}

func TestGreedyTokenizeRoundTrips(t *testing.T) {
	ts := tokenSetWithHex("the", "qui", "ck", "brown", "fox", " ")
	tok, err := NewGreedyTokenizer(ts)
	require.NoError(t, err)
	data := []byte("the quick brown fox jumps over the lazy dog")
	seq := tok.Tokenize(data)
	require.Equal(t, data, Decode(seq))
}

func TestNewGreedyTokenizerRequiresFallback(t *testing.T) {
	ts := NewTokenSet()
	ts.AddString([]byte("ab"))
	_, err := NewGreedyTokenizer(ts)
	require.ErrorIs(t, err, ErrNoFallback)
}
