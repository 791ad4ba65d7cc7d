package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReservedFilterReplacesReservedRange(t *testing.T) {
	in := []rune{'a', rune(0x11), 'b', rune(0x17)}
	out := ReservedFilter{}.Apply(in)
	require.Equal(t, []rune{'a', RuneUnknown, 'b', RuneUnknown}, out)
}

func TestReservedFilterIsIdempotent(t *testing.T) {
	in := []rune{'a', rune(0x12)}
	once := ReservedFilter{}.Apply(in)
	twice := ReservedFilter{}.Apply(once)
	require.Equal(t, once, twice)
}

func TestCapsFilterCapitalized(t *testing.T) {
	out := CapsFilter{}.Apply([]rune("Hello world"))
	require.Equal(t, string(RuneCapitalize)+"hello world", string(out))
}

func TestCapsFilterAllCaps(t *testing.T) {
	out := CapsFilter{}.Apply([]rune("HELLO"))
	require.Equal(t, string(RuneAllCaps)+"hello", string(out))
}

func TestCapsFilterLeavesMixedCaseAlone(t *testing.T) {
	out := CapsFilter{}.Apply([]rune("hELLo"))
	require.Equal(t, "hELLo", string(out))
}

func TestCapsFilterLeavesLowercaseAlone(t *testing.T) {
	out := CapsFilter{}.Apply([]rune("hello"))
	require.Equal(t, "hello", string(out))
}

func TestWordsFilterMarksEndOfWordAndElidesSpace(t *testing.T) {
	out := WordsFilter{}.Apply([]rune("foo bar"))
	want := []rune{'f', 'o', 'o', RuneEndOfWord, 'b', 'a', 'r', RuneEndOfWord}
	require.Equal(t, want, out)
}

func TestWordsFilterKeepsSpaceBeforeNonWord(t *testing.T) {
	out := WordsFilter{}.Apply([]rune("foo !"))
	want := []rune{'f', 'o', 'o', RuneEndOfWord, ' ', '!'}
	require.Equal(t, want, out)
}

func TestFilterChainAppliesInOrder(t *testing.T) {
	chain := NewFilterChain(ReservedFilter{}, CapsFilter{}, WordsFilter{})
	require.Equal(t, []string{"reserved", "caps", "words"}, chain.Names())

	out := chain.Apply([]byte("Hello world"))
	want := string(RuneCapitalize) + "hello" + string(RuneEndOfWord) + "world" + string(RuneEndOfWord)
	require.Equal(t, want, string(out))
}

func TestFilterChainEmptyPassesThrough(t *testing.T) {
	chain := NewFilterChain()
	data := []byte("unchanged")
	require.Equal(t, data, chain.Apply(data))
}

func TestFilterChainSkipsInvalidUTF8(t *testing.T) {
	chain := NewFilterChain(CapsFilter{})
	data := []byte{0xff, 0xfe, 0x00}
	require.Equal(t, data, chain.Apply(data))
}
