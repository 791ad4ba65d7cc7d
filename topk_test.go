package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopKRetainsHighestGains(t *testing.T) {
	tk := NewTopK[string](3, func(a, b string) bool { return a > b })
	tk.Offer("a", 5)
	tk.Offer("b", 1)
	tk.Offer("c", 9)
	tk.Offer("d", 3)
	tk.Offer("e", 7)

	got := tk.Items()
	require.Len(t, got, 3)
	require.ElementsMatch(t, []string{"c", "e", "a"}, got)
	require.Equal(t, "c", got[0])
}

func TestTopKBreaksTiesWithTiebreak(t *testing.T) {
	tk := NewTopK[string](1, func(a, b string) bool { return a > b })
	tk.Offer("a", 5)
	tk.Offer("z", 5)
	got := tk.Items()
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0])
}

func TestTopKZeroCapacityKeepsNothing(t *testing.T) {
	tk := NewTopK[string](0, nil)
	tk.Offer("a", 100)
	require.Empty(t, tk.Items())
}

func TestTopKFewerOffersThanCapacity(t *testing.T) {
	tk := NewTopK[int](5, nil)
	tk.Offer(1, 10)
	tk.Offer(2, 20)
	got := tk.Items()
	require.ElementsMatch(t, []int{1, 2}, got)
}
