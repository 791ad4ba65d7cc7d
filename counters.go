package tokens

// PairCounter tracks per-token and per-adjacent-pair occurrence counts
// during vocabulary search, used by the BPE optimizer's pair counting. It is the dynamic-vocabulary counterpart of a fixed-size
// code-indexed counter: because RemoveToken compacts ids, counts here are
// keyed by token identity (the *Token pointer) rather than by id, so a
// removal never invalidates previously recorded counts for the tokens
// that remain.
type PairCounter struct {
	single map[*Token]int64
	pair   map[pairKey]int64
}

type pairKey struct{ a, b *Token }

// NewPairCounter returns an empty counter.
func NewPairCounter() *PairCounter {
	return &PairCounter{single: make(map[*Token]int64), pair: make(map[pairKey]int64)}
}

// IncSingle records one occurrence of t.
func (c *PairCounter) IncSingle(t *Token) { c.single[t]++ }

// IncPair records one occurrence of the adjacent pair (a, b).
func (c *PairCounter) IncPair(a, b *Token) { c.pair[pairKey{a, b}]++ }

// IncPairBy records weight occurrences of the adjacent pair (a, b).
func (c *PairCounter) IncPairBy(a, b *Token, weight int64) { c.pair[pairKey{a, b}] += weight }

// Single returns the occurrence count for t.
func (c *PairCounter) Single(t *Token) int64 { return c.single[t] }

// Pair returns the occurrence count for the adjacent pair (a, b).
func (c *PairCounter) Pair(a, b *Token) int64 { return c.pair[pairKey{a, b}] }

// EachSingle calls fn once per token with a nonzero count.
func (c *PairCounter) EachSingle(fn func(t *Token, count int64)) {
	for t, n := range c.single {
		fn(t, n)
	}
}

// EachPair calls fn once per adjacent pair with a nonzero count.
func (c *PairCounter) EachPair(fn func(a, b *Token, count int64)) {
	for k, n := range c.pair {
		fn(k.a, k.b, n)
	}
}
