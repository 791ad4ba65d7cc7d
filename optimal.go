package tokens

// OptimalTokenizer emits the minimum-total-cost token sequence for a byte
// stream, where cost is 1 per vocabulary token and literalCost per literal
// fallback byte. It owns a Scanner built over a frozen TokenSet;
// mutating that TokenSet afterward invalidates the tokenizer.
type OptimalTokenizer struct {
	ts      *TokenSet
	scanner *Scanner
	litCost int
}

// NewOptimalTokenizer freezes ts (computing suffix tokens if not already
// done) and builds an optimal tokenizer over it. Returns ErrNoFallback if
// ts has neither a bits nor a hex fallback.
func NewOptimalTokenizer(ts *TokenSet) (*OptimalTokenizer, error) {
	if !ts.HasBits() && !ts.HasHex() {
		return nil, ErrNoFallback
	}
	ts.ComputeSuffixTokens()
	return &OptimalTokenizer{
		ts:      ts,
		scanner: NewScanner(ts),
		litCost: literalCost(ts),
	}, nil
}

// dp runs the sliding dynamic program over data and returns, for every
// prefix length i, the minimum cost dp[i] and the token chosen to cover
// the final span ending at i. This is the batch form of a bounded sliding
// window: it computes the same dp[] values and the same first/last-token
// decisions, just without bounding working memory to a fixed window
// width, which is unnecessary for a []byte-sized input already held in
// memory (see DESIGN.md).
func (o *OptimalTokenizer) dp(data []byte) (dp []int64, chosen []*Token) {
	n := len(data)
	dp = make([]int64, n+1)
	chosen = make([]*Token, n+1)
	if n == 0 {
		return dp, chosen
	}

	matches := o.scanner.Scan(data)
	for i := 1; i <= n; i++ {
		var best int64 = -1
		var bestTok *Token
		for cur := matches[i-1]; ; {
			length := cur.Len()
			if length <= i {
				cost := dp[i-length] + int64(o.tokenCost(cur))
				if best < 0 || cost < best {
					best = cost
					bestTok = cur
				}
			}
			// Literals and single-byte tokens carry no suffix link, so
			// either one ends the chain.
			if cur.IsLiteral() || cur.SuffixToken() == nil {
				break
			}
			cur = cur.SuffixToken()
		}
		dp[i] = best
		chosen[i] = bestTok
	}
	return dp, chosen
}

func (o *OptimalTokenizer) tokenCost(t *Token) int {
	if t.IsLiteral() {
		return o.litCost
	}
	return 1
}

// Cost returns the minimum total token cost of encoding data, equal to
// dp[len(data)].
func (o *OptimalTokenizer) Cost(data []byte) int64 {
	dp, _ := o.dp(data)
	return dp[len(data)]
}

// Tokenize returns the minimum-cost token sequence for data. Literal
// sentinels in the optimal path are expanded to their fallback byte
// sequence, so the result always decodes back to data exactly.
func (o *OptimalTokenizer) Tokenize(data []byte) []*Token {
	if len(data) == 0 {
		return nil
	}
	_, chosen := o.dp(data)

	var reversed []*Token
	for i := len(data); i > 0; {
		t := chosen[i]
		reversed = append(reversed, t)
		i -= t.Len()
	}

	out := make([]*Token, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		t := reversed[i]
		if t.IsLiteral() {
			out = fallbackTokens(o.ts, t.Bytes()[0], out)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// tokenSequence returns the compact (unexpanded) chosen-token sequence for
// data: a literal sentinel appears as itself rather than its fallback
// expansion. Used internally by the BPE optimizer's pair counting, where a
// literal byte's adjacency should be weighted as one candidate rather than
// as its multi-token fallback expansion.
func (o *OptimalTokenizer) tokenSequence(data []byte) []*Token {
	if len(data) == 0 {
		return nil
	}
	_, chosen := o.dp(data)
	out := make([]*Token, 0, len(data))
	for i := len(data); i > 0; {
		t := chosen[i]
		out = append(out, t)
		i -= t.Len()
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// TokenizeAndCount tokenizes data and records occurrence counts into
// stats, creating a fresh TokenStats if stats is nil.
func (o *OptimalTokenizer) TokenizeAndCount(data []byte, stats *TokenStats) *TokenStats {
	if stats == nil {
		stats = NewTokenStats(o.ts)
	}
	for range data {
		stats.CountByte()
	}
	for _, t := range o.Tokenize(data) {
		stats.CountToken(t)
	}
	return stats
}

// Decode reconstructs the original bytes from a token sequence by
// concatenating each token's string. It is the inverse used by the
// Legality property; literal sentinels must already have been
// expanded to fallback tokens by the producer (Tokenize never returns
// literal sentinels directly).
func Decode(seq []*Token) []byte {
	var out []byte
	for _, t := range seq {
		out = append(out, t.Bytes()...)
	}
	return out
}
