package tokens

import "bytes"

// BuildBPE grows ts toward target tokens by repeatedly merging the
// highest-count adjacent token pair, pruning back one token whenever the
// merge overshoots target. Each round:
//  1. Tokenizes the data and counts every adjacent token pair's
//     concatenation frequency.
//  2. Adds the highest-count candidate pair as a new token. If that keeps
//     ntokens <= target, the round is done.
//  3. Otherwise sweeps non-mandatory tokens (other than the one just
//     added) in ascending occurrence order, tentatively removing each via
//     leave-one-out trial, and keeps the first removal that strictly
//     lowers the total below the pre-addition total.
//  4. If no removal improves on the pre-addition total, the last addition
//     is undone and the vocabulary is returned as final.
func BuildBPE(ts *TokenSet, chunks func(yield func([]byte) bool), target int, filters *FilterChain) (*TokenSet, error) {
	litCost := literalCost(ts)

	for {
		tok, err := NewOptimalTokenizer(ts)
		if err != nil {
			return nil, err
		}
		totalBefore, _ := evaluate(tok, chunks, filters)

		pairCounts := countAdjacentPairs(tok, chunks, filters, litCost)
		candidate := bestPairCandidate(ts, pairCounts)
		if candidate == nil {
			return ts, nil
		}
		added := ts.AddString(candidate)

		if ts.Ntokens() <= target {
			continue
		}

		tok, err = NewOptimalTokenizer(ts)
		if err != nil {
			return nil, err
		}
		// The pruning decision below compares a candidate removal's total
		// against totalBefore, the cost from before this round's addition.
		_, counts := evaluate(tok, chunks, filters)
		cands := ascendingCandidates(ts, counts, added)

		improved := false
		for _, cand := range cands {
			total, ok := tryRemoval(ts, cand, chunks, filters)
			if !ok {
				continue
			}
			if total < totalBefore {
				if err := ts.RemoveToken(cand); err != nil {
					return nil, err
				}
				improved = true
				break
			}
		}

		if !improved {
			if err := ts.RemoveToken(added); err != nil {
				return nil, err
			}
			return ts, nil
		}
	}
}

// countAdjacentPairs tokenizes every chunk (through its compact,
// unexpanded chosen sequence, so a literal fallback byte counts as one
// candidate rather than its multi-token expansion) and tallies the
// occurrence count of every adjacent token pair, keyed by token identity
// so no byte-string concatenation is needed per pair.
func countAdjacentPairs(tok *OptimalTokenizer, chunks func(yield func([]byte) bool), filters *FilterChain, litCost int) *PairCounter {
	counter := NewPairCounter()
	for chunk := range chunks {
		seq := tok.tokenSequence(filters.Apply(chunk))
		for i := 0; i+1 < len(seq); i++ {
			a, b := seq[i], seq[i+1]
			weight := int64(1)
			if a.IsLiteral() || b.IsLiteral() {
				// Resolved open question: weight a pair touching a
				// literal by literal_cost-1 rather than literal_cost, which
				// intentionally over-counts to bias merges toward replacing
				// frequent literal bytes.
				weight = int64(litCost - 1)
			}
			counter.IncPairBy(a, b, weight)
		}
	}
	return counter
}

// bestPairCandidate returns the highest-count pair's byte-string
// concatenation, excluding pairs already a member of ts, or nil if
// counter holds no new candidate.
func bestPairCandidate(ts *TokenSet, counter *PairCounter) []byte {
	var best []byte
	var bestCount int64 = -1
	counter.EachPair(func(a, b *Token, count int64) {
		key := append(append([]byte(nil), a.Bytes()...), b.Bytes()...)
		if _, ok := ts.Lookup(key); ok {
			return
		}
		if count > bestCount || (count == bestCount && bytes.Compare(key, best) < 0) {
			bestCount = count
			best = key
		}
	})
	return best
}
