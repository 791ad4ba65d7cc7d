package tokens

// DefaultTopToRemove is the typical leave-one-out candidate-set size.
// Restricting the sweep to the k least-used tokens keeps PruneUseful's
// cost to O(k * |data|) per removal instead of evaluating every
// surviving token.
const DefaultTopToRemove = 8

// PruneUseful removes, at each step, whichever single non-mandatory
// token's absence yields the minimum total token count over chunks,
// evaluated by leave-one-out trial removal. topToRemove bounds the
// candidate set to the topToRemove least-used tokens; topToRemove <= 0
// evaluates every non-mandatory token, which is exhaustive and expensive.
// Dead tokens are removed first regardless of target. This produces
// substantially lower output cost than PruneSimple at proportionally
// higher training cost.
func PruneUseful(ts *TokenSet, chunks func(yield func([]byte) bool), target, topToRemove int, filters *FilterChain) (*TokenSet, error) {
	tok, err := NewOptimalTokenizer(ts)
	if err != nil {
		return nil, err
	}
	_, counts := evaluate(tok, chunks, filters)
	removeDeadTokens(ts, counts)

	for ts.Ntokens() > target {
		tok, err = NewOptimalTokenizer(ts)
		if err != nil {
			return nil, err
		}
		_, counts = evaluate(tok, chunks, filters)

		cands := ascendingCandidates(ts, counts, nil)
		if topToRemove > 0 && len(cands) > topToRemove {
			cands = cands[:topToRemove]
		}
		if len(cands) == 0 {
			break
		}

		var best *Token
		var bestTotal int64 = -1
		for _, cand := range cands {
			total, ok := tryRemoval(ts, cand, chunks, filters)
			if !ok {
				continue
			}
			if bestTotal < 0 || total < bestTotal {
				bestTotal = total
				best = cand
			}
		}
		if best == nil {
			break
		}
		if err := ts.RemoveToken(best); err != nil {
			return nil, err
		}
	}
	return ts, nil
}
