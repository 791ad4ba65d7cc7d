package tokens

// PruneSimple removes the least-used non-mandatory token, retokenizing
// after every removal, until ts has exactly target vocabulary tokens.
// Dead tokens (occurrence count zero) are removed first regardless
// of target. It guarantees a monotone decrease in vocabulary size but not
// in output cost: a removal can make tokenization more expensive if the
// removed token was load-bearing for some inputs even while being rare
// overall.
func PruneSimple(ts *TokenSet, chunks func(yield func([]byte) bool), target int, filters *FilterChain) (*TokenSet, error) {
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
		if len(cands) == 0 {
			break
		}
		if err := ts.RemoveToken(cands[0]); err != nil {
			return nil, err
		}
	}
	return ts, nil
}
