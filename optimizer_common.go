package tokens

import "sort"

// evaluate tokenizes every chunk yielded by chunks, after passing it
// through filters, with tok. It returns the total number of emitted
// tokens across all chunks and a per-token occurrence count keyed by
// token identity, so a vocabulary mutation between calls never
// invalidates previously recorded counts for tokens that remain.
func evaluate(tok *OptimalTokenizer, chunks func(yield func([]byte) bool), filters *FilterChain) (total int64, counts map[*Token]int64) {
	counts = make(map[*Token]int64)
	for chunk := range chunks {
		seq := tok.Tokenize(filters.Apply(chunk))
		total += int64(len(seq))
		for _, t := range seq {
			counts[t]++
		}
	}
	return total, counts
}

// removeDeadTokens deletes every non-mandatory token with zero occurrences
// in counts and returns how many were removed.
func removeDeadTokens(ts *TokenSet, counts map[*Token]int64) int {
	removed := 0
	for _, t := range append([]*Token(nil), ts.Tokens()...) {
		if t.Mandatory() || counts[t] != 0 {
			continue
		}
		if err := ts.RemoveToken(t); err == nil {
			removed++
		}
	}
	return removed
}

// ascendingCandidates returns ts's non-mandatory tokens other than
// exclude, sorted ascending by occurrence count (ties broken
// lexicographically for a deterministic sweep order).
func ascendingCandidates(ts *TokenSet, counts map[*Token]int64, exclude *Token) []*Token {
	var cands []*Token
	for _, t := range ts.Tokens() {
		if t.Mandatory() || t == exclude {
			continue
		}
		cands = append(cands, t)
	}
	sort.Slice(cands, func(i, j int) bool {
		ci, cj := counts[cands[i]], counts[cands[j]]
		if ci != cj {
			return ci < cj
		}
		return string(cands[i].Bytes()) < string(cands[j].Bytes())
	})
	return cands
}

// cloneTokenSet returns an independent copy of ts: same token strings,
// byte values and mandatory flags, freshly computed suffix links. Used by
// the leave-one-out optimizers to evaluate a trial removal without
// disturbing ts, whose tokens may be referenced by in-flight occurrence
// counts keyed by identity.
func cloneTokenSet(ts *TokenSet) *TokenSet {
	clone := NewTokenSet()
	for _, t := range ts.Tokens() {
		if t.Len() == 1 {
			clone.AddByte(t.Bytes()[0], t.Mandatory())
		} else {
			clone.AddString(t.Bytes())
		}
	}
	clone.ComputeSuffixTokens()
	return clone
}

// tryRemoval evaluates ts with candidate removed, without mutating ts: it
// clones ts, removes the clone's copy of candidate, builds an optimal
// tokenizer over the clone, and returns the resulting total token count.
func tryRemoval(ts *TokenSet, candidate *Token, chunks func(yield func([]byte) bool), filters *FilterChain) (total int64, ok bool) {
	trial := cloneTokenSet(ts)
	t, found := trial.Lookup(candidate.Bytes())
	if !found {
		return 0, false
	}
	if err := trial.RemoveToken(t); err != nil {
		return 0, false
	}
	trialTok, err := NewOptimalTokenizer(trial)
	if err != nil {
		return 0, false
	}
	total, _ = evaluate(trialTok, chunks, filters)
	return total, true
}
