package tokens

import "math"

// TokenStats accumulates occurrence counts for a tokenization run over a
// fixed TokenSet. Counts are indexed by Token.ID(); they must be rebuilt
// (not merely resized) after any RemoveToken call on the underlying set,
// since ids are compacted on removal.
type TokenStats struct {
	tokenSet  *TokenSet
	count     []int64
	inputSize int64
}

// NewTokenStats returns a zeroed TokenStats over ts's current token count.
func NewTokenStats(ts *TokenSet) *TokenStats {
	return &TokenStats{tokenSet: ts, count: make([]int64, ts.Ntokens())}
}

// CountToken records one occurrence of t.
func (s *TokenStats) CountToken(t *Token) {
	if t.id >= 0 && t.id < len(s.count) {
		s.count[t.id]++
	}
}

// CountByte records one scanned input byte, independent of how many
// tokens it eventually costs.
func (s *TokenStats) CountByte() { s.inputSize++ }

// InputSize returns the number of bytes scanned.
func (s *TokenStats) InputSize() int64 { return s.inputSize }

// Count returns the occurrence count for the token with the given id.
func (s *TokenStats) Count(id int) int64 {
	if id < 0 || id >= len(s.count) {
		return 0
	}
	return s.count[id]
}

// TotalTokens returns the sum of all occurrence counts.
func (s *TokenStats) TotalTokens() int64 {
	var total int64
	for _, c := range s.count {
		total += c
	}
	return total
}

// UsedTokens returns the number of distinct tokens with a nonzero count.
func (s *TokenStats) UsedTokens() int {
	used := 0
	for _, c := range s.count {
		if c > 0 {
			used++
		}
	}
	return used
}

// BytesPerToken returns InputSize / TotalTokens, or 0 if no tokens were
// emitted.
func (s *TokenStats) BytesPerToken() float64 {
	total := s.TotalTokens()
	if total == 0 {
		return 0
	}
	return float64(s.inputSize) / float64(total)
}

// BitsPerByte returns total_tokens * log2(ntokens) / input_size, the
// information-theoretic cost of representing each byte in the fixed-size
// vocabulary alphabet.
func (s *TokenStats) BitsPerByte() float64 {
	if s.inputSize == 0 || s.tokenSet.Ntokens() == 0 {
		return 0
	}
	return float64(s.TotalTokens()) * math.Log2(float64(s.tokenSet.Ntokens())) / float64(s.inputSize)
}

// Snapshot returns the occurrence count of every token with at least one
// occurrence, keyed by identity rather than id. Capture a snapshot before
// reassigning a TokenSet's ids (RemoveToken compaction, Sort renumbering)
// and rebuild with RebuildFromSnapshot afterward.
func (s *TokenStats) Snapshot() map[*Token]int64 {
	out := make(map[*Token]int64)
	for _, t := range s.tokenSet.Tokens() {
		if c := s.Count(t.ID()); c > 0 {
			out[t] = c
		}
	}
	return out
}

// RebuildFromSnapshot returns a fresh TokenStats over ts, with counts
// restored from a Snapshot taken before ts's ids changed.
func RebuildFromSnapshot(ts *TokenSet, inputSize int64, snapshot map[*Token]int64) *TokenStats {
	s := NewTokenStats(ts)
	s.inputSize = inputSize
	for t, c := range snapshot {
		if t.ID() >= 0 {
			s.count[t.ID()] = c
		}
	}
	return s
}
