package tokens

// scanState is one state of the suffix-matching automaton built over a
// TokenSet. Its key, suffix, is the most-recently-consumed byte
// sequence that state represents; token is the longest vocabulary token
// that is a suffix of suffix, or the literal sentinel for suffix's last
// byte when no vocabulary token matches.
type scanState struct {
	suffix []byte
	token  *Token
	next   [256]*scanState
}

// Scanner is a deterministic finite automaton over bytes: given a frozen
// TokenSet, it streams the longest vocabulary match ending at each input
// position (or the literal sentinel when no vocabulary token matches).
// Scanner work is O(1) per byte after construction.
type Scanner struct {
	tokenSet *TokenSet
	empty    *scanState
}

// NewScanner builds the suffix automaton over ts. ts must have had
// ComputeSuffixTokens called already; NewScanner does not mutate ts.
func NewScanner(ts *TokenSet) *Scanner {
	states := map[string]*scanState{"": {}}

	for _, t := range ts.tokens {
		for k := 1; k <= len(t.str); k++ {
			key := string(t.str[:k])
			if _, ok := states[key]; !ok {
				states[key] = &scanState{suffix: append([]byte(nil), t.str[:k]...)}
			}
		}
	}
	for b := 0; b < 256; b++ {
		key := string([]byte{byte(b)})
		if _, ok := states[key]; !ok {
			states[key] = &scanState{suffix: []byte{byte(b)}}
		}
	}

	for _, st := range states {
		if len(st.suffix) == 0 {
			continue
		}
		st.token = longestSuffixToken(ts, st.suffix)
	}

	for _, st := range states {
		for b := 0; b < 256; b++ {
			candidate := append(append([]byte(nil), st.suffix...), byte(b))
			for {
				if next, ok := states[string(candidate)]; ok {
					st.next[b] = next
					break
				}
				candidate = candidate[1:]
			}
		}
	}

	return &Scanner{tokenSet: ts, empty: states[""]}
}

// longestSuffixToken returns the longest token in ts that is a suffix of
// suffix, or the literal sentinel for suffix's last byte if none matches.
func longestSuffixToken(ts *TokenSet, suffix []byte) *Token {
	for length := len(suffix); length >= 1; length-- {
		if t, ok := ts.byString[string(suffix[len(suffix)-length:])]; ok {
			return t
		}
	}
	return ts.literals[suffix[len(suffix)-1]]
}

// Scan returns, for each byte of data, the token of the automaton state
// reached after consuming that byte. The returned slice has the same
// length as data; result[i] is the longest vocabulary match ending at
// position i+1, or a literal sentinel.
func (s *Scanner) Scan(data []byte) []*Token {
	out := make([]*Token, len(data))
	state := s.empty
	for i, b := range data {
		state = state.next[b]
		out[i] = state.token
	}
	return out
}

// ScanFunc walks data byte by byte, invoking yield with the matched token
// at each position. It stops early if yield returns false, matching the
// pull-iterator style used on the hot tokenization path.
func (s *Scanner) ScanFunc(data []byte, yield func(pos int, tok *Token) bool) {
	state := s.empty
	for i, b := range data {
		state = state.next[b]
		if !yield(i, state.token) {
			return
		}
	}
}
