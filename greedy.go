package tokens

// GreedyTokenizer emits, at each position, the longest vocabulary token
// whose string is a prefix of the remaining bytes, falling back to the
// current byte's fallback expansion when no prefix matches. It is
// used as a reference baseline and in tests: optimal tokenization never
// produces a longer sequence than greedy for the same vocabulary and
// input.
type GreedyTokenizer struct {
	ts *TokenSet
	// prefixToken maps every prefix of every vocabulary token to either
	// that exact token (if the prefix is itself a token) or to the
	// partial sentinel, mirroring the _prefix_to_token construction of
	// the original reference tokenizer.
	prefixToken map[string]*Token
}

// partial marks a map entry that is a valid prefix of some token but not
// itself a complete token.
var partial = &Token{str: []byte("partial-sentinel")}

// NewGreedyTokenizer builds a greedy tokenizer over ts.
func NewGreedyTokenizer(ts *TokenSet) (*GreedyTokenizer, error) {
	if !ts.HasBits() && !ts.HasHex() {
		return nil, ErrNoFallback
	}
	g := &GreedyTokenizer{ts: ts, prefixToken: make(map[string]*Token)}
	for _, t := range ts.tokens {
		g.prefixToken[string(t.str)] = t
		for l := 1; l < len(t.str); l++ {
			prefix := string(t.str[:l])
			if _, ok := g.prefixToken[prefix]; !ok {
				g.prefixToken[prefix] = partial
			}
		}
	}
	return g, nil
}

// Tokenize returns the greedy token sequence for data, with literal
// fallback expansions already materialized.
func (g *GreedyTokenizer) Tokenize(data []byte) []*Token {
	var out []*Token
	pos := 0
	for pos < len(data) {
		var longest *Token
		length := 1
		for pos+length <= len(data) {
			match, ok := g.prefixToken[string(data[pos:pos+length])]
			if !ok {
				break
			}
			if match != partial {
				longest = match
			}
			length++
		}
		if longest != nil {
			out = append(out, longest)
			pos += longest.Len()
		} else {
			out = fallbackTokens(g.ts, data[pos], out)
			pos++
		}
	}
	return out
}
