package tokens

// BytesTokenizer emits the single-byte token for each input byte when one
// exists, or the fallback expansion otherwise. It never matches
// multi-byte tokens and is mainly useful as a trivial baseline or for
// exercising the fallback alphabet in isolation.
type BytesTokenizer struct {
	ts *TokenSet
}

// NewBytesTokenizer builds a bytes-only tokenizer over ts.
func NewBytesTokenizer(ts *TokenSet) (*BytesTokenizer, error) {
	if !ts.HasBits() && !ts.HasHex() {
		return nil, ErrNoFallback
	}
	return &BytesTokenizer{ts: ts}, nil
}

// Tokenize returns one vocabulary token or one fallback expansion per
// input byte.
func (b *BytesTokenizer) Tokenize(data []byte) []*Token {
	var out []*Token
	for _, v := range data {
		if t := b.ts.ByteByValue(v); t != nil {
			out = append(out, t)
		} else {
			out = fallbackTokens(b.ts, v, out)
		}
	}
	return out
}
