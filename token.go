package tokens

import (
	"bytes"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Reserved single-byte values with a fixed meaning in the vocabulary: byte
// 16 is always the hex-digit marker, 17 and 18 are the two bits of the bit
// fallback, and the hex digits occupy their usual ASCII positions.
const (
	byteHexMarker = 16
	byteBit0      = 17
	byteBit1      = 18

	byteDigit0 = '0'
	byteDigit9 = '9'
	byteHexA   = 'a'
	byteHexF   = 'f'
)

// noValue marks a Token with no associated single-byte value.
const noValue = -1

// Token is an immutable vocabulary entry or literal sentinel. Tokens are
// never shared across TokenSets: a Token's id and suffixToken pointer are
// only meaningful relative to the set that produced it.
type Token struct {
	id        int    // index in TokenSet.tokens, or -1 for a literal sentinel
	str       []byte // non-empty byte string this token represents
	value     int    // single byte value if len(str) == 1, else noValue
	mandatory bool   // true for fallback-alphabet tokens that cannot be removed
	isLiteral bool   // true for the 256 literal sentinels, never a vocabulary member

	// suffixToken is the longest other token that is a proper suffix of
	// str, or the literal sentinel for str's last byte. Populated by
	// ComputeSuffixTokens and nil (unset) until then; always nil for
	// literal sentinels and single-byte tokens.
	suffixToken *Token
}

// ID returns the token's index within its TokenSet, or -1 for a literal.
func (t *Token) ID() int { return t.id }

// Bytes returns the token's byte string. Callers must not mutate it.
func (t *Token) Bytes() []byte { return t.str }

// Len returns the number of bytes the token represents.
func (t *Token) Len() int { return len(t.str) }

// Mandatory reports whether the token belongs to the fallback alphabet and
// cannot be removed from its TokenSet.
func (t *Token) Mandatory() bool { return t.mandatory }

// IsLiteral reports whether t is a literal sentinel rather than a
// vocabulary member.
func (t *Token) IsLiteral() bool { return t.isLiteral }

// SuffixToken returns the cached suffix link computed by
// TokenSet.ComputeSuffixTokens, or nil if it has not been computed yet or
// t is a literal/single-byte token.
func (t *Token) SuffixToken() *Token { return t.suffixToken }

// String implements fmt.Stringer, falling back to a raw byte representation
// when the token's bytes do not decode as UTF-8, since reporting must never
// fail on malformed input.
func (t *Token) String() string {
	if utf8.Valid(t.str) {
		return fmt.Sprintf("%q", string(t.str))
	}
	return fmt.Sprintf("%v", t.str)
}

// TokenSet is a mutable vocabulary during training and a frozen, indexed
// structure once ComputeSuffixTokens has been called and a tokenizer is
// constructed over it. RemoveToken and AddString enforce its invariants at
// runtime.
type TokenSet struct {
	tokens   []*Token
	byString map[string]*Token

	byteByValue [256]*Token
	hexByValue  [16]*Token
	hexMarker   *Token
	bit0, bit1  *Token

	literals [256]*Token
}

// NewTokenSet returns an empty TokenSet with its 256 literal sentinels
// already populated.
func NewTokenSet() *TokenSet {
	ts := &TokenSet{byString: make(map[string]*Token)}
	for b := 0; b < 256; b++ {
		ts.literals[b] = &Token{
			id:        -1,
			str:       []byte{byte(b)},
			value:     b,
			isLiteral: true,
		}
	}
	return ts
}

// Tokens returns the insertion-ordered list of vocabulary tokens. Index
// equals Token.ID() for every element.
func (ts *TokenSet) Tokens() []*Token { return ts.tokens }

// Ntokens returns the number of vocabulary tokens (excluding literals).
func (ts *TokenSet) Ntokens() int { return len(ts.tokens) }

// Literal returns the literal sentinel for the given byte value.
func (ts *TokenSet) Literal(b byte) *Token { return ts.literals[b] }

// Lookup returns the vocabulary token for s, if any.
func (ts *TokenSet) Lookup(s []byte) (*Token, bool) {
	t, ok := ts.byString[string(s)]
	return t, ok
}

// ByteByValue returns the single-byte token for value v, or nil.
func (ts *TokenSet) ByteByValue(v byte) *Token { return ts.byteByValue[v] }

// HasBits reports whether both bit fallback tokens are present.
func (ts *TokenSet) HasBits() bool { return ts.bit0 != nil && ts.bit1 != nil }

// HasHex reports whether the hex marker and all sixteen hex digit tokens
// are present.
func (ts *TokenSet) HasHex() bool {
	if ts.hexMarker == nil {
		return false
	}
	for _, t := range ts.hexByValue {
		if t == nil {
			return false
		}
	}
	return true
}

// addToken appends tok to the set, assigning its id and populating the
// by-string and reserved-byte indices. Panics on a duplicate string, since
// that is always a programmer error rather than recoverable input.
func (ts *TokenSet) addToken(tok *Token) *Token {
	if _, exists := ts.byString[string(tok.str)]; exists {
		panic(fmt.Errorf("%w: %q", ErrDuplicateToken, tok.str))
	}
	tok.id = len(ts.tokens)
	ts.tokens = append(ts.tokens, tok)
	ts.byString[string(tok.str)] = tok

	if tok.value != noValue {
		v := byte(tok.value)
		if ts.byteByValue[v] != nil {
			panic(fmt.Errorf("%w: byte value %d already has a token", ErrDuplicateToken, v))
		}
		ts.byteByValue[v] = tok

		switch {
		case v == byteHexMarker:
			ts.hexMarker = tok
		case v == byteBit0:
			ts.bit0 = tok
		case v == byteBit1:
			ts.bit1 = tok
		case v >= byteDigit0 && v <= byteDigit9:
			ts.hexByValue[v-byteDigit0] = tok
		case v >= byteHexA && v <= byteHexF:
			ts.hexByValue[v-byteHexA+10] = tok
		}
	}
	return tok
}

// AddByte adds a single-byte token for value v if not already present, and
// returns the token (new or existing). mandatory tokens can never be
// removed by RemoveToken.
func (ts *TokenSet) AddByte(v byte, mandatory bool) *Token {
	if existing := ts.byteByValue[v]; existing != nil {
		return existing
	}
	return ts.addToken(&Token{str: []byte{v}, value: int(v), mandatory: mandatory})
}

// AddString adds a multi-byte (or single-byte) token for s if not already
// present, and returns the token (new or existing).
func (ts *TokenSet) AddString(s []byte) *Token {
	if existing, ok := ts.byString[string(s)]; ok {
		return existing
	}
	cp := append([]byte(nil), s...)
	value := noValue
	if len(cp) == 1 {
		value = int(cp[0])
	}
	return ts.addToken(&Token{str: cp, value: value})
}

// RemoveToken removes t from the set. It is an error to remove a mandatory
// token or one that is not a member. Ids are compacted afterward so they
// remain 0..ntokens-1 in the insertion order of the surviving tokens; any
// TokenStats.count slice indexed by id must be rebuilt by the caller.
func (ts *TokenSet) RemoveToken(t *Token) error {
	if t == nil || t.id < 0 || t.id >= len(ts.tokens) || ts.tokens[t.id] != t {
		return ErrTokenNotFound
	}
	if t.mandatory {
		return ErrMandatoryToken
	}

	ts.tokens = append(ts.tokens[:t.id], ts.tokens[t.id+1:]...)
	for i := t.id; i < len(ts.tokens); i++ {
		ts.tokens[i].id = i
	}
	delete(ts.byString, string(t.str))
	if t.value != noValue {
		v := byte(t.value)
		ts.byteByValue[v] = nil
		switch {
		case v == byteHexMarker:
			ts.hexMarker = nil
		case v == byteBit0:
			ts.bit0 = nil
		case v == byteBit1:
			ts.bit1 = nil
		case v >= byteDigit0 && v <= byteDigit9:
			ts.hexByValue[v-byteDigit0] = nil
		case v >= byteHexA && v <= byteHexF:
			ts.hexByValue[v-byteHexA+10] = nil
		}
	}
	t.id = -1
	return nil
}

// Sort reorders tokens lexicographically by string and reassigns ids. It
// is called only when the vocabulary is serialized.
func (ts *TokenSet) Sort() {
	sortTokensByString(ts.tokens)
	for i, t := range ts.tokens {
		t.id = i
	}
}

// ComputeSuffixTokens populates SuffixToken for every multi-byte token:
// the longest other token that is a proper suffix of its string, else the
// literal sentinel for its last byte. Must be called once the vocabulary
// is frozen, before a scanner or tokenizer is built over it.
func (ts *TokenSet) ComputeSuffixTokens() {
	for _, t := range ts.tokens {
		t.suffixToken = nil
		for start := 1; start < len(t.str); start++ {
			if suf, ok := ts.byString[string(t.str[start:])]; ok {
				t.suffixToken = suf
				break
			}
		}
		if t.suffixToken == nil && len(t.str) > 1 {
			t.suffixToken = ts.literals[t.str[len(t.str)-1]]
		}
	}
}

// BuildBitsTokenSet returns a fresh TokenSet seeded with the mandatory bit0
// and bit1 tokens (byte values 17 and 18).
func BuildBitsTokenSet() *TokenSet {
	ts := NewTokenSet()
	ts.AddByte(byteBit0, true)
	ts.AddByte(byteBit1, true)
	return ts
}

// BuildHexTokenSet returns a fresh TokenSet seeded with the mandatory hex
// marker and the sixteen hex-digit tokens ('0'..'9','a'..'f').
func BuildHexTokenSet() *TokenSet {
	ts := NewTokenSet()
	ts.AddByte(byteHexMarker, true)
	for b := byte(byteDigit0); b <= byteDigit9; b++ {
		ts.AddByte(b, true)
	}
	for b := byte(byteHexA); b <= byteHexF; b++ {
		ts.AddByte(b, true)
	}
	return ts
}

// sortTokensByString sorts in place by lexicographic byte order, kept
// separate from Sort so it can be unit tested in isolation.
func sortTokensByString(tokens []*Token) {
	sort.Slice(tokens, func(i, j int) bool {
		return bytes.Compare(tokens[i].str, tokens[j].str) < 0
	})
}
