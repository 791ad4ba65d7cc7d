package tokens

// powersOf2 lists the eight bit masks tested high-bit-first when expanding
// a byte into the bits fallback.
var powersOf2 = [8]byte{128, 64, 32, 16, 8, 4, 2, 1}

// literalCost returns the number of fallback tokens required to encode one
// byte that has no vocabulary token: 8 for the bits fallback, 3 for hex
// (marker plus two hex digits).
func literalCost(ts *TokenSet) int {
	if ts.HasHex() {
		return 3
	}
	return 8
}

// fallbackTokens appends the fallback expansion of byte b (hex-marker plus
// two hex digit tokens, or eight bit tokens) to dst and returns it.
func fallbackTokens(ts *TokenSet, b byte, dst []*Token) []*Token {
	if ts.HasHex() {
		dst = append(dst, ts.hexMarker)
		dst = append(dst, ts.hexByValue[b>>4])
		dst = append(dst, ts.hexByValue[b&0xF])
		return dst
	}
	for _, mask := range powersOf2 {
		if b&mask != 0 {
			dst = append(dst, ts.bit1)
		} else {
			dst = append(dst, ts.bit0)
		}
	}
	return dst
}
