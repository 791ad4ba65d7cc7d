package tokens

import "sort"

// SubstringCount pairs a candidate byte string with its occurrence count,
// as returned by MineTopSubstrings.
type SubstringCount struct {
	String []byte
	Count  int64
}

// TopBytes returns every byte value observed at least once across chunks,
// with its occurrence count, sorted by descending count (ties broken by
// byte value). Unlike MineTopSubstrings it is never pruned to a fixed
// size: a vocabulary seed strategy that wants one token per observed byte
// value reads straight off the front of this list.
func TopBytes(chunks func(yield func([]byte) bool)) []SubstringCount {
	var counts [256]int64
	for chunk := range chunks {
		for _, b := range chunk {
			counts[b]++
		}
	}
	out := make([]SubstringCount, 0, 256)
	for b, n := range counts {
		if n > 0 {
			out = append(out, SubstringCount{String: []byte{byte(b)}, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].String[0] < out[j].String[0]
	})
	return out
}

// MineTopSubstrings finds up to nstrings byte substrings with the highest
// occurrence counts across the chunks yielded by chunks. It expands
// the candidate length one byte at a time: starting from single-byte
// frequencies, each round extends every surviving string of the previous
// round's length by one more observed byte, then prunes back down to the
// nstrings highest counts before extending again. The loop stops once the
// surviving set no longer contains any string of the length it just
// extended from, and returns that last surviving set in descending count
// order.
func MineTopSubstrings(chunks func(yield func([]byte) bool), nstrings int) []SubstringCount {
	counts := make(map[string]int64)
	for chunk := range chunks {
		for _, b := range chunk {
			counts[string([]byte{b})]++
		}
	}
	counts = pruneCounts(counts, nstrings)

	for length := 2; ; length++ {
		maxLen := 0
		for s := range counts {
			if len(s) > maxLen {
				maxLen = len(s)
			}
		}
		if maxLen < length-1 {
			break
		}

		prefixes := NewTokenSet()
		for s := range counts {
			if len(s) == length-1 {
				prefixes.AddString([]byte(s))
			}
		}
		prefixes.ComputeSuffixTokens()
		scanner := NewScanner(prefixes)

		next := make(map[string]int64, len(counts))
		for s, n := range counts {
			next[s] = n
		}
		for chunk := range chunks {
			matches := scanner.Scan(chunk)
			for i, tok := range matches {
				if tok == nil || tok.IsLiteral() || tok.Len() != length-1 {
					continue
				}
				if i+1 >= len(chunk) {
					continue
				}
				s := string(append(append([]byte(nil), tok.Bytes()...), chunk[i+1]))
				next[s]++
			}
		}
		counts = pruneCounts(next, nstrings)
	}

	return sortedCounts(counts)
}

// pruneCounts keeps the nstrings highest counts in counts, returning a
// fresh map so callers never mutate the argument in place. Candidate sets
// here can run into the hundreds of thousands of distinct substrings per
// round, so selection goes through a bounded TopK heap rather than a full
// sort of every candidate.
func pruneCounts(counts map[string]int64, nstrings int) map[string]int64 {
	if nstrings <= 0 || len(counts) <= nstrings {
		out := make(map[string]int64, len(counts))
		for s, n := range counts {
			out[s] = n
		}
		return out
	}

	tk := NewTopK(nstrings, func(a, b string) bool { return a > b })
	for s, n := range counts {
		tk.Offer(s, n)
	}
	out := make(map[string]int64, nstrings)
	for _, s := range tk.Items() {
		out[s] = counts[s]
	}
	return out
}

// sortedCounts returns counts as a slice sorted by descending count, with
// ties broken lexicographically for a deterministic order.
func sortedCounts(counts map[string]int64) []SubstringCount {
	out := make([]SubstringCount, 0, len(counts))
	for s, n := range counts {
		out = append(out, SubstringCount{String: []byte(s), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return string(out[i].String) < string(out[j].String)
	})
	return out
}
