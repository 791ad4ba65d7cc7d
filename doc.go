// Package tokens trains and applies a compact byte-level tokenizer.
//
// # Overview
//
// A tokenizer re-encodes an arbitrary byte stream into a sequence of symbol
// identifiers drawn from a small vocabulary (typically 2-256 symbols),
// minimizing the number of emitted symbols. Every vocabulary carries a
// mandatory fallback sub-alphabet (bits or hex digits) so that any byte not
// directly covered by a vocabulary token can still be encoded.
//
// # When to Use
//
// This package is useful when:
//   - A downstream encoder or classifier requires an extremely small output
//     alphabet (e.g. a handful of symbols per byte).
//   - Every byte of input must remain representable, including bytes that
//     never appeared in the training corpus.
//   - The tokenization needs to be provably minimal in symbol count, not
//     merely "good enough" as with greedy byte-pair schemes.
//
// # When NOT to Use
//
// This package is not a general-purpose text tokenizer (no subword merging
// for NLP model vocabularies) and not a compressor: encoded output is a
// sequence of small integers, not packed bytes. For byte-oriented data
// compression with a larger alphabet, see a dedicated codec instead.
//
// # Basic Usage
//
//	source, _ := tokens.OpenByteSource("corpus.txt")
//	defer source.Close()
//	provider := tokens.NewChunkProvider(source, 1024, 16384)
//	result, _ := tokens.Run(context.Background(), logger, provider.Chunks(), 128)
//	enc, _ := tokens.NewOptimalTokenizer(result.Tokens)
//	seq := enc.Tokenize([]byte("hello world"))
//
// # Performance Characteristics
//
// Scanning is O(1) per byte after the suffix automaton is built. The optimal
// tokenizer is O(n) per input with a constant factor bounded by the longest
// vocabulary token. Training is the expensive phase: each optimizer pass
// retokenizes the sample data, so vocabulary search time scales with
// sample size times the number of candidate removals or additions.
package tokens
