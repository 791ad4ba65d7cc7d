package tokens

import (
	"fmt"
	"os"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/eterevsky/tokens/internal/pjson"
)

// artifactStats is the on-disk shape of a saved artifact's "stats" object.
type artifactStats struct {
	Ntokens       int     `json:"ntokens"`
	ScannedBytes  int64   `json:"scanned_bytes"`
	UsedTokens    int     `json:"used_tokens"`
	TotalTokens   int64   `json:"total_tokens"`
	BytesPerToken float64 `json:"bytes_per_token"`
	BitsPerByte   float64 `json:"bits_per_byte"`
}

// artifactConfig is the on-disk shape of a saved artifact's "config"
// object.
type artifactConfig struct {
	Fallback16 bool `json:"fallback16"`
}

// artifactOptimizer is the on-disk shape of a saved artifact's
// "optimizer" object.
type artifactOptimizer struct {
	Fallback16  bool     `json:"fallback16"`
	Type        string   `json:"type"`
	Filters     []string `json:"filters"`
	InitMult    float64  `json:"init_mult,omitempty"`
	InitTokens  int      `json:"init_tokens,omitempty"`
	TopToRemove int      `json:"top_to_remove,omitempty"`
}

// artifactFile is the on-disk shape of a complete saved artifact.
type artifactFile struct {
	Tokens    []json.RawMessage `json:"tokens"`
	Stats     artifactStats     `json:"stats"`
	Config    artifactConfig    `json:"config"`
	Optimizer artifactOptimizer `json:"optimizer"`
}

// typeLabel names a Config's training strategy the way a saved artifact's
// "optimizer.type" field records it.
func (c Config) typeLabel() string {
	switch {
	case c.Seed == "bpe":
		return "bpe"
	case c.Seed == "top_bytes+top_str" && c.Optimizer == "direct":
		return "top_bytes"
	case c.Seed == "top_str" && c.Optimizer == "direct":
		return "top_strings"
	case c.Optimizer == "prune_simple":
		return "prune_last_token"
	case c.Optimizer == "prune_useful":
		return "prune_useless_token"
	default:
		return c.Seed + "/" + c.Optimizer
	}
}

// Save sorts res.Tokens by string, then writes the complete trained
// artifact (tokens, stats, config, optimizer) to path in the project's
// pretty-printed JSON layout. Sorting reassigns token ids, so the stats
// are rebuilt from a pre-sort snapshot rather than reused directly.
func Save(res *Result, path string) error {
	snapshot := res.Stats.Snapshot()
	inputSize := res.Stats.InputSize()
	res.Tokens.Sort()
	stats := RebuildFromSnapshot(res.Tokens, inputSize, snapshot)

	root := pjson.Object{
		{Key: "tokens", Value: tokensNode(res.Tokens)},
		{Key: "stats", Value: statsNode(stats)},
		{Key: "config", Value: pjson.Object{
			{Key: "fallback16", Value: pjson.Bool(res.Tokens.HasHex())},
		}},
		{Key: "optimizer", Value: optimizerNode(res.Config)},
	}

	data := pjson.Render(root, 80) + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("tokens: write artifact %s: %w", path, err)
	}
	return nil
}

func tokensNode(ts *TokenSet) pjson.Array {
	arr := make(pjson.Array, len(ts.Tokens()))
	for i, t := range ts.Tokens() {
		if utf8.Valid(t.Bytes()) {
			arr[i] = pjson.String(string(t.Bytes()))
			continue
		}
		bytesArr := make(pjson.Array, len(t.Bytes()))
		for j, b := range t.Bytes() {
			bytesArr[j] = pjson.Int(b)
		}
		arr[i] = bytesArr
	}
	return arr
}

func statsNode(s *TokenStats) pjson.Object {
	return pjson.Object{
		{Key: "ntokens", Value: pjson.Int(s.tokenSet.Ntokens())},
		{Key: "scanned_bytes", Value: pjson.Int(s.InputSize())},
		{Key: "used_tokens", Value: pjson.Int(int64(s.UsedTokens()))},
		{Key: "total_tokens", Value: pjson.Int(s.TotalTokens())},
		{Key: "bytes_per_token", Value: pjson.Number(s.BytesPerToken())},
		{Key: "bits_per_byte", Value: pjson.Number(s.BitsPerByte())},
	}
}

func optimizerNode(c Config) pjson.Object {
	obj := pjson.Object{
		{Key: "fallback16", Value: pjson.Bool(c.Fallback16)},
		{Key: "type", Value: pjson.String(c.typeLabel())},
		{Key: "filters", Value: filtersNode(c.Filters)},
	}
	if c.InitMult != 0 {
		obj = append(obj, pjson.Field{Key: "init_mult", Value: pjson.Number(c.InitMult)})
	}
	if c.InitTokens != 0 {
		obj = append(obj, pjson.Field{Key: "init_tokens", Value: pjson.Int(int64(c.InitTokens))})
	}
	if c.TopToRemove != 0 {
		obj = append(obj, pjson.Field{Key: "top_to_remove", Value: pjson.Int(int64(c.TopToRemove))})
	}
	return obj
}

func filtersNode(names []string) pjson.Array {
	arr := make(pjson.Array, len(names))
	for i, n := range names {
		arr[i] = pjson.String(n)
	}
	return arr
}

// PeekArtifactStats reads just the "stats.ntokens" and "config.fallback16"
// fields of a saved artifact via a gjson query, without decoding the full
// token list, so a caller can fail fast on a malformed or truncated
// artifact.
func PeekArtifactStats(path string) (ntokens int, fallback16 bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false, fmt.Errorf("tokens: read artifact %s: %w", path, err)
	}
	result := gjson.GetManyBytes(data, "stats.ntokens", "config.fallback16")
	if !result[0].Exists() {
		return 0, false, fmt.Errorf("%w: %s: missing stats.ntokens", ErrBadArtifact, path)
	}
	return int(result[0].Int()), result[1].Bool(), nil
}

// Load reads a saved artifact and reconstructs its TokenSet, TokenStats,
// and a Config from its "optimizer" object. The saved "type" label is
// stored in both Config.Seed and Config.Optimizer; the original seed and
// optimizer names are not recovered.
func Load(path string) (*TokenSet, *TokenStats, Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, Config{}, fmt.Errorf("tokens: read artifact %s: %w", path, err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, Config{}, fmt.Errorf("%w: %s: %v", ErrBadArtifact, path, err)
	}

	ts := NewTokenSet()
	for _, raw := range file.Tokens {
		b, err := decodeTokenBytes(raw)
		if err != nil {
			return nil, nil, Config{}, fmt.Errorf("%w: %s: %v", ErrBadArtifact, path, err)
		}
		if len(b) == 1 {
			ts.AddByte(b[0], isMandatoryByte(b[0], file.Config.Fallback16))
		} else {
			ts.AddString(b)
		}
	}
	ts.ComputeSuffixTokens()

	// The saved artifact only records aggregate counts, not per-token
	// counts, so the reloaded TokenStats starts with zeroed per-token
	// counts and just the original aggregate input size.
	stats := NewTokenStats(ts)
	stats.inputSize = file.Stats.ScannedBytes

	cfg := Config{
		Fallback16:  file.Optimizer.Fallback16,
		Filters:     file.Optimizer.Filters,
		Seed:        file.Optimizer.Type,
		Optimizer:   file.Optimizer.Type,
		InitMult:    file.Optimizer.InitMult,
		InitTokens:  file.Optimizer.InitTokens,
		TopToRemove: file.Optimizer.TopToRemove,
	}

	return ts, stats, cfg, nil
}

// decodeTokenBytes decodes one "tokens" array element, which is either a
// JSON string (UTF-8 token) or a JSON array of byte integers.
func decodeTokenBytes(raw json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s), nil
	}
	var ints []int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return nil, fmt.Errorf("token entry is neither a string nor a byte array: %w", err)
	}
	b := make([]byte, len(ints))
	for i, v := range ints {
		b[i] = byte(v)
	}
	return b, nil
}

func isMandatoryByte(v byte, fallback16 bool) bool {
	if fallback16 {
		return v == byteHexMarker || (v >= byteDigit0 && v <= byteDigit9) || (v >= byteHexA && v <= byteHexF)
	}
	return v == byteBit0 || v == byteBit1
}
