package tokens

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config describes one point in the driver's configuration space: a
// fallback alphabet, a filter-chain preset, a seed strategy, and an
// optimization strategy together with whatever parameters that strategy
// used. Save records it in a saved artifact's "optimizer" object, with
// Seed and Optimizer folded into the single "type" label of typeLabel.
type Config struct {
	Fallback16  bool     `json:"fallback16"`
	Filters     []string `json:"filters"`
	Seed        string   `json:"type"`
	Optimizer   string   `json:"optimizer"`
	InitMult    float64  `json:"init_mult,omitempty"`
	InitTokens  int      `json:"init_tokens,omitempty"`
	TopToRemove int      `json:"top_to_remove,omitempty"`
}

func (c Config) String() string {
	if c.Optimizer == "direct" {
		return fmt.Sprintf("fallback16=%v filters=%v seed=%s direct", c.Fallback16, c.Filters, c.Seed)
	}
	return fmt.Sprintf("fallback16=%v filters=%v seed=%s optimizer=%s init_mult=%g", c.Fallback16, c.Filters, c.Seed, c.Optimizer, c.InitMult)
}

// Result pairs a trained TokenSet with the stats and Config that produced
// it.
type Result struct {
	Tokens *TokenSet
	Stats  *TokenStats
	Config Config
}

// filterPresets lists the driver's filter-chain presets by name, excluding
// Reserved: Reserved is always applied ahead of any preset (control code
// points must always be sanitized before training), so it never appears
// as a swept dimension.
var filterPresets = [][]string{
	{},
	{"caps"},
	{"caps", "words"},
}

// Configurations enumerates the driver's full configuration space for a
// target vocabulary size, without touching any training data: the CLI's
// generate --dry-run flag lists these to preview a sweep before running it.
func Configurations(ntokens int) []Config {
	var out []Config
	for _, preset := range filterPresets {
		for _, fallback16 := range allowedFallbacks(ntokens) {
			for _, seed := range []string{"top_bytes+top_str", "top_str"} {
				out = append(out, Config{Fallback16: fallback16, Filters: preset, Seed: seed, Optimizer: "direct"})
				for _, mult := range []float64{2, 4} {
					out = append(out, Config{Fallback16: fallback16, Filters: preset, Seed: seed, Optimizer: "prune_simple", InitMult: mult})
					out = append(out, Config{Fallback16: fallback16, Filters: preset, Seed: seed, Optimizer: "prune_useful", InitMult: mult, TopToRemove: DefaultTopToRemove})
				}
			}
			out = append(out, Config{Fallback16: fallback16, Filters: preset, Seed: "bpe", Optimizer: "direct"})
		}
	}
	return out
}

// allowedFallbacks returns which fallback alphabets are valid for a target
// vocabulary size: bits only when ntokens <= 64, hex only when ntokens >=
// 17.
func allowedFallbacks(ntokens int) []bool {
	var out []bool
	if ntokens <= 64 {
		out = append(out, false)
	}
	if ntokens >= 17 {
		out = append(out, true)
	}
	return out
}

func filtersFromNames(names []string) *FilterChain {
	chain := []Filter{ReservedFilter{}}
	for _, n := range names {
		switch n {
		case "caps":
			chain = append(chain, CapsFilter{})
		case "words":
			chain = append(chain, WordsFilter{})
		}
	}
	return NewFilterChain(chain...)
}

func seedTokenSet(fallback16 bool) *TokenSet {
	if fallback16 {
		return BuildHexTokenSet()
	}
	return BuildBitsTokenSet()
}

// addCandidates adds tokens for the first maxAdded entries of cands (all of
// them when maxAdded <= 0), stopping early once ts holds maxTokens tokens
// (never, when maxTokens <= 0). It mirrors the add_strings helper from the
// reference vocabulary-seeding script.
func addCandidates(ts *TokenSet, cands []SubstringCount, maxTokens, maxAdded int) {
	if maxAdded <= 0 || maxAdded > len(cands) {
		maxAdded = len(cands)
	}
	for _, c := range cands[:maxAdded] {
		if maxTokens > 0 && ts.Ntokens() >= maxTokens {
			break
		}
		if len(c.String) == 1 {
			ts.AddByte(c.String[0], false)
		} else {
			ts.AddString(c.String)
		}
	}
}

// Run mines candidate substrings once, then evaluates the driver's full
// default configuration space for ntokens (see Configurations) using
// RunConfigs.
func Run(ctx context.Context, logger *zap.Logger, chunks func(yield func([]byte) bool), ntokens int) (*Result, error) {
	return RunConfigs(ctx, logger, chunks, ntokens, Configurations(ntokens))
}

// RunConfigs mines candidate substrings once, then evaluates configs
// concurrently, bounded by GOMAXPROCS via an errgroup.Group, returning the
// Result with the lowest total token count. chunks must be safe to
// invoke from multiple goroutines at once and repeatable: RunConfigs and
// every candidate configuration iterate it from the start independently,
// and several of those iterations run concurrently with each other.
// ChunkProvider.Chunks satisfies this by giving every call its own
// *rand.Rand rather than sharing mutable state across calls; a
// hand-written chunks function passed directly must make the same
// guarantee. Callers that need to restrict the sweep (e.g. a tokens.yaml
// override) pass a narrowed configs slice instead of
// Configurations(ntokens)'s full product.
func RunConfigs(ctx context.Context, logger *zap.Logger, chunks func(yield func([]byte) bool), ntokens int, configs []Config) (*Result, error) {
	topBytes := TopBytes(chunks)
	topStr := MineTopSubstrings(chunks, 10*ntokens)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var (
		mu   sync.Mutex
		best *Result
	)

	for _, cfg := range configs {
		cfg := cfg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := evalConfig(cfg, chunks, topBytes, topStr, ntokens)
			if err != nil {
				logger.Warn("configuration failed", zap.Stringer("config", cfg), zap.Error(err))
				return nil
			}
			logger.Info("configuration evaluated",
				zap.Stringer("config", cfg),
				zap.Int64("total_tokens", res.Stats.TotalTokens()),
			)
			mu.Lock()
			if best == nil || res.Stats.TotalTokens() < best.Stats.TotalTokens() {
				best = res
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if best == nil {
		return nil, fmt.Errorf("tokens: no configuration produced a usable tokenizer")
	}
	return best, nil
}

// evalConfig builds, trains, and evaluates a single configuration against
// chunks, returning its trained vocabulary and stats.
func evalConfig(cfg Config, chunks func(yield func([]byte) bool), topBytes, topStr []SubstringCount, ntokens int) (*Result, error) {
	filters := filtersFromNames(cfg.Filters)

	var ts *TokenSet
	var err error

	switch cfg.Seed {
	case "bpe":
		ts, err = BuildBPE(seedTokenSet(cfg.Fallback16), chunks, ntokens, filters)
	case "top_bytes+top_str", "top_str":
		maxTokens, maxAdded := ntokens, 0
		if cfg.Optimizer != "direct" {
			maxTokens, maxAdded = 0, int(float64(ntokens)*cfg.InitMult)
		}
		ts = seedTokenSet(cfg.Fallback16)
		if cfg.Seed == "top_bytes+top_str" {
			addCandidates(ts, topStr, maxTokens, maxAdded)
			addCandidates(ts, topBytes, maxTokens, maxAdded)
		} else {
			addCandidates(ts, topStr, maxTokens, maxAdded)
		}
		cfg.InitTokens = ts.Ntokens()

		switch cfg.Optimizer {
		case "direct":
		case "prune_simple":
			ts, err = PruneSimple(ts, chunks, ntokens, filters)
		case "prune_useful":
			ts, err = PruneUseful(ts, chunks, ntokens, cfg.TopToRemove, filters)
		default:
			return nil, fmt.Errorf("tokens: unknown optimizer %q", cfg.Optimizer)
		}
	default:
		return nil, fmt.Errorf("tokens: unknown seed strategy %q", cfg.Seed)
	}
	if err != nil {
		return nil, err
	}

	tok, err := NewOptimalTokenizer(ts)
	if err != nil {
		return nil, err
	}

	stats := NewTokenStats(ts)
	for chunk := range chunks {
		tok.TokenizeAndCount(filters.Apply(chunk), stats)
	}

	return &Result{Tokens: ts, Stats: stats, Config: cfg}, nil
}
