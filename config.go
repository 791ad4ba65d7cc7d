package tokens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SweepConfig narrows the driver's built-in configuration space for
// a generate run. Any field left empty keeps every value the driver would
// otherwise try for that dimension; a non-empty field restricts the sweep
// to exactly the listed values. Parsed from an optional tokens.yaml file
// passed to the CLI's --config flag.
type SweepConfig struct {
	// Filters lists the filter-name presets to try, e.g. [[], [caps],
	// [caps, words]]. A preset is matched by its exact ordered name list.
	Filters [][]string `yaml:"filters,omitempty"`
	// Fallback16 restricts which fallback alphabets to try: true for hex,
	// false for bits.
	Fallback16 []bool `yaml:"fallback16,omitempty"`
	// Seeds restricts the seed strategies to try, from "top_bytes+top_str",
	// "top_str", "bpe".
	Seeds []string `yaml:"seeds,omitempty"`
}

// LoadSweepConfig parses a tokens.yaml sweep-configuration file.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tokens: read sweep config %s: %w", path, err)
	}
	var cfg SweepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("tokens: parse sweep config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply narrows configs to the dimensions this SweepConfig restricts,
// leaving every other dimension untouched. A nil SweepConfig is the
// identity.
func (c *SweepConfig) Apply(configs []Config) []Config {
	if c == nil {
		return configs
	}
	out := configs
	if len(c.Filters) > 0 {
		out = filterConfigs(out, func(cfg Config) bool { return containsFilterPreset(c.Filters, cfg.Filters) })
	}
	if len(c.Fallback16) > 0 {
		out = filterConfigs(out, func(cfg Config) bool { return containsBool(c.Fallback16, cfg.Fallback16) })
	}
	if len(c.Seeds) > 0 {
		out = filterConfigs(out, func(cfg Config) bool { return containsString(c.Seeds, cfg.Seed) })
	}
	return out
}

func filterConfigs(configs []Config, keep func(Config) bool) []Config {
	out := make([]Config, 0, len(configs))
	for _, cfg := range configs {
		if keep(cfg) {
			out = append(out, cfg)
		}
	}
	return out
}

func containsFilterPreset(presets [][]string, preset []string) bool {
	for _, p := range presets {
		if stringSliceEqual(p, preset) {
			return true
		}
	}
	return false
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsBool(values []bool, v bool) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
