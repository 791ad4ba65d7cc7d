package tokens

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Reserved code points with a fixed meaning in the filter chain.
const (
	RuneCapitalize  = '' // capitalize-word marker
	RuneAllCaps     = '' // all-caps marker
	RuneEndOfWord   = '' // end-of-word marker
	RuneUnknown     = '' // unknown / reserved-strip replacement
	RuneDocBoundary = '' // document-boundary marker, used by the corpus merger

	reservedRangeLow  = ''
	reservedRangeHigh = ''
)

// Filter transforms a sequence of Unicode code points into another
// sequence of code points. Filters operate on bounded chunks of training
// or input data (never an unbounded stream), since Caps and Words both
// require lookahead across a whole alphabetic run to decide how to encode
// it.
type Filter interface {
	// Name identifies the filter in a serialized optimizer configuration.
	Name() string
	// Apply filters the input run stream, returning a new slice.
	Apply(in []rune) []rune
}

var lowerCaser = cases.Lower(language.Und)

// ReservedFilter replaces any code point in U+0010..U+0017 with
// RuneUnknown. It is idempotent: applying it twice is the same as
// applying it once, since its output value falls outside its own input
// range.
type ReservedFilter struct{}

func (ReservedFilter) Name() string { return "reserved" }

func (ReservedFilter) Apply(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		if r >= reservedRangeLow && r <= reservedRangeHigh {
			out[i] = RuneUnknown
		} else {
			out[i] = r
		}
	}
	return out
}

// CapsFilter rewrites maximal alphabetic runs that are capitalized or
// all-caps into a marker followed by the lowercased run, leaving mixed-
// case and non-alphabetic text untouched.
type CapsFilter struct{}

func (CapsFilter) Name() string { return "caps" }

func (CapsFilter) Apply(in []rune) []rune {
	out := make([]rune, 0, len(in))
	i := 0
	for i < len(in) {
		if !unicode.IsLetter(in[i]) {
			out = append(out, in[i])
			i++
			continue
		}
		j := i
		for j < len(in) && unicode.IsLetter(in[j]) {
			j++
		}
		run := in[i:j]
		switch classifyRun(run) {
		case runCapitalized:
			out = append(out, RuneCapitalize)
			out = append(out, []rune(lowerCaser.String(string(run)))...)
		case runAllCaps:
			out = append(out, RuneAllCaps)
			out = append(out, []rune(lowerCaser.String(string(run)))...)
		default:
			out = append(out, run...)
		}
		i = j
	}
	return out
}

type runCase int

const (
	runMixed runCase = iota
	runCapitalized
	runAllCaps
)

// classifyRun implements the Caps rule: W[0] uppercase with the
// rest lowercase is "capitalized"; every character uppercase is
// "all-caps"; anything else is left verbatim. A single-character run that
// is uppercase counts as capitalized, matching "W[1:] is all lowercase"
// vacuously holding for an empty tail.
func classifyRun(run []rune) runCase {
	if len(run) == 0 {
		return runMixed
	}
	if unicode.IsUpper(run[0]) && allLower(run[1:]) {
		return runCapitalized
	}
	if allUpper(run) {
		return runAllCaps
	}
	return runMixed
}

func allLower(run []rune) bool {
	for _, r := range run {
		if unicode.IsLetter(r) && !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func allUpper(run []rune) bool {
	for _, r := range run {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// WordsFilter turns unambiguous inter-word spaces into end-of-word
// markers. After every maximal alphabetic run it emits
// RuneEndOfWord once; if that run is immediately followed by a single
// space and then another alphabetic run (or a Caps marker introducing
// one), the space is elided since RuneEndOfWord already delimits the
// word boundary.
type WordsFilter struct{}

func (WordsFilter) Name() string { return "words" }

func (WordsFilter) Apply(in []rune) []rune {
	out := make([]rune, 0, len(in))
	i := 0
	for i < len(in) {
		if !unicode.IsLetter(in[i]) {
			out = append(out, in[i])
			i++
			continue
		}
		j := i
		for j < len(in) && unicode.IsLetter(in[j]) {
			j++
		}
		out = append(out, in[i:j]...)
		out = append(out, RuneEndOfWord)
		i = j

		if i < len(in) && in[i] == ' ' && startsWordLike(in, i+1) {
			i++ // elide the space; RuneEndOfWord already marks the boundary
		}
	}
	return out
}

// startsWordLike reports whether position i in in begins a new alphabetic
// run, possibly via a Caps marker.
func startsWordLike(in []rune, i int) bool {
	if i >= len(in) {
		return false
	}
	r := in[i]
	if r == RuneCapitalize || r == RuneAllCaps {
		return true
	}
	return unicode.IsLetter(r)
}

// FilterChain applies a fixed, ordered list of filters left to right.
type FilterChain struct {
	filters []Filter
}

// NewFilterChain returns a chain applying filters in the given order.
func NewFilterChain(filters ...Filter) *FilterChain {
	return &FilterChain{filters: filters}
}

// Names returns the chain's filter names, in application order, for
// recording in a saved optimizer configuration.
func (c *FilterChain) Names() []string {
	names := make([]string, len(c.filters))
	for i, f := range c.filters {
		names[i] = f.Name()
	}
	return names
}

// Apply decodes data as UTF-8, runs it through each filter in order, and
// re-encodes the result as UTF-8. Non-UTF-8 input bypasses the chain
// entirely and is returned unchanged, since filters are only meaningful
// over valid Unicode text.
func (c *FilterChain) Apply(data []byte) []byte {
	if len(c.filters) == 0 || !utf8.Valid(data) {
		return data
	}
	runes := []rune(string(data))
	for _, f := range c.filters {
		runes = f.Apply(runes)
	}
	return []byte(string(runes))
}
