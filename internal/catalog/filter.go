package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode selects how user input is matched against entries.
type MatchMode string

const (
	// MatchSubstring keeps entries whose label or description contains the input.
	MatchSubstring MatchMode = "substring"

	// MatchFuzzy keeps entries whose label or description fuzzily match the input.
	MatchFuzzy MatchMode = "fuzzy"
)

// ParseMatchMode maps a setting value to a MatchMode; anything unknown is substring.
func ParseMatchMode(s string) MatchMode {
	if MatchMode(s) == MatchFuzzy {
		return MatchFuzzy
	}
	return MatchSubstring
}

// Filter returns the entries whose label or short description contains input,
// ignoring case. Empty input keeps every entry. Input order is preserved.
func Filter(entries []Entry, input string) []Entry {
	needle := strings.ToLower(input)

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Label), needle) ||
			strings.Contains(strings.ToLower(e.ShortDesc), needle) {
			out = append(out, e)
		}
	}
	return out
}

// SortByLabel returns a copy of entries in ascending label order.
func SortByLabel(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

// RankFuzzy returns the entries whose label or short description fuzzily
// matches input, best match first. Empty input returns a copy of entries.
func RankFuzzy(entries []Entry, input string) []Entry {
	if input == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.Label + " " + e.ShortDesc
	}

	ranks := fuzzy.RankFindFold(input, targets)
	sort.Stable(ranks)

	out := make([]Entry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}

// Suggest applies mode and returns entries in presentation order: label order
// for substring matches, rank order for fuzzy matches.
func Suggest(entries []Entry, input string, mode MatchMode) []Entry {
	if mode == MatchFuzzy {
		return RankFuzzy(entries, input)
	}
	return SortByLabel(Filter(entries, input))
}
