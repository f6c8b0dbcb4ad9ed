// Package filter matches snippet keys against user-supplied patterns and
// ranks near-miss candidates for "did you mean" suggestions.
package filter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

type FilterMode int

const (
	FilterModeNone FilterMode = iota
	FilterModeExact
	FilterModeContains
	FilterModeRegex
	FilterModeFuzzy
)

// ParseMode maps a mode name from the command line to a FilterMode.
func ParseMode(name string) (FilterMode, error) {
	switch strings.ToLower(name) {
	case "", "contains":
		return FilterModeContains, nil
	case "exact":
		return FilterModeExact, nil
	case "regex":
		return FilterModeRegex, nil
	case "fuzzy":
		return FilterModeFuzzy, nil
	default:
		return FilterModeNone, fmt.Errorf("unknown match mode '%s' (want exact, contains, regex or fuzzy)", name)
	}
}

type StringFilter struct {
	Pattern string
	Mode    FilterMode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode FilterMode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == FilterModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	if f.Mode == FilterModeNone {
		return true
	}

	switch f.Mode {
	case FilterModeExact:
		return strings.EqualFold(s, f.Pattern)
	case FilterModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case FilterModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case FilterModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// Keys returns the subset of keys matching the filter, order preserved.
func (f *StringFilter) Keys(keys []string) []string {
	matched := make([]string, 0, len(keys))
	for _, k := range keys {
		if f.Match(k) {
			matched = append(matched, k)
		}
	}
	return matched
}

// FuzzyMatch reports whether the characters of pattern occur in text in
// order.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	return fuzzyMatchRecursive(pattern, text, 0, 0)
}

func fuzzyMatchRecursive(pattern, text string, pIdx, tIdx int) bool {
	if pIdx >= len(pattern) {
		return true
	}
	if tIdx >= len(text) {
		return false
	}

	if pattern[pIdx] == text[tIdx] {
		remainingChars := len(text) - tIdx - 1
		remainingPattern := len(pattern) - pIdx - 1

		if remainingPattern == 0 {
			return true
		}

		if remainingChars >= remainingPattern {
			return fuzzyMatchRecursive(pattern, text, pIdx+1, tIdx+1)
		}
	}

	return fuzzyMatchRecursive(pattern, text, pIdx, tIdx+1)
}

// Suggest returns up to max candidates similar to pattern, closest first.
// Candidates below half similarity are dropped.
func Suggest(pattern string, candidates []string, max int) []string {
	type ranked struct {
		key      string
		distance int
	}

	scored := make([]ranked, 0, len(candidates))
	for _, c := range candidates {
		distance := LevenshteinDistance(pattern, c)
		maxLen := len(pattern)
		if len(c) > maxLen {
			maxLen = len(c)
		}
		if maxLen == 0 {
			continue
		}
		similarity := 1.0 - float64(distance)/float64(maxLen)
		if similarity >= 0.5 {
			scored = append(scored, ranked{c, distance})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].distance != scored[j].distance {
			return scored[i].distance < scored[j].distance
		}
		return scored[i].key < scored[j].key
	})

	if max > 0 && len(scored) > max {
		scored = scored[:max]
	}

	suggestions := make([]string, 0, len(scored))
	for _, s := range scored {
		suggestions = append(suggestions, s.key)
	}
	return suggestions
}

func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	previousRow := make([]int, len(s2)+1)
	currentRow := make([]int, len(s2)+1)

	for i := 0; i <= len(s2); i++ {
		previousRow[i] = i
	}

	for i := 0; i < len(s1); i++ {
		currentRow[0] = i + 1

		for j := 0; j < len(s2); j++ {
			cost := 1
			if unicode.ToLower(rune(s1[i])) == unicode.ToLower(rune(s2[j])) {
				cost = 0
			}

			deletion := currentRow[j] + 1
			insertion := previousRow[j+1] + 1
			substitution := previousRow[j] + cost

			currentRow[j+1] = min(min(deletion, insertion), substitution)
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(s2)]
}
