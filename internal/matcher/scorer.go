package matcher

import (
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Scorer rates how well query fuzzily matches candidate. Higher is better;
// 0 means no match. Implementations must be safe for concurrent use.
type Scorer interface {
	Score(candidate, query string) int
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(candidate, query string) int

// Score implements Scorer.
func (f ScorerFunc) Score(candidate, query string) int { return f(candidate, query) }

// SmartCaseScorer is a subsequence scorer that ignores case unless the query
// contains an upper-case letter, in which case letters must match exactly.
// Contiguous runs, word starts and camel-case humps score higher.
type SmartCaseScorer struct{}

// Score implements Scorer. Matches that the underlying scorer rates below
// zero (a short query buried in a long string) are reported as 0.
func (SmartCaseScorer) Score(candidate, query string) int {
	if query == "" || candidate == "" {
		return 0
	}

	if hasUpper(query) && !isSubsequence(candidate, query) {
		return 0
	}

	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0
	}
	if matches[0].Score < 0 {
		return 0
	}
	return matches[0].Score
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// isSubsequence reports whether every rune of needle appears in haystack in
// order, compared exactly.
func isSubsequence(haystack, needle string) bool {
	for _, r := range haystack {
		if needle == "" {
			return true
		}
		first, size := utf8.DecodeRuneInString(needle)
		if r == first {
			needle = needle[size:]
		}
	}
	return needle == ""
}
