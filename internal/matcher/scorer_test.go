package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartCaseScorer_NoMatch(t *testing.T) {
	s := SmartCaseScorer{}

	tests := []struct {
		name      string
		candidate string
		query     string
	}{
		{"empty query", "firefox", ""},
		{"empty candidate", "", "fire"},
		{"not a subsequence", "kitty", "firefox"},
		{"out of order", "abc", "cba"},
		{"uppercase requires exact case", "firefox", "Fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, s.Score(tt.candidate, tt.query))
		})
	}
}

func TestSmartCaseScorer_Matches(t *testing.T) {
	s := SmartCaseScorer{}

	assert.Positive(t, s.Score("firefox", "firefox"))
	assert.Positive(t, s.Score("Firefox", "firefox"), "lowercase query ignores case")
	assert.Positive(t, s.Score("Mozilla Firefox", "Fire"), "uppercase query matches exact case")
}

func TestSmartCaseScorer_NeverNegative(t *testing.T) {
	s := SmartCaseScorer{}
	long := "a very long window title that only barely contains the letter zed at the end z"
	assert.GreaterOrEqual(t, s.Score(long, "z"), 0)
}

func TestSmartCaseScorer_PrefersLeadingMatch(t *testing.T) {
	s := SmartCaseScorer{}
	assert.Greater(t, s.Score("fire", "fire"), s.Score("xxfire", "fire"))
}

func TestIsSubsequence(t *testing.T) {
	assert.True(t, isSubsequence("Mozilla Firefox", "MF"))
	assert.True(t, isSubsequence("abc", ""))
	assert.False(t, isSubsequence("mozilla firefox", "MF"))
	assert.True(t, isSubsequence("ÜberSicht", "ÜS"))
}
