// Package matcher ranks the windows of a snapshot against a query.
package matcher

import (
	"sort"
	"strings"

	"github.com/chazuruo/hyprwin/internal/window"
)

// ClassWeight multiplies the class score in the combined score. The class
// identifies the application and is stable; titles are noisy.
const ClassWeight = 10

// Options bound the result list.
type Options struct {
	// MaxEntries is the maximum number of results.
	MaxEntries int
	// ScoreThreshold is the combined score a window must strictly exceed.
	ScoreThreshold int
}

// IconResolver maps a window to an icon name.
type IconResolver interface {
	Icon(class string, pid int) string
}

// Candidate is a window that passed the threshold, before truncation.
type Candidate struct {
	Window     window.Record
	ClassScore int
	TitleScore int
	Score      int
}

// Result is one ranked window with its icon.
type Result struct {
	Window window.Record
	Score  int
	Icon   string
}

// Matcher ranks one snapshot. It keeps no state between queries and is safe
// for concurrent use as long as its scorer and resolver are.
type Matcher struct {
	windows *window.Snapshot
	icons   IconResolver
	scorer  Scorer
	opts    Options
}

// New creates a matcher. A nil scorer selects SmartCaseScorer; a nil icon
// resolver leaves Result.Icon empty.
func New(windows *window.Snapshot, icons IconResolver, scorer Scorer, opts Options) *Matcher {
	if scorer == nil {
		scorer = SmartCaseScorer{}
	}
	return &Matcher{
		windows: windows,
		icons:   icons,
		scorer:  scorer,
		opts:    opts,
	}
}

// Rank scores every titled window and returns those whose combined score
// exceeds the threshold, best first. Windows with equal scores keep snapshot
// order. No truncation is applied.
func (m *Matcher) Rank(query string) []Candidate {
	var candidates []Candidate

	for _, w := range m.windows.Records() {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}

		classScore := m.scorer.Score(w.Class, query)
		titleScore := m.scorer.Score(w.Title, query)
		score := classScore*ClassWeight + titleScore

		if score > m.opts.ScoreThreshold {
			candidates = append(candidates, Candidate{
				Window:     w,
				ClassScore: classScore,
				TitleScore: titleScore,
				Score:      score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Match ranks, keeps at most MaxEntries results and resolves an icon for each.
func (m *Matcher) Match(query string) []Result {
	candidates := m.Rank(query)

	if m.opts.MaxEntries >= 0 && len(candidates) > m.opts.MaxEntries {
		candidates = candidates[:m.opts.MaxEntries]
	}

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Window: c.Window, Score: c.Score}
		if m.icons != nil {
			results[i].Icon = m.icons.Icon(c.Window.Class, c.Window.PID)
		}
	}
	return results
}
