package match

import "strings"

const (
	baseScore          = 1
	locationBonus      = 3
	majorKeywordBonus  = 2
	maxMajorMatches    = 3
	minMajorKeywordLen = 3
)

type Breakdown struct {
	Score           int
	LocationMatched bool
	MajorMatchCount int
}

// ScoreText scores an already-normalized haystack against the visitor's
// location tokens and major keywords.
func ScoreText(haystack string, locationTokens, majorKeywords []string) Breakdown {
	b := Breakdown{Score: baseScore}

	if len(locationTokens) > 0 && containsAny(haystack, locationTokens) {
		b.LocationMatched = true
		b.Score += locationBonus
	}

	matched := 0
	for _, kw := range majorKeywords {
		if len(kw) >= minMajorKeywordLen && strings.Contains(haystack, kw) {
			matched++
		}
	}
	b.MajorMatchCount = min(matched, maxMajorMatches)
	b.Score += b.MajorMatchCount * majorKeywordBonus

	return b
}
