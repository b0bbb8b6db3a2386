package colorcode

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestionDistance bounds the edit distance of a typo suggestion.
const maxSuggestionDistance = 2

// closestColorName finds the known color name closest to target.
// Subsequence matches ("yelow" in "yellow") win; otherwise the name with the
// smallest edit distance is used when it is close enough to be a typo.
func closestColorName(target string) string {
	if target == "" {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, knownNames)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", maxSuggestionDistance+1
	for _, name := range knownNames {
		d := fuzzy.LevenshteinDistance(target, name)
		if d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}
