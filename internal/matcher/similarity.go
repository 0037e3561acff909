package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer compares user input against candidate strings. Scores are in [0,100].
type Scorer interface {
	// Partial scores the shorter string against its best-aligned window in the longer one.
	Partial(a, b string) int
	// Combined averages Partial and token-sort similarity.
	Combined(a, b string) int
}

// FuzzyScorer is the default Scorer, built on normalized Levenshtein similarity.
type FuzzyScorer struct{}

// Partial implements Scorer.
func (FuzzyScorer) Partial(a, b string) int {
	return PartialRatio(a, b)
}

// Combined implements Scorer. The mean is rounded half up.
func (FuzzyScorer) Combined(a, b string) int {
	return (PartialRatio(a, b) + TokenSortRatio(a, b) + 1) / 2
}

// Ratio is the edit-distance similarity of a and b scaled to 0-100.
// An empty side scores 0.
func Ratio(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if a == b {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(max(la, lb)))))
}

// PartialRatio slides the shorter string over the longer one and keeps the best window Ratio.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}
	if len(short) == len(long) {
		return Ratio(a, b)
	}

	s := string(short)
	best := 0
	for i := 0; i+len(short) <= len(long); i++ {
		score := Ratio(s, string(long[i:i+len(short)]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio compares a and b after sorting their whitespace-separated tokens.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
