package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/wikihop-cli/internal/core/domain"
)

// shortTitleWords is the word count at or below which a title earns the
// focus bonus. Short, focused titles make better connective tissue than
// long compound ones.
const shortTitleWords = 4

// titleWords tokenises a title for overlap scoring: lower-cased, with
// underscores treated as spaces.
func titleWords(title string) map[string]struct{} {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(title), "_", " "))
	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}

// Score rates a candidate neighbour's relevance to the target title:
// the number of words the two share, plus a flat bonus of one for short
// titles. Pure function; the ranking policy lives here so it can be
// tested apart from the traversal loop.
func Score(candidate, target string) int {
	return scoreAgainst(candidate, titleWords(target))
}

// scoreAgainst is Score with the target tokenised once up front, for the
// expansion loop that rates hundreds of candidates per node.
func scoreAgainst(candidate string, target map[string]struct{}) int {
	score := 0
	for word := range titleWords(candidate) {
		if _, ok := target[word]; ok {
			score++
		}
	}
	if len(strings.Fields(candidate)) <= shortTitleWords {
		score++
	}
	return score
}

// scoredCandidate pairs a neighbour with its relevance score.
type scoredCandidate struct {
	topic domain.Topic
	score int
}

// rankCandidates orders candidates by descending score, ties broken by
// ascending title length, and truncates to keep. The cap is a deliberate
// pruning policy: expanding every neighbour equally degrades to unbounded
// fan-out on nodes with hundreds of edges.
func rankCandidates(candidates []scoredCandidate, keep int) []domain.Topic {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return len(candidates[i].topic) < len(candidates[j].topic)
	})

	if len(candidates) > keep {
		candidates = candidates[:keep]
	}
	top := make([]domain.Topic, len(candidates))
	for i, c := range candidates {
		top[i] = c.topic
	}
	return top
}
