package news

import (
	"strings"

	"cinewire/internal/newsapi"
)

// removedSentinel is what the provider substitutes for withdrawn
// articles. Matched by containment: it shows up embedded in otherwise
// intact titles too.
const removedSentinel = "[Removed]"

// minRelevanceScore is the relevance bar: only articles scoring strictly
// above it are shown. Fixed constant, not configuration.
const minRelevanceScore = 20

// isEligible reports whether a raw article has the fields the
// presentation layer requires. Ineligible articles are dropped before
// scoring.
func isEligible(article newsapi.Article) bool {
	if article.URLToImage == "" {
		return false
	}
	if article.Title == "" || strings.Contains(article.Title, removedSentinel) {
		return false
	}
	if article.Description == "" {
		return false
	}
	return true
}

// qualifies applies the post-scoring relevance cut. Disqualified (-1)
// and weakly on-topic (0-20) articles are both excluded.
func qualifies(score int) bool {
	return score > minRelevanceScore
}
