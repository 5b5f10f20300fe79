package news

import (
	"strings"

	"cinewire/internal/newsapi"
)

// ScoreDisqualified marks an article containing blacklisted content.
// All other scores are non-negative.
const ScoreDisqualified = -1

// Score weights. Title mentions outrank description mentions because a
// headline mention is a stronger relevance signal than an incidental one.
const (
	trustedSourceBonus = 30
	contentKeywordHit  = 10
	titleKeywordHit    = 15
)

// Score computes the relevance of a raw article for a category.
//
// A single blacklist keyword anywhere in title+description disqualifies
// the article outright; no amount of on-topic signal overrides it.
// Otherwise each distinct vocabulary keyword found in the combined text
// adds 10, each found in the title adds a further 15 (stacking with the
// content hit for the same keyword), and a trusted outlet adds 30.
func Score(article newsapi.Article, category Category) int {
	title := strings.ToLower(article.Title)
	content := title + " " + strings.ToLower(article.Description)

	if containsKeyword(content, blacklistKeywords) {
		return ScoreDisqualified
	}

	score := 0

	if isTrustedSource(article.Source.Name) {
		score += trustedSourceBonus
	}

	for _, keyword := range category.Keywords() {
		lower := strings.ToLower(keyword)
		if strings.Contains(content, lower) {
			score += contentKeywordHit
		}
		if strings.Contains(title, lower) {
			score += titleKeywordHit
		}
	}

	return score
}
