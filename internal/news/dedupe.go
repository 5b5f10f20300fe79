package news

import "strings"

// dedupeKeyLen bounds the derived key; titles identical in their first
// 50 alphanumeric characters collapse even if they diverge later.
const dedupeKeyLen = 50

// dedupeKey normalizes a title for near-duplicate detection: lowercase,
// ASCII letters and digits only, truncated. Insensitive to case,
// whitespace and punctuation differences.
func dedupeKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= dedupeKeyLen {
				break
			}
		}
	}
	return b.String()
}

// Dedupe collapses near-identical titles within one batch. First
// occurrence wins; order is preserved. Running it on its own output is a
// no-op.
func Dedupe(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]Article, 0, len(articles))

	for _, article := range articles {
		key := dedupeKey(article.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, article)
	}
	return unique
}
