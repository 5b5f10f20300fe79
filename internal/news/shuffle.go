package news

import "math/rand"

// Head window factors for randomized selection: every shown article
// cleared the relevance bar and sits in a bounded high-relevance band,
// but refreshes don't repeat the identical ranked list.
const (
	selectFactorSingle = 3 // single-category feeds
	selectFactorMerged = 2 // merged breaking-news view
)

// shuffle applies a Fisher–Yates permutation in place: scan from the
// end, swapping each position with a uniformly chosen one at or before
// it.
func shuffle(r *rand.Rand, articles []Article) {
	for i := len(articles) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		articles[i], articles[j] = articles[j], articles[i]
	}
}

// headWindow bounds a ranked pool to its top limit*factor entries.
func headWindow(poolSize, limit, factor int) int {
	window := limit * factor
	if window > poolSize {
		window = poolSize
	}
	return window
}
