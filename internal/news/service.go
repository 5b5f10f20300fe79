// Package news scores, filters, deduplicates and selects entertainment
// news articles fetched from a full-text search provider.
package news

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"cinewire/internal/logger"
	"cinewire/internal/metrics"
	"cinewire/internal/newsapi"
)

// Searcher is the consumed search-provider contract.
type Searcher interface {
	Search(ctx context.Context, query string) ([]newsapi.Article, error)
}

// ExtraSource supplies additional raw articles (the RSS trade-press
// feeds) that flow through the same scoring pipeline.
type ExtraSource interface {
	Fetch(ctx context.Context) ([]newsapi.Article, error)
}

// Service is the news aggregation pipeline. Every call is independent
// and stateless; only the rand source is shared, guarded by a mutex so
// the two category fetches inside GetBreakingNews can run concurrently.
type Service struct {
	search Searcher
	extra  ExtraSource

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(search Searcher) *Service {
	return &Service{
		search: search,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the random source. Tests inject a seeded source for
// deterministic selection.
func (s *Service) SetRand(r *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = r
}

// SetExtraSource enables the supplementary article source.
func (s *Service) SetExtraSource(src ExtraSource) {
	s.extra = src
}

// GetActorNews returns up to limit actor/celebrity articles. Failures
// degrade to an empty list, never an error.
func (s *Service) GetActorNews(ctx context.Context, limit int) []Article {
	return s.categoryNews(ctx, CategoryActors, limit)
}

// GetMovieNews returns up to limit film-industry articles.
func (s *Service) GetMovieNews(ctx context.Context, limit int) []Article {
	return s.categoryNews(ctx, CategoryMovies, limit)
}

type scoredArticle struct {
	raw   newsapi.Article
	score int
}

func (s *Service) categoryNews(ctx context.Context, category Category, limit int) []Article {
	startTime := time.Now()
	defer func() {
		metrics.Global.RecordPipelineTime(time.Since(startTime))
	}()

	if limit <= 0 {
		return []Article{}
	}

	raw, err := s.search.Search(ctx, category.Query())
	if err != nil {
		logger.Error("news search failed", "category", category, "err", err)
		metrics.Global.IncrementFetchFailures()
		metrics.Global.SetError(err.Error())
		return []Article{}
	}
	metrics.Global.SetLastRun()
	raw = append(raw, s.extraArticles(ctx)...)

	scored := scoreAndFilter(raw, category)

	// Highest relevance first; ties keep upstream order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	window := headWindow(len(scored), limit, selectFactorSingle)
	articles := make([]Article, 0, window)
	for i, sc := range scored[:window] {
		articles = append(articles, mapArticle(sc.raw, i))
	}

	s.shuffle(articles)
	if len(articles) > limit {
		articles = articles[:limit]
	}

	logger.Debug("category news selected", "category", category,
		"candidates", len(scored), "returned", len(articles))
	return articles
}

// GetBreakingNews merges both category feeds: fetched concurrently,
// concatenated actors-first, deduplicated, ordered by recency, then
// shuffle-selected. One failing category still returns the other's
// articles.
func (s *Service) GetBreakingNews(ctx context.Context, limit int) []Article {
	if limit <= 0 {
		return []Article{}
	}

	var actorNews, movieNews []Article
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		actorNews = s.GetActorNews(ctx, limit)
	}()
	go func() {
		defer wg.Done()
		movieNews = s.GetMovieNews(ctx, limit)
	}()
	wg.Wait()

	combined := make([]Article, 0, len(actorNews)+len(movieNews))
	combined = append(combined, actorNews...)
	combined = append(combined, movieNews...)

	unique := Dedupe(combined)
	metrics.Global.IncrementDuplicatesFilteredBy(int64(len(combined) - len(unique)))

	// Most recent first; ties keep input order.
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].publishedTime().After(unique[j].publishedTime())
	})

	window := headWindow(len(unique), limit, selectFactorMerged)
	top := unique[:window]
	s.shuffle(top)
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// scoreAndFilter applies the structural filter, scores survivors for the
// category and keeps only those above the relevance bar.
func scoreAndFilter(raw []newsapi.Article, category Category) []scoredArticle {
	scored := make([]scoredArticle, 0, len(raw))
	for _, article := range raw {
		metrics.Global.IncrementArticlesProcessed()

		if !isEligible(article) {
			metrics.Global.IncrementIneligibleFiltered()
			continue
		}

		score := Score(article, category)
		if score == ScoreDisqualified {
			metrics.Global.IncrementBlacklisted()
			continue
		}
		if !qualifies(score) {
			metrics.Global.IncrementBelowThreshold()
			continue
		}

		scored = append(scored, scoredArticle{raw: article, score: score})
	}
	return scored
}

func (s *Service) extraArticles(ctx context.Context) []newsapi.Article {
	if s.extra == nil {
		return nil
	}
	articles, err := s.extra.Fetch(ctx)
	if err != nil {
		logger.Warn("supplementary source failed", "err", err)
		return nil
	}
	return articles
}

func (s *Service) shuffle(articles []Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shuffle(s.rng, articles)
}
