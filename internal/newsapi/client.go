// Package newsapi is a client for the NewsAPI.org full-text search
// endpoint used as the raw article source for the news pipeline.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"cinewire/internal/cache"
	"cinewire/internal/logger"
	"cinewire/internal/ratelimit"
	"cinewire/internal/retry"
)

// Source is the outlet an article came from.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is a raw search result exactly as the provider returns it.
// Any field may be empty; titles of withdrawn articles carry the
// "[Removed]" sentinel.
type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// response is the provider envelope. On failure Status is "error" and
// Code/Message describe the problem.
type response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	Articles     []Article `json:"articles"`
}

type Config struct {
	APIKey            string
	BaseURL           string
	PageSize          int
	Timeout           time.Duration
	RetryAttempts     int
	RetryDelay        time.Duration
	CacheTTL          time.Duration
	DailyBudget       int
	RequestsPerSecond float64
}

type Client struct {
	apiKey   string
	baseURL  string
	pageSize int
	http     *http.Client
	limiter  *rate.Limiter
	budget   *ratelimit.Budget
	cache    *cache.Cache
	cacheTTL time.Duration
	retry    retry.Config
}

func New(cfg Config) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  cfg.BaseURL,
		pageSize: pageSize,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		budget:   ratelimit.NewBudget(cfg.DailyBudget),
		cache:    cache.New(),
		cacheTTL: cfg.CacheTTL,
		retry: retry.Config{
			MaxAttempts: attempts,
			Delay:       cfg.RetryDelay,
			Backoff:     true,
		},
	}
}

// Budget exposes the daily quota tracker for monitoring.
func (c *Client) Budget() *ratelimit.Budget {
	return c.budget
}

// Search runs a full-text query against /everything and returns the raw
// articles. Results are cached per query for the configured TTL so UI
// refreshes reshuffle locally without consuming provider quota.
func (c *Client) Search(ctx context.Context, query string) ([]Article, error) {
	if c.cacheTTL > 0 {
		if cached, ok := c.cache.Get(query); ok {
			if articles, ok := cached.([]Article); ok {
				logger.Debug("search cache hit", "query", query)
				c.budget.RecordCacheHit()
				return articles, nil
			}
		}
	}

	if err := c.budget.Use(); err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var articles []Article
	err := retry.WithRetry(ctx, c.retry, func() error {
		var err error
		articles, err = c.search(ctx, query)
		return err
	})
	if err != nil {
		return nil, err
	}

	if c.cacheTTL > 0 {
		c.cache.Set(query, articles, c.cacheTTL)
	}
	return articles, nil
}

func (c *Client) search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(c.pageSize))
	params.Set("apiKey", c.apiKey)

	endpoint := c.baseURL + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request: HTTP %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if body.Status != "ok" {
		return nil, fmt.Errorf("provider error %s: %s", body.Code, body.Message)
	}
	if body.Articles == nil {
		return nil, fmt.Errorf("provider returned ok status without articles")
	}

	logger.Debug("search ok", "query", query, "results", len(body.Articles))
	return body.Articles, nil
}
