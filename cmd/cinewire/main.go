package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"cinewire/internal/config"
	"cinewire/internal/logger"
	"cinewire/internal/metrics"
	"cinewire/internal/news"
	"cinewire/internal/newsapi"
	"cinewire/internal/rss"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config error", "err", err)
		os.Exit(1)
	}

	client := newsapi.New(newsapi.Config{
		APIKey:            cfg.NewsAPIKey,
		BaseURL:           cfg.NewsAPIBaseURL,
		PageSize:          cfg.PageSize,
		Timeout:           cfg.RequestTimeout,
		RetryAttempts:     cfg.RetryAttempts,
		RetryDelay:        cfg.RetryDelay,
		CacheTTL:          cfg.CacheTTL,
		DailyBudget:       cfg.DailyRequestBudget,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})

	service := news.NewService(client)

	if cfg.EnableRSS {
		feeds, err := rss.LoadFeeds(cfg.FeedsConfigPath)
		if err != nil {
			logger.Error("loading RSS feeds config failed", "path", cfg.FeedsConfigPath, "err", err)
			os.Exit(1)
		}
		service.SetExtraSource(rss.NewSource(feeds))
		logger.Info("RSS source enabled", "feeds", len(feeds))
	}

	srv := &server{service: service, client: client, defaultLimit: cfg.DefaultLimit}

	if len(os.Args) > 1 && os.Args[1] == "dump" {
		srv.dump()
		return
	}

	srv.listen(cfg.HTTPPort)
}

type server struct {
	service      *news.Service
	client       *newsapi.Client
	defaultLimit int
}

// dump prints the three feeds once to stdout.
func (s *server) dump() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out := map[string][]news.Article{
		"actors":   s.service.GetActorNews(ctx, s.defaultLimit),
		"movies":   s.service.GetMovieNews(ctx, s.defaultLimit),
		"breaking": s.service.GetBreakingNews(ctx, s.defaultLimit),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding dump failed", "err", err)
		os.Exit(1)
	}
}

func (s *server) listen(port string) {
	http.HandleFunc("/news/actors", s.newsHandler(s.service.GetActorNews))
	http.HandleFunc("/news/movies", s.newsHandler(s.service.GetMovieNews))
	http.HandleFunc("/news/breaking", s.newsHandler(s.service.GetBreakingNews))
	http.HandleFunc("/health", s.healthHandler)
	http.HandleFunc("/metrics", s.metricsHandler)

	logger.Info("starting server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func (s *server) newsHandler(fetch func(context.Context, int) []news.Article) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := s.defaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		articles := fetch(r.Context(), limit)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(articles)
	}
}

func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()
	stats["search_budget"] = s.client.Budget().Stats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
