package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(baseURL string, cacheTTL time.Duration, budget int) *Client {
	return New(Config{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		PageSize:          100,
		Timeout:           5 * time.Second,
		RetryAttempts:     1,
		CacheTTL:          cacheTTL,
		DailyBudget:       budget,
		RequestsPerSecond: 1000,
	})
}

func TestSearchBuildsExpectedRequest(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[{"source":{"id":"","name":"Variety"},"title":"A premiere","description":"desc","url":"https://example.com","urlToImage":"https://example.com/i.jpg","publishedAt":"2025-08-30T10:00:00Z"}]}`))
	}))
	defer srv.Close()

	articles, err := testClient(srv.URL, 0, 0).Search(context.Background(), `("movie")`)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if gotPath != "/everything" {
		t.Errorf("path = %q, want /everything", gotPath)
	}
	want := map[string]string{
		"q":        `("movie")`,
		"language": "en",
		"sortBy":   "publishedAt",
		"pageSize": "100",
		"apiKey":   "test-key",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Source.Name != "Variety" {
		t.Errorf("source name = %q", articles[0].Source.Name)
	}
}

func TestSearchErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL, 0, 0).Search(context.Background(), "q"); err == nil {
		t.Error("expected error for non-ok envelope, got nil")
	}
}

func TestSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL, 0, 0).Search(context.Background(), "q"); err == nil {
		t.Error("expected error for HTTP 500, got nil")
	}
}

func TestSearchOkWithoutArticlesIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","totalResults":0}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL, 0, 0).Search(context.Background(), "q"); err == nil {
		t.Error("expected error for ok status without articles list, got nil")
	}
}

func TestSearchCachesPerQuery(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, time.Minute, 0)
	for i := 0; i < 3; i++ {
		if _, err := c.Search(context.Background(), "same query"); err != nil {
			t.Fatalf("Search %d returned error: %v", i, err)
		}
	}

	if requests != 1 {
		t.Errorf("expected 1 upstream request with warm cache, got %d", requests)
	}
}

func TestSearchRespectsDailyBudget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 0, 1)
	if _, err := c.Search(context.Background(), "first"); err != nil {
		t.Fatalf("first request should fit the budget: %v", err)
	}
	if _, err := c.Search(context.Background(), "second"); err == nil {
		t.Error("expected budget exhaustion error on second request")
	}
}
