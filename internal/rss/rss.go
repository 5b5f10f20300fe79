// Package rss is an optional supplementary article source: entertainment
// trade-press feeds parsed into the same raw shape the search provider
// returns, so the scoring pipeline treats both identically.
package rss

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"cinewire/internal/logger"
	"cinewire/internal/newsapi"
)

// FeedsConfig is YAML config structure
// feeds:
//   - https://...
type FeedsConfig struct {
	Feeds []string `yaml:"feeds"`
}

// LoadFeeds reads the RSS feeds list from a YAML file.
func LoadFeeds(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg.Feeds, nil
}

// Source fetches configured feeds and maps items to raw articles.
type Source struct {
	feeds  []string
	parser *gofeed.Parser
}

func NewSource(feeds []string) *Source {
	return &Source{
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

// Fetch downloads and parses all feeds. A failing feed is logged and
// skipped; the rest still contribute articles.
func (s *Source) Fetch(ctx context.Context) ([]newsapi.Article, error) {
	var articles []newsapi.Article
	successCount := 0

	for _, feedURL := range s.feeds {
		feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			logger.Warn("error parsing RSS feed", "url", feedURL, "err", err)
			continue
		}
		for _, item := range feed.Items {
			articles = append(articles, mapItem(feed, item))
		}
		successCount++
		logger.Debug("loaded RSS feed", "url", feedURL, "items", len(feed.Items))
	}

	logger.Info("processed RSS feeds", "ok", successCount, "total", len(s.feeds))
	return articles, nil
}

// mapItem converts a feed item into the provider article shape.
func mapItem(feed *gofeed.Feed, item *gofeed.Item) newsapi.Article {
	published := item.Published
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
	}

	author := ""
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		author = item.Authors[0].Name
	}

	return newsapi.Article{
		Source:      newsapi.Source{Name: feed.Title},
		Author:      author,
		Title:       strings.TrimSpace(item.Title),
		Description: StripHTML(item.Description),
		URL:         item.Link,
		URLToImage:  itemImage(item),
		PublishedAt: published,
	}
}

// itemImage picks an image URL from the item's image or enclosures.
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}

// StripHTML flattens feed description markup to plain text. Feed
// descriptions routinely carry tags and entities the scorer should not
// see.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return collapseSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}
	return collapseSpace(doc.Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
