package news

import (
	"fmt"
	"time"

	"cinewire/internal/newsapi"
)

// Article is the normalized shape handed to the presentation layer.
// Title, Description and SourceName are never empty: absent upstream
// values are substituted with placeholders. ID is unique only within
// one returned batch.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt"`
	SourceName  string `json:"sourceName"`
	Author      string `json:"author,omitempty"`
}

// mapArticle normalizes a raw article. index is the article's ordinal
// position within the batch being mapped.
func mapArticle(raw newsapi.Article, index int) Article {
	title := raw.Title
	if title == "" {
		title = "No Title"
	}
	description := raw.Description
	if description == "" {
		description = "No description available."
	}
	sourceName := raw.Source.Name
	if sourceName == "" {
		sourceName = "Unknown Source"
	}

	return Article{
		ID:          fmt.Sprintf("%s-%d", raw.PublishedAt, index),
		Title:       title,
		Description: description,
		URL:         raw.URL,
		URLToImage:  raw.URLToImage,
		PublishedAt: raw.PublishedAt,
		SourceName:  sourceName,
		Author:      raw.Author,
	}
}

// publishedTime parses the article timestamp for recency ordering.
// Unparseable timestamps sort as zero time, i.e. oldest.
func (a Article) publishedTime() time.Time {
	t, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
