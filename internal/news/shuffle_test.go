package news

import (
	"math/rand"
	"testing"
)

func TestShuffleIsAPermutation(t *testing.T) {
	articles := make([]Article, 20)
	for i := range articles {
		articles[i] = Article{ID: string(rune('a' + i))}
	}

	shuffled := make([]Article, len(articles))
	copy(shuffled, articles)
	shuffle(rand.New(rand.NewSource(1)), shuffled)

	seen := make(map[string]bool, len(shuffled))
	for _, a := range shuffled {
		seen[a.ID] = true
	}
	for _, a := range articles {
		if !seen[a.ID] {
			t.Errorf("article %q lost during shuffle", a.ID)
		}
	}
}

func TestShuffleIsDeterministicForASeed(t *testing.T) {
	build := func() []Article {
		articles := make([]Article, 10)
		for i := range articles {
			articles[i] = Article{ID: string(rune('a' + i))}
		}
		return articles
	}

	first := build()
	second := build()
	shuffle(rand.New(rand.NewSource(99)), first)
	shuffle(rand.New(rand.NewSource(99)), second)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different orders at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestHeadWindow(t *testing.T) {
	tests := []struct {
		poolSize, limit, factor, want int
	}{
		{100, 10, 3, 30},
		{20, 10, 3, 20},
		{100, 6, 2, 12},
		{5, 6, 2, 5},
		{0, 6, 2, 0},
	}
	for _, tt := range tests {
		if got := headWindow(tt.poolSize, tt.limit, tt.factor); got != tt.want {
			t.Errorf("headWindow(%d, %d, %d) = %d, want %d", tt.poolSize, tt.limit, tt.factor, got, tt.want)
		}
	}
}
