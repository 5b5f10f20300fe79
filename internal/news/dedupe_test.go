package news

import (
	"strings"
	"testing"
)

func TestDedupeKey(t *testing.T) {
	got := dedupeKey("Dune Part Two Breaks Box Office Records!!!")
	want := "duneparttwobreaksboxofficerecords"
	if got != want {
		t.Errorf("dedupeKey = %q, want %q", got, want)
	}

	if len(dedupeKey(strings.Repeat("Ab1 ", 40))) != dedupeKeyLen {
		t.Errorf("key should be truncated to %d characters", dedupeKeyLen)
	}
}

func TestDedupeCollapsesPunctuationAndCaseVariants(t *testing.T) {
	articles := []Article{
		{ID: "first", Title: "Dune Part Two Breaks Box Office Records!!!"},
		{ID: "second", Title: "dune part two breaks box office records"},
	}

	got := Dedupe(articles)
	if len(got) != 1 {
		t.Fatalf("expected 1 article after dedupe, got %d", len(got))
	}
	if got[0].ID != "first" {
		t.Errorf("first occurrence should win, kept %q", got[0].ID)
	}
}

func TestDedupeCollapsesLongTitlesSharingKeyPrefix(t *testing.T) {
	prefix := strings.Repeat("a", dedupeKeyLen)
	articles := []Article{
		{ID: "first", Title: prefix + " one ending"},
		{ID: "second", Title: prefix + " a totally different ending"},
	}

	got := Dedupe(articles)
	if len(got) != 1 {
		t.Errorf("titles identical in their first %d alphanumerics should collapse, got %d", dedupeKeyLen, len(got))
	}
}

func TestDedupePreservesOrder(t *testing.T) {
	articles := []Article{
		{ID: "a", Title: "Alpha story"},
		{ID: "b", Title: "Beta story"},
		{ID: "a2", Title: "ALPHA, story?"},
		{ID: "c", Title: "Gamma story"},
	}

	got := Dedupe(articles)
	wantIDs := []string{"a", "b", "c"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d articles, got %d", len(wantIDs), len(got))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	articles := []Article{
		{ID: "a", Title: "Alpha story"},
		{ID: "a2", Title: "alpha story!"},
		{ID: "b", Title: "Beta story"},
	}

	once := Dedupe(articles)
	twice := Dedupe(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass removed items: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d changed between passes: %q vs %q", i, once[i].ID, twice[i].ID)
		}
	}
}
