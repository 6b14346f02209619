// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"fmt"
	"testing"

	"github.com/pdiddy/pubengine/pkg/types"
)

func testRecords() []types.PublicationRecord {
	return []types.PublicationRecord{
		{
			Title:    "Deep learning for finance",
			Link:     "https://example.org/finance",
			Authors:  []types.Author{{Name: "A. Trader"}},
			Abstract: "Neural networks applied to financial market prediction.",
		},
		{
			Title:    "Climate policy report",
			Link:     "https://example.org/climate",
			Authors:  []types.Author{{Name: "B. Green"}},
			Abstract: "Government action on emissions and climate change.",
		},
	}
}

func TestRankerSearchRanksRelevantFirst(t *testing.T) {
	r := New(testRecords())

	results := r.Search("finance")
	if len(results) == 0 {
		t.Fatal("expected at least one result for 'finance'")
	}
	if results[0].Link != "https://example.org/finance" {
		t.Errorf("top result = %q, want the finance record", results[0].Link)
	}
	if results[0].Score <= 0.01 {
		t.Errorf("top score = %f, want > 0.01", results[0].Score)
	}
}

func TestRankerSearchEmptyQuery(t *testing.T) {
	r := New(testRecords())
	if got := r.Search(""); got != nil {
		t.Errorf("Search(\"\") = %v, want nil", got)
	}
	if got := r.Search("   "); got != nil {
		t.Errorf("Search(blank) = %v, want nil", got)
	}
}

func TestRankerSearchNoMatches(t *testing.T) {
	r := New(testRecords())
	if got := r.Search("astrophysics telescope"); len(got) != 0 {
		t.Errorf("unrelated query returned %d results, want 0", len(got))
	}
}

func TestRankerSearchOrderingAndBounds(t *testing.T) {
	records := testRecords()
	records = append(records, types.PublicationRecord{
		Title:    "Finance and climate risk",
		Link:     "https://example.org/both",
		Abstract: "Financial exposure to climate events.",
	})
	r := New(records)

	results := r.Search("finance climate")
	for i, res := range results {
		if res.Score < 0.01 {
			t.Errorf("result %d score %f below floor", i, res.Score)
		}
		if i > 0 && results[i-1].Score < res.Score {
			t.Errorf("results not sorted: score[%d]=%f < score[%d]=%f", i-1, results[i-1].Score, i, res.Score)
		}
	}
}

func TestRankerSearchCapsResults(t *testing.T) {
	records := make([]types.PublicationRecord, 60)
	for i := range records {
		records[i] = types.PublicationRecord{
			Title: "Quarterly finance report",
			Link:  fmt.Sprintf("https://example.org/r%d", i),
		}
	}
	r := New(records)

	results := r.Search("finance")
	if len(results) != 50 {
		t.Fatalf("got %d results, want cap of 50", len(results))
	}
	// Equal scores keep corpus order.
	for i := 0; i < 50; i++ {
		want := fmt.Sprintf("https://example.org/r%d", i)
		if results[i].Link != want {
			t.Fatalf("result %d link = %q, want %q (stable tie order)", i, results[i].Link, want)
		}
	}
}

func TestRankerSearchRoundsScores(t *testing.T) {
	r := New(testRecords())
	for _, res := range r.Search("finance") {
		rounded := float64(int(res.Score*100+0.5)) / 100
		if res.Score != rounded {
			t.Errorf("score %v not rounded to two decimals", res.Score)
		}
	}
}

func TestRankerAll(t *testing.T) {
	records := testRecords()
	r := New(records)

	all := r.All()
	if len(all) != len(records) {
		t.Fatalf("All() returned %d records, want %d", len(all), len(records))
	}
	for i, res := range all {
		if res.Score != 0.0 {
			t.Errorf("All()[%d].Score = %f, want 0.0", i, res.Score)
		}
		if res.Link != records[i].Link {
			t.Errorf("All()[%d] out of corpus order", i)
		}
	}
}

func TestRankerEmptyCorpus(t *testing.T) {
	r := New(nil)
	if got := r.Search("finance"); len(got) != 0 {
		t.Errorf("empty corpus returned %d results", len(got))
	}
	if got := r.All(); len(got) != 0 {
		t.Errorf("All() on empty corpus returned %d results", len(got))
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}
