// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/pdiddy/pubengine/internal/corpus"
	"github.com/pdiddy/pubengine/internal/textnorm"
	"github.com/pdiddy/pubengine/pkg/types"
)

// Policy constants for thresholded top-K retrieval. Callers depend on the
// literal values.
const (
	// scoreFloor is the minimum cosine similarity for a result to appear.
	scoreFloor = 0.01

	// maxResults caps the number of results per query.
	maxResults = 50
)

// Ranker answers ranked queries against a fixed publication corpus. The
// TF-IDF index is built once at construction; a changed corpus requires a
// new Ranker.
type Ranker struct {
	records    []types.PublicationRecord
	vectorizer *Vectorizer
	matrix     [][]float64
}

// New indexes records and returns a ready Ranker. Each record contributes
// one document: its normalized title, author names, and abstract.
func New(records []types.PublicationRecord) *Ranker {
	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = searchableText(rec)
	}

	v := NewVectorizer()
	v.Fit(docs)

	matrix := make([][]float64, len(docs))
	for i, doc := range docs {
		matrix[i] = v.Transform(doc)
	}

	return &Ranker{records: records, vectorizer: v, matrix: matrix}
}

// Len returns the number of indexed records.
func (r *Ranker) Len() int {
	return len(r.records)
}

// Search returns the records ranked by cosine similarity to query. An empty
// or whitespace-only query returns nil. Results carry similarity >=
// scoreFloor, at most maxResults of them, ordered by score descending with
// ties kept in corpus order. Scores are rounded to two decimals.
func (r *Ranker) Search(query string) []types.RankedResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	qv := r.vectorizer.Transform(textnorm.Normalize(query))

	type hit struct {
		idx int
		sim float64
	}
	var hits []hit
	for i, dv := range r.matrix {
		sim := CosineSimilarity(qv, dv)
		if sim >= scoreFloor {
			hits = append(hits, hit{idx: i, sim: sim})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].sim > hits[j].sim
	})
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	results := make([]types.RankedResult, len(hits))
	for i, h := range hits {
		results[i] = types.RankedResult{
			PublicationRecord: r.records[h.idx],
			Score:             math.Round(h.sim*100) / 100,
		}
	}
	return results
}

// All returns every indexed record in corpus order with score 0.0. This
// backs the empty-query listing, which is distinct from "no matches".
func (r *Ranker) All() []types.RankedResult {
	results := make([]types.RankedResult, len(r.records))
	for i, rec := range r.records {
		results[i] = types.RankedResult{PublicationRecord: rec, Score: 0.0}
	}
	return results
}

// searchableText builds the indexed document string for one record.
func searchableText(rec types.PublicationRecord) string {
	title := textnorm.Normalize(rec.Title)
	authors := textnorm.Normalize(strings.Join(corpus.AuthorNames(rec), " "))
	abstract := textnorm.Normalize(rec.Abstract)
	return title + " " + authors + " " + abstract
}
