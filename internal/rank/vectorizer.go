// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank implements the vector-space model: a fitted TF-IDF
// vectorizer, cosine-similarity ranking over a publication corpus, and a
// bounded TTL cache for result sets.
package rank

import (
	"math"
	"sort"
	"strings"
)

// Vectorizer turns normalized text into L2-normalized TF-IDF vectors over a
// vocabulary fixed at Fit time. Terms absent from the fitted vocabulary are
// silently dropped; there is no re-fitting.
type Vectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	ngramMax    int
	maxFeatures int
}

// VectorizerOption configures a Vectorizer before fitting.
type VectorizerOption func(*Vectorizer)

// WithNgramMax also indexes n-grams up to length n (space-joined adjacent
// tokens). The default indexes unigrams only.
func WithNgramMax(n int) VectorizerOption {
	return func(v *Vectorizer) {
		if n > 1 {
			v.ngramMax = n
		}
	}
}

// WithMaxFeatures caps the vocabulary at the limit terms with the highest
// collection frequency. Zero means no cap.
func WithMaxFeatures(limit int) VectorizerOption {
	return func(v *Vectorizer) {
		if limit > 0 {
			v.maxFeatures = limit
		}
	}
}

// NewVectorizer returns an unfitted vectorizer.
func NewVectorizer(opts ...VectorizerOption) *Vectorizer {
	v := &Vectorizer{ngramMax: 1}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Fit derives the vocabulary and inverse-document-frequency weights from
// docs. Each doc is expected to be normalized text (see textnorm).
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	cf := make(map[string]int)

	for _, doc := range docs {
		grams := v.grams(doc)
		seen := make(map[string]bool, len(grams))
		for _, g := range grams {
			cf[g]++
			if !seen[g] {
				seen[g] = true
				df[g]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		// Keep the terms that occur most across the collection; ties go to
		// the lexicographically smaller term so the cut is deterministic.
		sort.SliceStable(terms, func(i, j int) bool {
			return cf[terms[i]] > cf[terms[j]]
		})
		terms = terms[:v.maxFeatures]
		sort.Strings(terms)
	}

	n := float64(len(docs))
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform converts normalized text into an L2-normalized TF-IDF vector
// over the fitted vocabulary.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	counts := make(map[int]float64)
	for _, g := range v.grams(doc) {
		if idx, ok := v.vocabulary[g]; ok {
			counts[idx]++
		}
	}

	var norm float64
	for idx, count := range counts {
		w := count * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			vec[idx] /= norm
		}
	}
	return vec
}

// Dimension returns the size of the fitted vocabulary.
func (v *Vectorizer) Dimension() int {
	return len(v.idf)
}

// grams expands a normalized document into its unigrams and, when
// configured, higher-order n-grams of adjacent tokens.
func (v *Vectorizer) grams(doc string) []string {
	tokens := strings.Fields(doc)
	if v.ngramMax <= 1 {
		return tokens
	}
	grams := make([]string, 0, len(tokens)*v.ngramMax)
	grams = append(grams, tokens...)
	for n := 2; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// VectorizerState is the serializable fitted state of a Vectorizer.
type VectorizerState struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	NgramMax    int            `json:"ngram_max"`
	MaxFeatures int            `json:"max_features"`
}

// State captures the fitted state for persistence.
func (v *Vectorizer) State() VectorizerState {
	return VectorizerState{
		Vocabulary:  v.vocabulary,
		IDF:         v.idf,
		NgramMax:    v.ngramMax,
		MaxFeatures: v.maxFeatures,
	}
}

// RestoreVectorizer rebuilds a fitted vectorizer from persisted state.
func RestoreVectorizer(st VectorizerState) *Vectorizer {
	ngram := st.NgramMax
	if ngram < 1 {
		ngram = 1
	}
	return &Vectorizer{
		vocabulary:  st.Vocabulary,
		idf:         st.IDF,
		ngramMax:    ngram,
		maxFeatures: st.MaxFeatures,
	}
}

// CosineSimilarity returns the cosine of the angle between two vectors, or
// zero when either has no magnitude.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
