// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"math"
	"testing"
)

func TestVectorizerFitTransform(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"deep learn financ", "climat polici report", "climat economi"})

	if v.Dimension() != 7 {
		t.Fatalf("Dimension = %d, want 7", v.Dimension())
	}

	vec := v.Transform("climat polici")
	var norm float64
	nonzero := 0
	for _, w := range vec {
		if w != 0 {
			nonzero++
		}
		norm += w * w
	}
	if nonzero != 2 {
		t.Errorf("nonzero components = %d, want 2", nonzero)
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
		t.Errorf("vector norm = %f, want 1", math.Sqrt(norm))
	}
}

func TestVectorizerUnknownTermsDropped(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"deep learn financ"})

	vec := v.Transform("quantum entangl")
	for i, w := range vec {
		if w != 0 {
			t.Errorf("component %d = %f, want 0 for out-of-vocabulary text", i, w)
		}
	}
}

func TestVectorizerIDFDownweightsCommonTerms(t *testing.T) {
	// "climat" appears in every doc, "financ" in one.
	v := NewVectorizer()
	v.Fit([]string{"climat financ", "climat polici", "climat health"})

	vec := v.Transform("climat financ")
	climWeight := vec[v.vocabulary["climat"]]
	finWeight := vec[v.vocabulary["financ"]]
	if climWeight >= finWeight {
		t.Errorf("common term weight %f should be below rare term weight %f", climWeight, finWeight)
	}
}

func TestVectorizerNgrams(t *testing.T) {
	v := NewVectorizer(WithNgramMax(2))
	v.Fit([]string{"govern announc polici"})

	// 3 unigrams + 2 bigrams.
	if v.Dimension() != 5 {
		t.Fatalf("Dimension = %d, want 5", v.Dimension())
	}
	if _, ok := v.vocabulary["govern announc"]; !ok {
		t.Error("bigram 'govern announc' missing from vocabulary")
	}
}

func TestVectorizerMaxFeatures(t *testing.T) {
	v := NewVectorizer(WithMaxFeatures(2))
	v.Fit([]string{"alpha beta alpha", "alpha gamma beta", "delta"})

	if v.Dimension() != 2 {
		t.Fatalf("Dimension = %d, want 2", v.Dimension())
	}
	// alpha (cf 3) and beta (cf 2) survive the cap.
	if _, ok := v.vocabulary["alpha"]; !ok {
		t.Error("'alpha' should survive the feature cap")
	}
	if _, ok := v.vocabulary["beta"]; !ok {
		t.Error("'beta' should survive the feature cap")
	}
}

func TestVectorizerStateRoundTrip(t *testing.T) {
	v := NewVectorizer(WithNgramMax(2), WithMaxFeatures(100))
	v.Fit([]string{"deep learn financ", "climat polici report"})

	restored := RestoreVectorizer(v.State())
	orig := v.Transform("climat financ")
	got := restored.Transform("climat financ")

	if len(got) != len(orig) {
		t.Fatalf("restored dimension = %d, want %d", len(got), len(orig))
	}
	for i := range orig {
		if math.Abs(got[i]-orig[i]) > 1e-12 {
			t.Fatalf("component %d = %f, want %f", i, got[i], orig[i])
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CosineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity = %f, want %f", got, tt.want)
			}
		})
	}
}
