// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIndices_SmallSetFitsAll(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
	}{
		{"five docs three categories", []int{0, 1, 2, 0, 1}},
		{"seven docs four categories", []int{0, 1, 2, 3, 0, 1, 2}},
		{"single doc", []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, held := splitIndices(tt.labels, 42)
			assert.Len(t, fit, len(tt.labels))
			assert.Nil(t, held)
		})
	}
}

func TestSplitIndices_SixDocsThreeCategories(t *testing.T) {
	labels := []int{0, 0, 1, 1, 2, 2}
	fit, held := splitIndices(labels, 42)

	require.Len(t, fit, 3)
	require.Len(t, held, 3)

	// Stratified: one held-out example per category.
	heldByLabel := make(map[int]int)
	for _, idx := range held {
		heldByLabel[labels[idx]]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, heldByLabel)
}

func TestSplitIndices_Partition(t *testing.T) {
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	fit, held := splitIndices(labels, 42)

	seen := make(map[int]bool)
	for _, idx := range append(append([]int(nil), fit...), held...) {
		assert.False(t, seen[idx], "index %d appears twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, len(labels))
	// fraction max(0.2, 3/12) = 0.25, one held per four-document group.
	assert.Len(t, held, 3)
	assert.Len(t, fit, 9)
}

func TestSplitIndices_UnstratifiedWhenCategoryHasOneExample(t *testing.T) {
	// Category 2 has a single example, so the split is unstratified.
	labels := []int{0, 0, 0, 1, 1, 2}
	fit, held := splitIndices(labels, 42)

	assert.Len(t, held, 3)
	assert.Len(t, fit, 3)
}

func TestSplitIndices_CountsPresentLabelsOnly(t *testing.T) {
	// Eight documents over three distinct labels split even though the
	// label space they were encoded from is wider.
	labels := []int{0, 0, 0, 2, 2, 2, 4, 4}
	fit, held := splitIndices(labels, 42)

	// fraction max(0.2, 3/8) = 0.375, one held per group.
	require.Len(t, held, 3)
	require.Len(t, fit, 5)
}

func TestSplitIndices_SingleLabelUnstratified(t *testing.T) {
	labels := []int{0, 0, 0, 0, 0, 0}
	fit, held := splitIndices(labels, 42)

	// fraction max(0.2, 1/6) = 0.2, round(1.2) = 1 held out.
	assert.Len(t, held, 1)
	assert.Len(t, fit, 5)
}

func TestSplitIndices_Deterministic(t *testing.T) {
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}

	fit1, held1 := splitIndices(labels, 42)
	fit2, held2 := splitIndices(labels, 42)
	assert.Equal(t, fit1, fit2)
	assert.Equal(t, held1, held2)
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 1.0, accuracy([]int{0, 1, 2}, []int{0, 1, 2}))
	assert.Equal(t, 0.0, accuracy([]int{0, 1, 2}, []int{1, 2, 0}))
	assert.InDelta(t, 2.0/3.0, accuracy([]int{0, 1, 2}, []int{0, 1, 0}), 1e-9)
	assert.Equal(t, 0.0, accuracy(nil, nil))
}

func TestClassificationReport(t *testing.T) {
	categories := []string{"politics", "business", "health"}

	// politics: 2 true, both predicted correctly; business predicted once
	// where truth was health.
	truth := []int{0, 0, 1, 2}
	predicted := []int{0, 0, 1, 1}
	report := classificationReport(truth, predicted, categories)

	pol := report["politics"]
	assert.Equal(t, 1.0, pol.Precision)
	assert.Equal(t, 1.0, pol.Recall)
	assert.Equal(t, 1.0, pol.F1)
	assert.Equal(t, 2, pol.Support)

	biz := report["business"]
	assert.InDelta(t, 0.5, biz.Precision, 1e-9)
	assert.Equal(t, 1.0, biz.Recall)
	assert.InDelta(t, 2.0/3.0, biz.F1, 1e-9)
	assert.Equal(t, 1, biz.Support)

	hlth := report["health"]
	assert.Equal(t, 0.0, hlth.Precision)
	assert.Equal(t, 0.0, hlth.Recall)
	assert.Equal(t, 0.0, hlth.F1)
	assert.Equal(t, 1, hlth.Support)
}
