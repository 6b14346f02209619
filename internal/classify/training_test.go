// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadCategories_FromCSV(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, categoriesFile, "category\nscience\nsports\n")

	var warnings bytes.Buffer
	categories := LoadCategories(dir, &warnings)

	assert.Equal(t, []string{"science", "sports"}, categories)
	assert.Empty(t, warnings.String())
}

func TestLoadCategories_MissingFileFallsBack(t *testing.T) {
	var warnings bytes.Buffer
	categories := LoadCategories(t.TempDir(), &warnings)

	assert.Equal(t, []string{"politics", "business", "health"}, categories)
	assert.Contains(t, warnings.String(), "warning")
}

func TestLoadTrainingDocuments_FromCSV(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, trainingDocumentsFile,
		"text,category\nparliament voted on legislation,politics\nquarterly earnings rose,business\n")

	var warnings bytes.Buffer
	docs := LoadTrainingDocuments(dir, &warnings)

	require.Len(t, docs, 2)
	assert.Equal(t, "parliament voted on legislation", docs[0].Text)
	assert.Equal(t, "politics", docs[0].Category)
	assert.Contains(t, warnings.String(), "loaded 2 training documents")
}

func TestLoadTrainingDocuments_MissingFileFallsBack(t *testing.T) {
	var warnings bytes.Buffer
	docs := LoadTrainingDocuments(t.TempDir(), &warnings)

	require.Len(t, docs, 12)
	counts := make(map[string]int)
	for _, doc := range docs {
		counts[doc.Category]++
		assert.NotEmpty(t, doc.Text)
	}
	assert.Equal(t, map[string]int{"politics": 4, "business": 4, "health": 4}, counts)
	assert.Contains(t, warnings.String(), "warning")
}

func TestLoadTrainingDocuments_SkipsIncompleteRows(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, trainingDocumentsFile,
		"text,category\n,politics\nvalid document text,business\nmissing category,\n")

	var warnings bytes.Buffer
	docs := LoadTrainingDocuments(dir, &warnings)

	require.Len(t, docs, 1)
	assert.Equal(t, "business", docs[0].Category)
}

func TestFallbackTrainingSet_TrainsWithHoldout(t *testing.T) {
	c, err := New(testConfig("naive_bayes"), fallbackCategories, fallbackTrainingDocuments)
	require.NoError(t, err)

	report, err := c.Train()
	require.NoError(t, err)

	// 12 documents, 3 categories: stratified split with one held-out
	// example per category.
	assert.Equal(t, 9, report.TrainingSize)
	assert.Equal(t, 3, report.TestSize)
	require.NotNil(t, report.Accuracy)
}
