// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	// Empty data dir, so the built-in categories and documents are used.
	return NewRegistry(testConfig("naive_bayes"), t.TempDir(), io.Discard)
}

func TestRegistryGet_TrainsOnce(t *testing.T) {
	r := testRegistry(t)

	first, err := r.Get("naive_bayes")
	require.NoError(t, err)
	assert.True(t, first.ModelInfo().IsTrained)

	second, err := r.Get("naive_bayes")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegistryGet_DefaultModelType(t *testing.T) {
	r := testRegistry(t)

	byDefault, err := r.Get("")
	require.NoError(t, err)
	byName, err := r.Get("naive_bayes")
	require.NoError(t, err)
	assert.Same(t, byDefault, byName)
}

func TestRegistryGet_UnknownModelType(t *testing.T) {
	r := testRegistry(t)

	_, err := r.Get("decision_tree")
	assert.Error(t, err)
}

func TestRegistryGet_Concurrent(t *testing.T) {
	r := testRegistry(t)

	const goroutines = 8
	classifiers := make([]*Classifier, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := r.Get("naive_bayes")
			if err != nil {
				t.Error(err)
				return
			}
			classifiers[i] = c
			if _, err := c.Classify("parliament voted on legislation"); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, classifiers[0], classifiers[i])
	}
}

func TestRegistryTrainAll(t *testing.T) {
	r := testRegistry(t)

	outcomes := r.TrainAll()
	require.Len(t, outcomes, 2)
	for modelType, outcome := range outcomes {
		require.NoError(t, outcome.Err, modelType)
		assert.Equal(t, modelType, outcome.Report.ModelType)
		assert.Equal(t, 9, outcome.Report.TrainingSize)
	}
}

func TestRegistryTrainAll_BadTypeDoesNotAbortOthers(t *testing.T) {
	r := testRegistry(t)

	outcomes := r.TrainAll("naive_bayes", "decision_tree")
	require.Len(t, outcomes, 2)
	assert.NoError(t, outcomes["naive_bayes"].Err)
	assert.Error(t, outcomes["decision_tree"].Err)
}
