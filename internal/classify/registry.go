// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/pubengine/pkg/types"
)

// Registry owns one classifier per model type, constructed and trained
// lazily on first access. The mutex covers the construct-and-train step, so
// at most one training run per model type ever executes; the returned
// instances are safe for concurrent Classify.
type Registry struct {
	mu          sync.Mutex
	cfg         types.ClassifierConfig
	dataDir     string
	warn        io.Writer
	classifiers map[string]*Classifier
}

// NewRegistry returns an empty registry. Training-data warnings go to warn.
func NewRegistry(cfg types.ClassifierConfig, dataDir string, warn io.Writer) *Registry {
	return &Registry{
		cfg:         cfg,
		dataDir:     dataDir,
		warn:        warn,
		classifiers: make(map[string]*Classifier),
	}
}

// Get returns the trained classifier for modelType, constructing and
// training it on first access. Empty modelType selects the configured
// default.
func (r *Registry) Get(modelType string) (*Classifier, error) {
	if modelType == "" {
		modelType = r.cfg.ModelType
	}
	if _, err := newModel(modelType); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.classifiers[modelType]; ok {
		return c, nil
	}

	c, err := r.build(modelType)
	if err != nil {
		return nil, err
	}
	r.classifiers[modelType] = c
	return c, nil
}

// TrainAll trains (or retrains) a classifier for every given model type.
// A failure for one type is reported in the result map without aborting
// the others.
func (r *Registry) TrainAll(modelTypes ...string) map[string]TrainOutcome {
	if len(modelTypes) == 0 {
		modelTypes = []string{
			string(types.ModelNaiveBayes),
			string(types.ModelLogisticRegression),
		}
	}

	outcomes := make(map[string]TrainOutcome, len(modelTypes))
	for _, mt := range modelTypes {
		outcomes[mt] = r.train(mt)
	}
	return outcomes
}

// TrainOutcome is the per-model-type result of TrainAll.
type TrainOutcome struct {
	Report types.TrainingReport
	Err    error
}

func (r *Registry) train(modelType string) TrainOutcome {
	r.mu.Lock()
	c, ok := r.classifiers[modelType]
	if !ok {
		var err error
		c, err = r.build(modelType)
		if err != nil {
			r.mu.Unlock()
			return TrainOutcome{Err: err}
		}
		r.classifiers[modelType] = c
		r.mu.Unlock()
		// build already trained it; report again via a refit would be
		// wasted work, so surface the stored report instead.
		return TrainOutcome{Report: c.lastReport()}
	}
	r.mu.Unlock()

	report, err := c.Train()
	if err != nil {
		return TrainOutcome{Err: fmt.Errorf("training %s: %w", modelType, err)}
	}
	return TrainOutcome{Report: report}
}

// build constructs and trains a classifier. Callers hold r.mu.
func (r *Registry) build(modelType string) (*Classifier, error) {
	cfg := r.cfg
	cfg.ModelType = modelType

	categories := LoadCategories(r.dataDir, r.warn)
	docs := LoadTrainingDocuments(r.dataDir, r.warn)

	c, err := New(cfg, categories, docs)
	if err != nil {
		return nil, fmt.Errorf("building %s classifier: %w", modelType, err)
	}
	if _, err := c.Train(); err != nil {
		return nil, fmt.Errorf("training %s classifier: %w", modelType, err)
	}
	return c, nil
}
