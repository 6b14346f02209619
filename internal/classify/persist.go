// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/pubengine/internal/rank"
	"github.com/pdiddy/pubengine/pkg/types"
)

const (
	kindNaiveBayes         = "naive_bayes"
	kindLogisticRegression = "logistic_regression"
)

// modelState is the serializable form of a fitted model. Kind selects which
// field groups are meaningful.
type modelState struct {
	Kind           string      `json:"kind"`
	ClassLogPrior  []float64   `json:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty"`
	Weights        [][]float64 `json:"weights,omitempty"`
	Bias           []float64   `json:"bias,omitempty"`
}

// snapshot is the single opaque unit written by Save: fitted model
// parameters, vectorizer state, category order, and training counts.
type snapshot struct {
	ModelType     string               `json:"model_type"`
	Categories    []string             `json:"categories"`
	Vectorizer    rank.VectorizerState `json:"vectorizer"`
	Model         modelState           `json:"model"`
	TrainingStats map[string]int       `json:"training_stats"`
	TotalDocs     int                  `json:"total_documents"`
}

// Save writes the fitted state to path. ErrTrainingRequired when untrained.
func (c *Classifier) Save(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return ErrTrainingRequired
	}

	snap := snapshot{
		ModelType:     c.modelTypeName(),
		Categories:    c.categories,
		Vectorizer:    c.vectorizer.State(),
		Model:         c.model.state(),
		TrainingStats: c.trainingStats(),
		TotalDocs:     c.totalDocs,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding model snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing model snapshot: %w", err)
	}
	return nil
}

// Load restores a trained classifier from a snapshot written by Save. The
// restored instance classifies immediately; it carries no training
// documents, so retraining it requires constructing a fresh classifier.
func Load(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decoding model snapshot: %w", err)
	}
	if len(snap.Categories) == 0 {
		return nil, fmt.Errorf("model snapshot %s has no categories", path)
	}

	var mdl model
	switch snap.Model.Kind {
	case kindNaiveBayes:
		mdl = restoreNaiveBayes(snap.Model)
	case kindLogisticRegression:
		mdl = restoreLogisticRegression(snap.Model)
	default:
		return nil, fmt.Errorf("model snapshot has unknown kind %q", snap.Model.Kind)
	}

	labelIndex := make(map[string]int, len(snap.Categories))
	for i, cat := range snap.Categories {
		labelIndex[cat] = i
	}

	return &Classifier{
		cfg:        types.ClassifierConfig{ModelType: snap.ModelType},
		categories: snap.Categories,
		labelIndex: labelIndex,
		stats:      snap.TrainingStats,
		totalDocs:  snap.TotalDocs,
		vectorizer: rank.RestoreVectorizer(snap.Vectorizer),
		model:      mdl,
		trained:    true,
	}, nil
}
