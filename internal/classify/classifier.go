// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify trains and serves the topical text classifier: label
// encoding, the train/test split policy, two interchangeable probabilistic
// models over TF-IDF features, evaluation, persistence, and a thread-safe
// registry of per-model-type instances.
package classify

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/pdiddy/pubengine/internal/rank"
	"github.com/pdiddy/pubengine/internal/textnorm"
	"github.com/pdiddy/pubengine/pkg/types"
)

// ErrTrainingRequired is returned by Classify and Save before a successful
// training run.
var ErrTrainingRequired = errors.New("model has not been trained")

// model is the fitted-algorithm contract shared by the naive bayes and
// logistic regression implementations. predictProba returns one probability
// per class, summing to 1.
type model interface {
	fit(X [][]float64, y []int, k int)
	predictProba(x []float64) []float64
	state() modelState
}

// Classifier assigns one of a fixed category set to arbitrary text. It is
// safe for concurrent use: Train takes the write lock, Classify the read
// lock, so retraining never races inference.
type Classifier struct {
	mu sync.RWMutex

	cfg        types.ClassifierConfig
	categories []string
	labelIndex map[string]int
	docs       []types.TrainingDocument

	// stats and totalDocs describe the training data for restored
	// classifiers, which carry no documents of their own.
	stats     map[string]int
	totalDocs int

	vectorizer *rank.Vectorizer
	model      model
	trained    bool
	report     types.TrainingReport
}

// New builds an untrained classifier over the given category order. Every
// document's category must be a member of categories.
func New(cfg types.ClassifierConfig, categories []string, docs []types.TrainingDocument) (*Classifier, error) {
	if len(categories) == 0 {
		return nil, errors.New("at least one category is required")
	}
	labelIndex := make(map[string]int, len(categories))
	for i, cat := range categories {
		if _, dup := labelIndex[cat]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat)
		}
		labelIndex[cat] = i
	}
	for _, doc := range docs {
		if _, ok := labelIndex[doc.Category]; !ok {
			return nil, fmt.Errorf("training document has unknown category %q", doc.Category)
		}
	}
	stats := make(map[string]int, len(categories))
	for _, doc := range docs {
		stats[doc.Category]++
	}
	return &Classifier{
		cfg:        cfg,
		categories: append([]string(nil), categories...),
		labelIndex: labelIndex,
		docs:       append([]types.TrainingDocument(nil), docs...),
		stats:      stats,
		totalDocs:  len(docs),
	}, nil
}

// newModel selects the algorithm for the configured model type.
func newModel(modelType string) (model, error) {
	switch types.ModelType(modelType) {
	case types.ModelNaiveBayes, "":
		return &naiveBayes{}, nil
	case types.ModelLogisticRegression:
		return newLogisticRegression(), nil
	default:
		return nil, fmt.Errorf("unknown model type %q", modelType)
	}
}

// Train fits the vectorizer and model on the training documents and
// evaluates on a held-out split when the set is large enough. Retraining
// refits in place.
func (c *Classifier) Train() (types.TrainingReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.docs) == 0 {
		return types.TrainingReport{}, errors.New("no training documents")
	}

	texts := make([]string, len(c.docs))
	labels := make([]int, len(c.docs))
	for i, doc := range c.docs {
		texts[i] = textnorm.Normalize(doc.Text)
		labels[i] = c.labelIndex[doc.Category]
	}

	fitIdx, heldIdx := splitIndices(labels, c.cfg.Seed)

	fitTexts := make([]string, len(fitIdx))
	fitLabels := make([]int, len(fitIdx))
	for i, idx := range fitIdx {
		fitTexts[i] = texts[idx]
		fitLabels[i] = labels[idx]
	}

	vec := rank.NewVectorizer(
		rank.WithNgramMax(c.cfg.NgramMax),
		rank.WithMaxFeatures(c.cfg.MaxFeatures),
	)
	vec.Fit(fitTexts)

	X := make([][]float64, len(fitTexts))
	for i, text := range fitTexts {
		X[i] = vec.Transform(text)
	}

	mdl, err := newModel(c.cfg.ModelType)
	if err != nil {
		return types.TrainingReport{}, err
	}
	mdl.fit(X, fitLabels, len(c.categories))

	report := types.TrainingReport{
		ModelType:    c.modelTypeName(),
		TrainingSize: len(fitIdx),
		TestSize:     len(heldIdx),
		Categories:   append([]string(nil), c.categories...),
	}
	if len(heldIdx) > 0 {
		truth := make([]int, len(heldIdx))
		predicted := make([]int, len(heldIdx))
		for i, idx := range heldIdx {
			truth[i] = labels[idx]
			predicted[i] = argmax(mdl.predictProba(vec.Transform(texts[idx])))
		}
		acc := accuracy(truth, predicted)
		report.Accuracy = &acc
		report.Report = classificationReport(truth, predicted, c.categories)
	}

	c.vectorizer = vec
	c.model = mdl
	c.trained = true
	c.report = report
	return report, nil
}

// lastReport returns the report from the most recent training run.
func (c *Classifier) lastReport() types.TrainingReport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}

// Classify predicts a category for text. ErrTrainingRequired before Train.
func (c *Classifier) Classify(text string) (types.ClassificationResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.trained {
		return types.ClassificationResult{}, ErrTrainingRequired
	}

	processed := textnorm.Normalize(text)
	probs := c.model.predictProba(c.vectorizer.Transform(processed))
	best := argmax(probs)

	probabilities := make(map[string]float64, len(c.categories))
	for i, cat := range c.categories {
		probabilities[cat] = probs[i]
	}
	category := c.categories[best]
	confidence := probs[best]

	return types.ClassificationResult{
		PredictedCategory:   category,
		Confidence:          confidence,
		Probabilities:       probabilities,
		Explanation:         c.explanation(category, confidence, probabilities),
		ModelUsed:           c.modelTypeName(),
		TextLength:          len(text),
		ProcessedTextLength: len(processed),
	}, nil
}

// explanation renders the human-readable prediction summary: model family,
// category, confidence percentage and tier, then the remaining categories
// by descending probability.
func (c *Classifier) explanation(category string, confidence float64, probabilities map[string]float64) string {
	tier := "low"
	switch {
	case confidence >= 0.8:
		tier = "high"
	case confidence >= 0.6:
		tier = "moderate"
	}

	family := strings.ReplaceAll(c.modelTypeName(), "_", " ")
	var b strings.Builder
	fmt.Fprintf(&b, "The %s model classified this text as '%s' with %.1f%% confidence. This is a %s-confidence prediction.",
		family, category, confidence*100, tier)

	type scored struct {
		category string
		prob     float64
	}
	rest := make([]scored, 0, len(probabilities)-1)
	for cat, prob := range probabilities {
		if cat != category {
			rest = append(rest, scored{cat, prob})
		}
	}
	if len(rest) > 0 {
		sort.Slice(rest, func(i, j int) bool {
			if rest[i].prob != rest[j].prob {
				return rest[i].prob > rest[j].prob
			}
			return rest[i].category < rest[j].category
		})
		alts := make([]string, len(rest))
		for i, s := range rest {
			alts[i] = fmt.Sprintf("%s: %.1f%%", s.category, s.prob*100)
		}
		fmt.Fprintf(&b, " Alternative classifications: %s", strings.Join(alts, ", "))
	}
	return b.String()
}

// ModelInfo reports configuration and training-data facts.
func (c *Classifier) ModelInfo() types.ModelInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return types.ModelInfo{
		ModelType:      c.modelTypeName(),
		IsTrained:      c.trained,
		TotalDocuments: c.totalDocs,
		Categories:     append([]string(nil), c.categories...),
		TrainingStats:  c.trainingStats(),
	}
}

// trainingStats copies the per-category document counts. Callers hold the
// appropriate lock.
func (c *Classifier) trainingStats() map[string]int {
	stats := make(map[string]int, len(c.stats))
	for cat, n := range c.stats {
		stats[cat] = n
	}
	return stats
}

// Categories returns the fixed category order.
func (c *Classifier) Categories() []string {
	return append([]string(nil), c.categories...)
}

func (c *Classifier) modelTypeName() string {
	if c.cfg.ModelType == "" {
		return string(types.ModelNaiveBayes)
	}
	return c.cfg.ModelType
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// softmaxFromLog converts log-space scores to probabilities with the
// log-sum-exp shift for numeric stability.
func softmaxFromLog(logits []float64) []float64 {
	maxLog := math.Inf(-1)
	for _, l := range logits {
		if l > maxLog {
			maxLog = l
		}
	}
	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLog)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
