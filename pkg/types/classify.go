// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ModelType selects the classification algorithm.
type ModelType string

const (
	ModelNaiveBayes         ModelType = "naive_bayes"
	ModelLogisticRegression ModelType = "logistic_regression"
)

// TrainingDocument is one labeled example. Category must be a member of
// the classifier's configured category set.
type TrainingDocument struct {
	Text     string `json:"text" yaml:"text"`
	Category string `json:"category" yaml:"category"`
}

// ClassificationResult holds the outcome of classifying one text.
type ClassificationResult struct {
	// PredictedCategory is the category with the highest probability.
	PredictedCategory string `json:"predicted_category" yaml:"predicted_category"`

	// Confidence is the probability of the predicted category, in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Probabilities maps every category to its probability. The values
	// sum to 1 within floating tolerance.
	Probabilities map[string]float64 `json:"probabilities" yaml:"probabilities"`

	// Explanation is a human-readable sentence naming the model family,
	// the predicted category, the confidence tier, and the alternatives.
	Explanation string `json:"explanation" yaml:"explanation"`

	// ModelUsed is the model type that produced the prediction.
	ModelUsed string `json:"model_used" yaml:"model_used"`

	// TextLength is the length of the raw input text.
	TextLength int `json:"text_length" yaml:"text_length"`

	// ProcessedTextLength is the length of the normalized text.
	ProcessedTextLength int `json:"processed_text_length" yaml:"processed_text_length"`
}

// CategoryMetrics holds per-category evaluation numbers from a held-out set.
type CategoryMetrics struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
	Support   int     `json:"support" yaml:"support"`
}

// TrainingReport summarizes one training run. Accuracy and Report are nil
// when the document set was too small for a held-out split.
type TrainingReport struct {
	Accuracy     *float64                   `json:"accuracy" yaml:"accuracy"`
	Report       map[string]CategoryMetrics `json:"classification_report,omitempty" yaml:"classification_report,omitempty"`
	ModelType    string                     `json:"model_type" yaml:"model_type"`
	TrainingSize int                        `json:"training_size" yaml:"training_size"`
	TestSize     int                        `json:"test_size" yaml:"test_size"`
	Categories   []string                   `json:"categories" yaml:"categories"`
}

// ModelInfo describes a classifier's configuration and training data.
type ModelInfo struct {
	ModelType      string         `json:"model_type" yaml:"model_type"`
	IsTrained      bool           `json:"is_trained" yaml:"is_trained"`
	TotalDocuments int            `json:"total_documents" yaml:"total_documents"`
	Categories     []string       `json:"categories" yaml:"categories"`
	TrainingStats  map[string]int `json:"training_stats" yaml:"training_stats"`
}
