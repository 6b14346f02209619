// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DataConfig holds the locations of corpus and training data.
type DataConfig struct {
	// Dir is the base data directory (contains corpus files and the
	// training CSVs).
	Dir string `json:"dir" yaml:"dir"`

	// CorpusFile is the primary corpus source, a JSON array of raw
	// publication records (default "publications.json").
	CorpusFile string `json:"corpus_file" yaml:"corpus_file"`

	// CorpusDB is the fallback corpus source, a SQLite database built by
	// `pubengine corpus import` (default "publications.db").
	CorpusDB string `json:"corpus_db" yaml:"corpus_db"`
}

// CacheConfig holds settings for the search result cache.
type CacheConfig struct {
	// TTL is how long a cached result set stays valid (default 60s).
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// MaxEntries bounds the cache size. When full, the entry with the
	// oldest insertion timestamp is evicted (default 128).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// ClassifierConfig holds settings for the document classifier.
type ClassifierConfig struct {
	// ModelType selects the algorithm: naive_bayes or logistic_regression.
	ModelType string `json:"model_type" yaml:"model_type"`

	// MaxFeatures caps the vectorizer vocabulary size (default 5000).
	MaxFeatures int `json:"max_features" yaml:"max_features"`

	// NgramMax is the largest n-gram length indexed (default 2).
	NgramMax int `json:"ngram_max" yaml:"ngram_max"`

	// Seed makes the train/test split reproducible (default 42).
	Seed int64 `json:"seed" yaml:"seed"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// CORSOrigins lists the allowed CORS origins. "*" allows all.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`

	// PageSize is the default search page size (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`

	// TrainWorkers is the size of the background training pool (default 2).
	TrainWorkers int `json:"train_workers" yaml:"train_workers"`
}

// Config groups all engine configuration.
type Config struct {
	Data       DataConfig       `json:"data" yaml:"data"`
	Cache      CacheConfig      `json:"cache" yaml:"cache"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			Dir:        "data",
			CorpusFile: "publications.json",
			CorpusDB:   "publications.db",
		},
		Cache: CacheConfig{
			TTL:        60 * time.Second,
			MaxEntries: 128,
		},
		Classifier: ClassifierConfig{
			ModelType:   string(ModelNaiveBayes),
			MaxFeatures: 5000,
			NgramMax:    2,
			Seed:        42,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			CORSOrigins:  []string{"*"},
			PageSize:     10,
			TrainWorkers: 2,
		},
	}
}
