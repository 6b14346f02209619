// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubengine/internal/corpus"
	"github.com/pdiddy/pubengine/internal/rank"
	"github.com/pdiddy/pubengine/pkg/types"
)

// loadConfig merges the config file and environment over the defaults, with
// the --data-dir flag taking final precedence.
func loadConfig(cmd *cobra.Command) types.Config {
	cfg := types.DefaultConfig()

	if v := viper.GetString("data.dir"); v != "" {
		cfg.Data.Dir = v
	}
	if v := viper.GetString("data.corpus_file"); v != "" {
		cfg.Data.CorpusFile = v
	}
	if v := viper.GetString("data.corpus_db"); v != "" {
		cfg.Data.CorpusDB = v
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetInt("cache.max_entries"); v > 0 {
		cfg.Cache.MaxEntries = v
	}
	if v := viper.GetString("classifier.model_type"); v != "" {
		cfg.Classifier.ModelType = v
	}
	if v := viper.GetInt("classifier.max_features"); v > 0 {
		cfg.Classifier.MaxFeatures = v
	}
	if v := viper.GetInt("classifier.ngram_max"); v > 0 {
		cfg.Classifier.NgramMax = v
	}
	if viper.IsSet("classifier.seed") {
		cfg.Classifier.Seed = viper.GetInt64("classifier.seed")
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetStringSlice("server.cors_origins"); len(v) > 0 {
		cfg.Server.CORSOrigins = v
	}
	if v := viper.GetInt("server.page_size"); v > 0 {
		cfg.Server.PageSize = v
	}
	if v := viper.GetInt("server.train_workers"); v > 0 {
		cfg.Server.TrainWorkers = v
	}

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	return cfg
}

// loadCorpus tries the primary JSON file, then the SQLite store. Warnings
// go to w; an empty corpus is returned when neither source is available.
func loadCorpus(cfg types.Config, w io.Writer) ([]types.PublicationRecord, string) {
	return corpus.LoadFirst(w,
		corpus.FileSource{Path: filepath.Join(cfg.Data.Dir, cfg.Data.CorpusFile)},
		corpus.StoreSource{Path: filepath.Join(cfg.Data.Dir, cfg.Data.CorpusDB)},
	)
}

// buildRanker indexes the configured corpus.
func buildRanker(cfg types.Config, w io.Writer) *rank.Ranker {
	records, _ := loadCorpus(cfg, w)
	return rank.New(records)
}
