// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pubengine/internal/classify"
	"github.com/pdiddy/pubengine/internal/rank"
	"github.com/pdiddy/pubengine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve loads the corpus (JSON file first, SQLite store as fallback),
indexes it for search, and serves the HTTP API: /search, /classify,
/model-info, /train-models and /health. Classifier training runs on a
background worker pool and is warmed up at startup.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	log := logrus.New()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	records, source := loadCorpus(cfg, os.Stderr)
	if source == "" {
		log.Warn("no corpus source available, serving an empty index")
	} else {
		log.WithFields(logrus.Fields{"source": source, "records": len(records)}).Info("corpus loaded")
	}

	ranker := rank.New(records)
	cache := rank.NewCache(cfg.Cache)
	registry := classify.NewRegistry(cfg.Classifier, cfg.Data.Dir, os.Stderr)

	srv, err := server.New(cfg, log, ranker, cache, registry)
	if err != nil {
		return err
	}
	defer srv.Close()

	srv.WarmUp()
	return srv.Start()
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
}
