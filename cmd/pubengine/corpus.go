// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubengine/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the SQLite corpus store (import, export)",
	Long: `Corpus maintains the SQLite fallback store used when the primary JSON
corpus file is missing. Import ingests a JSON record dump; export writes the
store back out as YAML or JSON.`,
}

// --- import subcommand ---

var corpusImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON record dump into the corpus store",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusImport,
}

func runCorpusImport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	records, err := (corpus.FileSource{Path: args[0]}).Load()
	if err != nil {
		return err
	}

	dbPath := filepath.Join(cfg.Data.Dir, cfg.Data.CorpusDB)
	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	store, err := corpus.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(context.Background(), records, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Imported %d records (%d skipped) into %s\n",
		summary.Imported, summary.Skipped, dbPath)
	return nil
}

// --- export subcommand ---

var corpusExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the corpus store to YAML or JSON",
	Long: `Export writes every stored record to the given file. The format is
chosen by extension: .yaml/.yml or .json.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusExport,
}

func runCorpusExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	store, err := corpus.Open(filepath.Join(cfg.Data.Dir, cfg.Data.CorpusDB))
	if err != nil {
		return err
	}
	defer store.Close()

	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = store.ExportYAML(context.Background(), path)
	case ".json":
		err = store.ExportJSON(context.Background(), path)
	default:
		return fmt.Errorf("unsupported export extension %q (use .yaml, .yml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	count, err := store.Count(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Exported %d records to %s\n", count, path)
	return nil
}

func init() {
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	rootCmd.AddCommand(corpusCmd)
}
